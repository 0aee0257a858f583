// Package ident provides interned symbolic names used as map keys
// throughout the core: hashable, equality-comparable, and cheap to copy.
package ident

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// form distinguishes the three shapes a Label's payload can take.
type form uint8

const (
	formString form = iota
	formInt
	formTuple
)

// entry is the canonical, pool-owned representation of a Label's contents.
// Two Labels are equal iff they point at the same entry.
type entry struct {
	kind form
	str  string
	num  int64
	kids []Label
	text string // memoized String() rendering, used with kind as the intern key
}

// Label is an interned symbolic name. The zero Label is invalid; use
// String, Int, or Tuple to construct one. Labels compare equal with ==.
type Label struct {
	e *entry
}

// IsValid reports whether l was produced by one of this package's
// constructors (as opposed to the zero value).
func (l Label) IsValid() bool { return l.e != nil }

// String builds a Label from a plain identifier string, e.g. "p" or "x".
func String(s string) Label {
	return intern(entry{kind: formString, str: s, text: s})
}

// Int builds a Label from an integer, used for positional/synthetic names
// such as surrogate indices.
func Int(n int64) Label {
	return intern(entry{kind: formInt, num: n, text: strconv.FormatInt(n, 10)})
}

// Tuple builds a product Label out of other Labels, used to qualify a
// surrogate by the path of the subformula it represents.
func Tuple(parts ...Label) Label {
	text := make([]string, len(parts))
	for i, p := range parts {
		text[i] = p.String()
	}
	kids := append([]Label(nil), parts...)
	return intern(entry{kind: formTuple, kids: kids, text: "(" + strings.Join(text, ",") + ")"})
}

// Fresh derives a new Label from base that has not previously been
// returned by Fresh or any constructor for this exact rendering, by
// suffixing a monotonically increasing counter scoped to base's text and
// skipping any suffixed name that is already interned.
func Fresh(base Label) Label {
	freshMu.Lock()
	defer freshMu.Unlock()
	for {
		n := freshCounters[base.text()] + 1
		freshCounters[base.text()] = n
		text := fmt.Sprintf("%s$%d", base.text(), n)
		poolMu.RLock()
		_, taken := pool[poolKey{kind: formString, text: text}]
		poolMu.RUnlock()
		if !taken {
			return String(text)
		}
	}
}

func (l Label) text() string {
	if l.e == nil {
		return ""
	}
	return l.e.text
}

// String renders the Label's canonical text form.
func (l Label) String() string { return l.text() }

// Kind reports which constructor produced this Label's entry.
type Kind form

const (
	KindString Kind = Kind(formString)
	KindInt    Kind = Kind(formInt)
	KindTuple  Kind = Kind(formTuple)
)

// Kind returns which of String/Int/Tuple constructed l.
func (l Label) Kind() Kind { return Kind(l.e.kind) }

// Parts returns the children of a Tuple Label (nil for other kinds).
func (l Label) Parts() []Label {
	if l.e == nil || l.e.kind != formTuple {
		return nil
	}
	return l.e.kids
}

// poolKey identifies an entry by its kind and rendered text, so that
// String("1") and Int(1) stay distinct Labels.
type poolKey struct {
	kind form
	text string
}

var (
	poolMu        sync.RWMutex
	pool          = make(map[poolKey]*entry)
	freshMu       sync.Mutex
	freshCounters = make(map[string]int64)
)

// intern returns the canonical *entry for the given template, reusing an
// existing entry when one with the same kind and rendered text already
// lives in the pool. This keeps equality a pointer comparison and hashing
// O(1) after the first construction.
func intern(tmpl entry) Label {
	key := poolKey{kind: tmpl.kind, text: tmpl.text}
	poolMu.RLock()
	if e, ok := pool[key]; ok {
		poolMu.RUnlock()
		return Label{e: e}
	}
	poolMu.RUnlock()

	poolMu.Lock()
	defer poolMu.Unlock()
	if e, ok := pool[key]; ok {
		return Label{e: e}
	}
	e := tmpl
	pool[key] = &e
	return Label{e: &e}
}
