package module

import (
	"path/filepath"
	"testing"

	"github.com/foltl/foltl/internal/ident"
	"github.com/foltl/foltl/internal/term"
)

func TestSnapshotStoreSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshots.db")
	store, err := OpenSnapshotStore(path)
	if err != nil {
		t.Fatalf("OpenSnapshotStore: %v", err)
	}
	defer store.Close()

	m := New(ident.String("m"))
	m, _, err = m.Declare(ident.String("p"), term.BooleanType(), term.State)
	if err != nil {
		t.Fatalf("Declare: %v", err)
	}
	p, _ := m.Lookup(ident.String("p"))
	m = m.Require(term.Conjunction(p, p))

	if err := store.Save("session-1", m); err != nil {
		t.Fatalf("Save: %v", err)
	}

	rows, err := store.Load("session-1")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("len(rows) = %d, want 1", len(rows))
	}
	if rows[0].Kind != "require" {
		t.Errorf("rows[0].Kind = %q, want require", rows[0].Kind)
	}
}

func TestSnapshotStoreSaveReplacesPriorCheckpoint(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshots.db")
	store, err := OpenSnapshotStore(path)
	if err != nil {
		t.Fatalf("OpenSnapshotStore: %v", err)
	}
	defer store.Close()

	m := New(ident.String("m"))
	m, _, err = m.Declare(ident.String("p"), term.BooleanType(), term.State)
	if err != nil {
		t.Fatalf("Declare: %v", err)
	}
	p, _ := m.Lookup(ident.String("p"))

	m1 := m.Require(p)
	if err := store.Save("session-1", m1); err != nil {
		t.Fatalf("Save (first): %v", err)
	}

	m2 := m.Require(p).Require(term.Negation(p))
	if err := store.Save("session-1", m2); err != nil {
		t.Fatalf("Save (second): %v", err)
	}

	rows, err := store.Load("session-1")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2 (second Save should replace, not append to, the first)", len(rows))
	}
}

func TestSnapshotStoreSessionsListsDistinctSessions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshots.db")
	store, err := OpenSnapshotStore(path)
	if err != nil {
		t.Fatalf("OpenSnapshotStore: %v", err)
	}
	defer store.Close()

	m := New(ident.String("m"))
	m, _, err = m.Declare(ident.String("p"), term.BooleanType(), term.State)
	if err != nil {
		t.Fatalf("Declare: %v", err)
	}
	p, _ := m.Lookup(ident.String("p"))
	m = m.Require(p)

	if err := store.Save("a", m); err != nil {
		t.Fatalf("Save a: %v", err)
	}
	if err := store.Save("b", m); err != nil {
		t.Fatalf("Save b: %v", err)
	}

	sessions, err := store.Sessions()
	if err != nil {
		t.Fatalf("Sessions: %v", err)
	}
	if len(sessions) != 2 || sessions[0] != "a" || sessions[1] != "b" {
		t.Fatalf("Sessions() = %v, want [a b]", sessions)
	}
}
