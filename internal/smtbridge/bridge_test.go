package smtbridge

import (
	"context"
	"sync"
	"testing"

	"github.com/jhump/protoreflect/dynamic"
	"google.golang.org/grpc"

	"github.com/foltl/foltl/internal/consumer"
	"github.com/foltl/foltl/internal/ident"
	"github.com/foltl/foltl/internal/term"
)

// fakeConn is a grpc.ClientConnInterface stand-in that dispatches by
// method path instead of opening a socket, letting the bridge's request-
// building and response-parsing logic be tested without a real backend.
type fakeConn struct {
	mu      sync.Mutex
	asserts []string
	sat     string
	values  map[string]string
	fail    bool
}

func (f *fakeConn) Invoke(ctx context.Context, method string, args, reply interface{}, opts ...grpc.CallOption) error {
	switch method {
	case methodPath("Assert"):
		req := args.(*dynamic.Message)
		formula, _ := req.TryGetFieldByName("formula")
		f.mu.Lock()
		f.asserts = append(f.asserts, formula.(string))
		f.mu.Unlock()

		resp := reply.(*dynamic.Message)
		if f.fail {
			resp.SetFieldByName("ok", false)
			resp.SetFieldByName("error", "rejected by fake backend")
			return nil
		}
		resp.SetFieldByName("ok", true)
		return nil

	case methodPath("CheckSat"):
		resp := reply.(*dynamic.Message)
		resp.SetFieldByName("result", f.sat)
		return nil

	case methodPath("GetValue"):
		req := args.(*dynamic.Message)
		raw, _ := req.TryGetFieldByName("handles")
		handles, _ := raw.([]interface{})
		out := make(map[interface{}]interface{})
		for _, h := range handles {
			hs := h.(string)
			if v, ok := f.values[hs]; ok {
				out[hs] = v
			}
		}
		resp := reply.(*dynamic.Message)
		resp.SetFieldByName("values", out)
		return nil
	}
	panic("fakeConn: unexpected method " + method)
}

func (f *fakeConn) NewStream(ctx context.Context, desc *grpc.StreamDesc, method string, opts ...grpc.CallOption) (grpc.ClientStream, error) {
	panic("fakeConn: NewStream not supported")
}

func testAtom(name string) term.Term {
	root := term.NewRoot(ident.String("test"), term.Forbidden)
	e := term.NewEntity(ident.String(name), term.FunctionType(nil, term.BooleanType()), root, term.State)
	return term.Atom(term.Object(e))
}

func TestAssertSendsRenderedFormula(t *testing.T) {
	fc := &fakeConn{}
	b := newForConn(fc, nil)
	p := testAtom("p")
	if err := b.Assert(context.Background(), p); err != nil {
		t.Fatalf("Assert returned an error: %v", err)
	}
	if len(fc.asserts) != 1 || fc.asserts[0] != p.String() {
		t.Fatalf("fake backend recorded %v, want [%q]", fc.asserts, p.String())
	}
}

func TestAssertSurfacesBackendRejection(t *testing.T) {
	fc := &fakeConn{fail: true}
	b := newForConn(fc, nil)
	err := b.Assert(context.Background(), testAtom("p"))
	if err == nil {
		t.Fatalf("expected an error when the backend rejects an assertion")
	}
	if _, ok := err.(*RPCError); !ok {
		t.Fatalf("expected *RPCError, got %T", err)
	}
}

func TestAssertBatchSendsEveryFormula(t *testing.T) {
	fc := &fakeConn{}
	b := newForConn(fc, nil)
	formulas := []term.Term{testAtom("p"), testAtom("q"), testAtom("r")}
	if err := b.AssertBatch(context.Background(), formulas); err != nil {
		t.Fatalf("AssertBatch returned an error: %v", err)
	}
	if len(fc.asserts) != 3 {
		t.Fatalf("fake backend saw %d asserts, want 3", len(fc.asserts))
	}
}

func TestCheckSatReturnsBackendResult(t *testing.T) {
	fc := &fakeConn{sat: "sat"}
	b := newForConn(fc, nil)
	r, err := b.CheckSat(context.Background())
	if err != nil {
		t.Fatalf("CheckSat returned an error: %v", err)
	}
	if r != "sat" {
		t.Fatalf("CheckSat = %q, want %q", r, "sat")
	}
}

func TestHandleForIsStablePerTerm(t *testing.T) {
	fc := &fakeConn{}
	b := newForConn(fc, nil)
	p := testAtom("p")
	h1 := b.handleFor(p)
	h2 := b.handleFor(p)
	if h1 != h2 {
		t.Fatalf("handleFor returned different handles for the same term: %q vs %q", h1, h2)
	}
	q := testAtom("q")
	if b.handleFor(q) == h1 {
		t.Fatalf("handleFor returned the same handle for two distinct terms")
	}
}

func TestValueOfRoundTrips(t *testing.T) {
	fc := &fakeConn{}
	b := newForConn(fc, nil)
	p := testAtom("p")
	h := b.handleFor(p)
	fc.values = map[string]string{h: "true"}

	out, err := b.ValueOf(context.Background(), []term.Term{p})
	if err != nil {
		t.Fatalf("ValueOf returned an error: %v", err)
	}
	if out[p] != "true" {
		t.Fatalf("ValueOf[p] = %q, want %q", out[p], "true")
	}
}

func TestAsConsumerStateSkipsIllTypedFormulas(t *testing.T) {
	fc := &fakeConn{}
	b := newForConn(fc, nil)
	c := AsConsumer{Bridge: b, Ctx: context.Background()}

	good := testAtom("p")
	bad := term.Negation(term.Integer(1))
	stmts := []consumer.Statement{
		{Kind: consumer.Requirement, Formula: good},
		{Kind: consumer.Requirement, Formula: bad},
	}
	if err := c.State(stmts); err != nil {
		t.Fatalf("State returned an error: %v", err)
	}
	if len(fc.asserts) != 1 {
		t.Fatalf("fake backend saw %d asserts, want 1 (the ill-typed formula should be skipped)", len(fc.asserts))
	}
}
