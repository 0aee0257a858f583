// Package smtbridge is the opaque SMT oracle: a Bridge asserts formulas,
// checks satisfiability, and reads back model values over a gRPC
// connection, using dynamically built protobuf messages instead of
// generated Go types — grounded on the teacher's builtinGrpcInvoke, which
// resolves method/message descriptors from a parsed schema and invokes
// them with *dynamic.Message in place of a generated request/response
// pair, so the bridge never needs to know what SMT process sits on the
// other end beyond the three-call contract in schema.go.
package smtbridge

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/jhump/protoreflect/dynamic"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/foltl/foltl/internal/obslog"
	"github.com/foltl/foltl/internal/term"
)

// Bridge forwards asserted formulas to a real SMT process and answers
// CheckSat/ValueOf queries against it. Bridge does not itself implement
// consumer.Consumer; AsConsumer adapts it to that protocol. A
// Bridge is scoped to one session: every RPC carries the same session_id,
// letting the backend keep one solver context alive per Bridge.
type Bridge struct {
	conn      grpc.ClientConnInterface
	closer    func() error
	sessionID string
	logger    *zap.Logger

	mu      sync.Mutex
	handles map[uint64]string
}

// Dial opens a gRPC connection to target and wraps it in a Bridge scoped
// to a fresh session id. logger may be nil, in which case the Bridge logs
// nothing.
func Dial(target string, logger *zap.Logger) (*Bridge, error) {
	conn, err := grpc.NewClient(target, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("smtbridge: dial %q: %w", target, err)
	}
	return &Bridge{
		conn:      conn,
		closer:    conn.Close,
		sessionID: uuid.NewString(),
		logger:    obslog.Named(logger, "smtbridge"),
		handles:   make(map[uint64]string),
	}, nil
}

// newForConn builds a Bridge directly over an existing grpc.ClientConnInterface,
// bypassing Dial's grpc.NewClient call. Used by tests to substitute a fake
// connection without opening a real socket.
func newForConn(conn grpc.ClientConnInterface, logger *zap.Logger) *Bridge {
	return &Bridge{
		conn:      conn,
		closer:    func() error { return nil },
		sessionID: uuid.NewString(),
		logger:    obslog.Named(logger, "smtbridge"),
		handles:   make(map[uint64]string),
	}
}

// Close releases the underlying connection, if Dial opened one.
func (b *Bridge) Close() error {
	if b.closer == nil {
		return nil
	}
	return b.closer()
}

// handleFor returns the stable opaque handle string standing for t,
// minting a fresh uuid-derived one on first use and reusing it for every
// later call about the same term (identity compared via UniqueID, so two
// hash-consed-equal terms always share a handle).
func (b *Bridge) handleFor(t term.Term) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := t.UniqueID()
	if h, ok := b.handles[id]; ok {
		return h
	}
	h := uuid.NewString()
	b.handles[id] = h
	return h
}

func (b *Bridge) requestID() string { return uuid.NewString() }

// Assert sends formula to the backend for this session. The formula is
// rendered through term.Term.String() — the bridge treats the backend as
// opaque (§4.6's framing) and never interprets its response beyond the
// ok/error fields, so a readable surface rendering is all a request needs.
func (b *Bridge) Assert(ctx context.Context, formula term.Term) error {
	req := dynamic.NewMessage(assertRequestMsg)
	req.SetFieldByName("session_id", b.sessionID)
	req.SetFieldByName("request_id", b.requestID())
	req.SetFieldByName("formula", formula.String())

	reply := dynamic.NewMessage(assertReplyMsg)
	if err := b.conn.Invoke(ctx, methodPath("Assert"), req, reply); err != nil {
		return fmt.Errorf("smtbridge: Assert RPC: %w", err)
	}
	ok, _ := reply.TryGetFieldByName("ok")
	if okBool, _ := ok.(bool); !okBool {
		errMsg, _ := reply.TryGetFieldByName("error")
		msg, _ := errMsg.(string)
		b.logger.Warn("assert rejected", zap.String("formula", formula.String()), zap.String("error", msg))
		return &RPCError{Call: "Assert", Message: msg}
	}
	return nil
}

// AssertBatch asserts every formula in formulas, fanning the RPCs out
// concurrently and returning the first error encountered (errgroup cancels
// the shared context on the first failure, and AssertBatch still waits for
// every call to return, matching the teacher's own fan-out/fan-in shape
// used for concurrent builtins).
func (b *Bridge) AssertBatch(ctx context.Context, formulas []term.Term) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, f := range formulas {
		f := f
		g.Go(func() error { return b.Assert(gctx, f) })
	}
	return g.Wait()
}

// CheckSat asks the backend for the current session's satisfiability
// verdict ("sat", "unsat", or "unknown").
func (b *Bridge) CheckSat(ctx context.Context) (string, error) {
	req := dynamic.NewMessage(checkSatReqMsg)
	req.SetFieldByName("session_id", b.sessionID)
	req.SetFieldByName("request_id", b.requestID())

	reply := dynamic.NewMessage(checkSatReplyMsg)
	if err := b.conn.Invoke(ctx, methodPath("CheckSat"), req, reply); err != nil {
		return "", fmt.Errorf("smtbridge: CheckSat RPC: %w", err)
	}
	if errField, _ := reply.TryGetFieldByName("error"); errField != nil {
		if msg, _ := errField.(string); msg != "" {
			return "", &RPCError{Call: "CheckSat", Message: msg}
		}
	}
	result, _ := reply.TryGetFieldByName("result")
	r, _ := result.(string)
	b.logger.Debug("checksat", zap.String("result", r))
	return r, nil
}

// ValueOf asks the backend for the model value bound to each of terms,
// keyed by the same handle strings handleFor mints. A term ValueOf has
// never seen before (never Assert-ed, never previously queried) still
// gets a handle minted on the spot: the backend is free to report it has
// no binding for a fresh handle by omitting it from the reply.
func (b *Bridge) ValueOf(ctx context.Context, terms []term.Term) (map[term.Term]string, error) {
	handles := make([]interface{}, len(terms))
	byHandle := make(map[string]term.Term, len(terms))
	for i, t := range terms {
		h := b.handleFor(t)
		handles[i] = h
		byHandle[h] = t
	}

	req := dynamic.NewMessage(getValueReqMsg)
	req.SetFieldByName("session_id", b.sessionID)
	req.SetFieldByName("request_id", b.requestID())
	if err := req.TrySetFieldByName("handles", handles); err != nil {
		return nil, fmt.Errorf("smtbridge: building GetValue request: %w", err)
	}

	reply := dynamic.NewMessage(getValueReplyMsg)
	if err := b.conn.Invoke(ctx, methodPath("GetValue"), req, reply); err != nil {
		return nil, fmt.Errorf("smtbridge: GetValue RPC: %w", err)
	}
	if errField, _ := reply.TryGetFieldByName("error"); errField != nil {
		if msg, _ := errField.(string); msg != "" {
			return nil, &RPCError{Call: "GetValue", Message: msg}
		}
	}

	raw, _ := reply.TryGetFieldByName("values")
	values, _ := raw.(map[interface{}]interface{})
	out := make(map[term.Term]string, len(values))
	for k, v := range values {
		h, _ := k.(string)
		s, _ := v.(string)
		if t, ok := byHandle[h]; ok {
			out[t] = s
		}
	}
	return out, nil
}
