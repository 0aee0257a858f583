package encoder

import (
	"testing"

	"github.com/foltl/foltl/internal/consumer"
	"github.com/foltl/foltl/internal/ident"
	"github.com/foltl/foltl/internal/term"
)

type recordingConsumer struct {
	kinds   []consumer.StatementKind
	adopted int
}

func (r *recordingConsumer) Import(ident.Label, map[ident.Label]term.Term) error { return nil }
func (r *recordingConsumer) Adopt(*term.Entity) error                            { r.adopted++; return nil }
func (r *recordingConsumer) State(statements []consumer.Statement) error {
	for _, s := range statements {
		r.kinds = append(r.kinds, s.Kind)
	}
	return nil
}
func (r *recordingConsumer) Push(term.RecursionMode) error { return nil }
func (r *recordingConsumer) Pop(int) error                 { return nil }

func TestEncoderStageTransformsRequirementIntoInitTransitionFinal(t *testing.T) {
	p := atom("p")
	stage := NewStage()
	sink := &recordingConsumer{}
	c := consumer.Compose([]consumer.Stage{stage}, sink)

	stmts := []consumer.Statement{{Kind: consumer.Requirement, Formula: term.Eventually(p)}}
	if err := c.State(stmts); err != nil {
		t.Fatalf("State returned an error: %v", err)
	}

	want := []consumer.StatementKind{consumer.InitStatement, consumer.TransitionStatement, consumer.FinalStatement}
	if len(sink.kinds) != len(want) {
		t.Fatalf("sink saw %d statements, want %d (%v)", len(sink.kinds), len(want), sink.kinds)
	}
	for i, k := range want {
		if sink.kinds[i] != k {
			t.Fatalf("statement %d kind = %v, want %v", i, sink.kinds[i], k)
		}
	}
	if sink.adopted == 0 {
		t.Fatalf("expected the stage to adopt its minted surrogates on the downstream")
	}
}

func TestEncoderStageForwardsNonRequirementStatements(t *testing.T) {
	p := atom("p")
	stage := NewStage()
	sink := &recordingConsumer{}
	c := consumer.Compose([]consumer.Stage{stage}, sink)

	stmts := []consumer.Statement{{Kind: consumer.InitStatement, Formula: p}}
	if err := c.State(stmts); err != nil {
		t.Fatalf("State returned an error: %v", err)
	}
	if len(sink.kinds) != 1 || sink.kinds[0] != consumer.InitStatement {
		t.Fatalf("sink.kinds = %v, want a single untouched InitStatement", sink.kinds)
	}
	if sink.adopted != 0 {
		t.Fatalf("a non-Requirement statement should not trigger any Adopt calls")
	}
}

func TestEncoderStagePassesThroughPushAndPop(t *testing.T) {
	stage := NewStage()
	sink := &recordingConsumer{}
	c := consumer.Compose([]consumer.Stage{stage}, sink)

	if err := c.Push(term.Forbidden); err != nil {
		t.Fatalf("Push returned an error: %v", err)
	}
	if err := c.Pop(2); err != nil {
		t.Fatalf("Pop returned an error: %v", err)
	}
}
