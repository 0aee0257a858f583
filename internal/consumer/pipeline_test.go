package consumer

import (
	"testing"

	"github.com/foltl/foltl/internal/ident"
	"github.com/foltl/foltl/internal/term"
)

type countingConsumer struct {
	pushes int
	pops   int
}

func (c *countingConsumer) Import(ident.Label, map[ident.Label]term.Term) error { return nil }
func (c *countingConsumer) Adopt(*term.Entity) error                            { return nil }
func (c *countingConsumer) State([]Statement) error                            { return nil }
func (c *countingConsumer) Push(term.RecursionMode) error                      { c.pushes++; return nil }
func (c *countingConsumer) Pop(n int) error                                    { c.pops += n; return nil }

type doublingPushStage struct{ BaseStage }

func (doublingPushStage) Push(next Consumer, mode term.RecursionMode) error {
	if err := next.Push(mode); err != nil {
		return err
	}
	return next.Push(mode)
}

func TestPipelineForwardsThroughStages(t *testing.T) {
	sink := &countingConsumer{}
	p := New(sink, doublingPushStage{})
	c := p.Consumer()

	if err := c.Push(term.Forbidden); err != nil {
		t.Fatalf("Push returned error: %v", err)
	}
	if sink.pushes != 2 {
		t.Fatalf("sink.pushes = %d, want 2 (doublingPushStage should forward twice)", sink.pushes)
	}

	if err := c.Pop(2); err != nil {
		t.Fatalf("Pop returned error: %v", err)
	}
	if sink.pops != 2 {
		t.Fatalf("sink.pops = %d, want 2 (BaseStage.Pop forwards the count unchanged)", sink.pops)
	}
}

func TestNopConsumerNeverFails(t *testing.T) {
	var c Consumer = Nop{}
	if err := c.Import(ident.String("m"), nil); err != nil {
		t.Fatalf("Nop.Import returned error: %v", err)
	}
	if err := c.Push(term.Allowed); err != nil {
		t.Fatalf("Nop.Push returned error: %v", err)
	}
}
