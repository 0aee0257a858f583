package module

import "github.com/foltl/foltl/internal/consumer"

// Replay feeds c the full contents of m, frame by frame from outermost
// to innermost, followed by a single Pop of every frame — the baseline,
// from-scratch way to hand a Module to a Consumer (an encoder or an SMT
// bridge). For an already-running Consumer that has seen an earlier
// Module, Diff+Patch.Apply is the incremental equivalent.
func (m *Module) Replay(c consumer.Consumer) error {
	for i := 0; i < m.frames.Len(); i++ {
		if err := emitFrame(c, m.frames.Get(i)); err != nil {
			return err
		}
	}
	return c.Pop(m.frames.Len())
}

func emitFrame(c consumer.Consumer, fr *Frame) error {
	if err := c.Push(fr.root.Mode()); err != nil {
		return err
	}
	for _, b := range fr.importBindings() {
		if err := c.Import(b.alias, b.other.Exports()); err != nil {
			return err
		}
	}
	for _, e := range fr.scopeEntities() {
		if err := c.Adopt(e); err != nil {
			return err
		}
	}
	return c.State(fr.statements.Slice())
}
