package encoder

import (
	"fmt"

	"github.com/foltl/foltl/internal/consumer"
)

// Stage implements consumer.Stage, plugging the encoder into a
// consumer.Pipeline as Component G (§4.5.1): every Requirement-kind
// statement it sees is replaced by the Init/Transition/Final statements
// its Automaton closes to, with the formula's own surrogates adopted on
// the downstream first; every other statement kind, and every Import/
// Push/Pop event, is forwarded unchanged.
type Stage struct {
	consumer.BaseStage
	next int
}

// NewStage builds a fresh Stage. Each Requirement it encodes gets its own
// anchor tag, numbered so that encoding two requirements in the same
// pipeline run never collides on anchor names.
func NewStage() *Stage {
	return &Stage{}
}

func (s *Stage) anchorTag() string {
	tag := fmt.Sprintf("phi%d", s.next)
	s.next++
	return tag
}

// State intercepts Requirement statements and encodes them; Init/
// Transition/Final statements already produced upstream (by an earlier
// Stage, or replayed straight from a Module) pass through untouched.
func (s *Stage) State(next consumer.Consumer, statements []consumer.Statement) error {
	var out []consumer.Statement
	for _, stmt := range statements {
		if stmt.Kind != consumer.Requirement {
			out = append(out, stmt)
			continue
		}
		auto, err := EncodeTagged(stmt.Formula, s.anchorTag())
		if err != nil {
			return err
		}
		for _, e := range auto.Surrogates {
			if err := next.Adopt(e); err != nil {
				return err
			}
		}
		out = append(out,
			consumer.Statement{Kind: consumer.InitStatement, Formula: auto.Init},
			consumer.Statement{Kind: consumer.TransitionStatement, Formula: auto.Transition},
			consumer.Statement{Kind: consumer.FinalStatement, Formula: auto.Final},
		)
	}
	if len(out) == 0 {
		return nil
	}
	return next.State(out)
}
