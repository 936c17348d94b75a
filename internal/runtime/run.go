package runtime

import (
	"github.com/aretw0/turing/pkg/domain"
)

// Run is the mutable configuration of a single machine: head, state label and
// a private copy of the tape. A Run is owned by exactly one goroutine.
type Run struct {
	Head  int
	State string
	Tape  []rune
	Steps int
}

// NewRun creates the initial configuration for m. The machine's tape is copied,
// so m itself is never mutated.
func NewRun(m domain.Machine) *Run {
	return &Run{
		Head:  m.InitialPosition,
		State: domain.InitialState,
		Tape:  []rune(m.Tape),
	}
}

// Symbol returns the symbol under the head, or false if the head is off the tape.
func (r *Run) Symbol() (rune, bool) {
	if r.Head < 0 || r.Head >= len(r.Tape) {
		return 0, false
	}
	return r.Tape[r.Head], true
}

// Step applies at most one rule. It returns ("", true) when a rule was applied,
// otherwise the reason the run cannot continue and false.
func (r *Run) Step(rules []domain.Rule) (domain.HaltReason, bool) {
	symbol, ok := r.Symbol()
	if !ok {
		return domain.HaltOutOfBounds, false
	}

	rule, ok := domain.FindRule(rules, r.State, symbol)
	if !ok {
		return domain.HaltNoRule, false
	}

	r.Tape[r.Head] = rule.Write
	r.State = rule.NextState
	r.Head += rule.Move.Delta()
	r.Steps++
	return "", true
}

// String returns the current tape contents.
func (r *Run) String() string {
	return string(r.Tape)
}

// Result snapshots the run as a domain.Result.
func (r *Run) Result(name string, line int, reason domain.HaltReason) domain.Result {
	return domain.Result{
		Name:   name,
		Line:   line,
		Tape:   r.String(),
		Head:   r.Head,
		State:  r.State,
		Steps:  r.Steps,
		Reason: reason,
	}
}
