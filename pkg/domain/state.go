package domain

// HaltReason records why a run stopped. Callers normally treat every reason as
// a normal stop; the distinction is kept for logs, metrics and stored results.
type HaltReason string

const (
	HaltNoRule      HaltReason = "no_rule"       // No rule matches (state, symbol)
	HaltOutOfBounds HaltReason = "out_of_bounds" // Head left [0, len(tape))
	HaltStepLimit   HaltReason = "step_limit"    // Configured step ceiling reached
	HaltCancelled   HaltReason = "cancelled"     // Context cancelled between steps
)

// Result is the final configuration of one run. Only the current tape line is
// kept; no step history is recorded.
type Result struct {
	Name   string     `json:"name"`
	Line   int        `json:"line"`
	Tape   string     `json:"tape"`
	Head   int        `json:"head"`
	State  string     `json:"state"`
	Steps  int        `json:"steps"`
	Reason HaltReason `json:"reason"`
}
