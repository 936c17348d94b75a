package domain

import "fmt"

// InitialState is the state label every run starts from.
const InitialState = "0"

// Move is the head displacement applied after a write.
type Move int

const (
	MoveLeft Move = iota
	MoveRight
)

// ParseMove decodes the single-letter move used by both file formats.
func ParseMove(s string) (Move, error) {
	switch s {
	case "L":
		return MoveLeft, nil
	case "R":
		return MoveRight, nil
	}
	return 0, fmt.Errorf("invalid move %q: expected L or R", s)
}

// Delta returns the head offset for the move.
func (m Move) Delta() int {
	if m == MoveLeft {
		return -1
	}
	return 1
}

func (m Move) String() string {
	if m == MoveLeft {
		return "L"
	}
	return "R"
}

// Rule maps (State, Read) to (Write, Move, NextState).
type Rule struct {
	State     string `json:"state" yaml:"state"`
	Read      rune   `json:"read" yaml:"read"`
	Write     rune   `json:"write" yaml:"write"`
	Move      Move   `json:"move" yaml:"move"`
	NextState string `json:"nextState" yaml:"nextState"`
}

// Machine is an immutable machine definition as produced by a loader.
// The engine copies Tape before running, so a Machine can be shared freely.
type Machine struct {
	// Name identifies the machine in logs and metrics (usually the input path).
	Name string

	// InitialPosition may be negative or past the end of Tape; such a run halts at once.
	InitialPosition int

	Tape  string
	Rules []Rule
}
