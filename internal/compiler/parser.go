package compiler

import (
	"github.com/aretw0/turing/pkg/domain"
)

// Report describes what a parser did with its input beyond the machine itself.
type Report struct {
	Format  string // "tabular" or "structured"
	Rules   int    // Rules kept
	Dropped int    // Rule entries that failed to decode and were skipped
}

// ParseFunc converts the raw bytes of a machine file into a machine definition.
// Rule entries that fail to decode are dropped and counted in the Report; only
// top-level failures are returned as errors (wrapping domain.ErrMalformedDefinition).
type ParseFunc func(data []byte) (domain.Machine, Report, error)
