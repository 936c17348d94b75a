package ports

import "github.com/aretw0/turing/pkg/domain"

// MachineLoader turns an input path into a machine definition.
// The format is chosen by the implementation (typically by file extension).
type MachineLoader interface {
	Load(path string) (domain.Machine, error)
}
