package file

import (
	"fmt"
	"os"

	"github.com/aretw0/turing/internal/compiler"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/registry"
)

// Loader implements ports.MachineLoader by reading files from the local filesystem
// and dispatching on their extension.
type Loader struct {
	Formats *registry.Registry
}

// NewLoader creates a Loader. A nil registry uses registry.Default().
func NewLoader(formats *registry.Registry) *Loader {
	if formats == nil {
		formats = registry.Default()
	}
	return &Loader{Formats: formats}
}

// Load reads and parses path. The machine is named after path.
func (l *Loader) Load(path string) (domain.Machine, error) {
	m, _, err := l.Inspect(path)
	return m, err
}

// Inspect is Load plus the parser report (kept and dropped rule counts).
func (l *Loader) Inspect(path string) (domain.Machine, compiler.Report, error) {
	parse, err := l.Formats.Lookup(path)
	if err != nil {
		return domain.Machine{}, compiler.Report{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Machine{}, compiler.Report{}, fmt.Errorf("failed to read machine file: %w", err)
	}

	m, report, err := parse(data)
	if err != nil {
		return domain.Machine{}, report, err
	}
	m.Name = path
	return m, report, nil
}
