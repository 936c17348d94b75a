package memory

import (
	"fmt"
	"os"
	"sort"

	"github.com/aretw0/turing/pkg/domain"
)

// Loader implements ports.MachineLoader using an in-memory map.
// Entries may hold an error instead of a machine to simulate unreadable inputs.
type Loader struct {
	machines map[string]domain.Machine
	errs     map[string]error
}

// NewLoader creates a Loader serving the given machines by path.
// Each machine's Name is set to its path.
func NewLoader(machines map[string]domain.Machine) *Loader {
	l := &Loader{
		machines: make(map[string]domain.Machine, len(machines)),
		errs:     make(map[string]error),
	}
	for path, m := range machines {
		l.Add(path, m)
	}
	return l
}

// Add registers m under path.
func (l *Loader) Add(path string, m domain.Machine) {
	m.Name = path
	l.machines[path] = m
}

// Fail makes Load(path) return err.
func (l *Loader) Fail(path string, err error) {
	l.errs[path] = err
}

// Load returns the machine registered for path.
func (l *Loader) Load(path string) (domain.Machine, error) {
	if err, ok := l.errs[path]; ok {
		return domain.Machine{}, err
	}
	m, ok := l.machines[path]
	if !ok {
		return domain.Machine{}, fmt.Errorf("failed to read machine file: %w", os.ErrNotExist)
	}
	return m, nil
}

// Paths returns the registered paths in sorted order.
func (l *Loader) Paths() []string {
	paths := make([]string, 0, len(l.machines))
	for p := range l.machines {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
