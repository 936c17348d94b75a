package memory

import (
	"context"
	"sync"

	"github.com/aretw0/turing/pkg/domain"
)

// Store implements ports.ResultStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]domain.Result
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]domain.Result),
	}
}

// Save stores the result in memory. Results are plain values, so the stored
// copy is isolated from the caller.
func (s *Store) Save(ctx context.Context, key string, result domain.Result) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = result
	return nil
}

// Load retrieves the result from memory.
func (s *Store) Load(ctx context.Context, key string) (domain.Result, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result, ok := s.data[key]
	if !ok {
		return domain.Result{}, domain.ErrResultNotFound
	}
	return result, nil
}

// Delete removes the result.
func (s *Store) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

// List returns the stored keys.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	return keys, nil
}
