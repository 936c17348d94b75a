package ports

import (
	"context"

	"github.com/aretw0/turing/pkg/domain"
)

// ResultStore persists the final configuration of finished runs.
// Only the halted tape line is kept; step history is never stored.
type ResultStore interface {
	// Save stores the result under key, replacing any previous value.
	Save(ctx context.Context, key string, result domain.Result) error

	// Load retrieves a result.
	// Returns domain.ErrResultNotFound if the key does not exist.
	Load(ctx context.Context, key string) (domain.Result, error)

	// Delete removes a result. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// List returns the keys currently stored.
	List(ctx context.Context) ([]string, error)
}
