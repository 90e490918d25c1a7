package outbox

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the persistence operations for the outbox queue.
type Repository interface {
	// Save persists a new pending item.
	Save(ctx context.Context, i *Item) error

	// GetByID returns a single item, or ErrNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*Item, error)

	// ListPending returns every pending item in insertion order (FIFO).
	ListPending(ctx context.Context) ([]*Item, error)

	// Update persists the current state of an item.
	Update(ctx context.Context, i *Item) error
}
