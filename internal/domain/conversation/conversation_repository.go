package conversation

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the persistence operations for the conversation ledger.
type Repository interface {
	// Save persists a new conversation.
	Save(ctx context.Context, c *Conversation) error

	// GetByID returns a single conversation, or ErrNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*Conversation, error)

	// GetByPhone returns the conversation keyed by a canonical phone,
	// or ErrNotFound. Phone is the unique conversation key.
	GetByPhone(ctx context.Context, phone string) (*Conversation, error)

	// List returns every conversation ordered by last message time
	// descending; conversations that never saw a message sort last.
	List(ctx context.Context) ([]*Conversation, error)

	// Update persists the full current state of a conversation.
	Update(ctx context.Context, c *Conversation) error

	// Stats returns aggregate counters for the stats endpoint.
	Stats(ctx context.Context) (total, active, unread int64, err error)
}
