package message

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the persistence operations for the message log.
//
// It is implemented by infrastructure layers (GORM, in-memory, etc.)
// while the service layer depends only on this interface.
type Repository interface {
	// Save persists a new message.
	Save(ctx context.Context, m *Message) error

	// GetByID returns a single message, or ErrNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*Message, error)

	// ListByConversation returns every message in a conversation ordered
	// chronologically ascending, falling back to creation time when a
	// message carries no gateway timestamp.
	ListByConversation(ctx context.Context, conversationID uuid.UUID) ([]*Message, error)

	// UpdateStatus persists the current status of a message.
	UpdateStatus(ctx context.Context, m *Message) error

	// CountByDirection returns the number of incoming and outgoing
	// messages for the stats endpoint.
	CountByDirection(ctx context.Context) (incoming, outgoing int64, err error)
}
