// Package outbox holds the pending-delivery queue bridging locally
// created outgoing messages to gateway-side delivery.
package outbox

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending Status = "pending"
	StatusSent    Status = "sent"
)

var (
	// ErrNotFound is returned when an outbox item id is unknown.
	ErrNotFound = errors.New("outbox item not found")
)

// Item is one pending delivery. It references a message by id and does
// not own message content; phone/body/type are carried so the gateway
// can deliver without a second lookup.
type Item struct {
	ID        uuid.UUID
	MessageID uuid.UUID
	Phone     string
	Body      string
	Type      string
	Status    Status
	CreatedAt time.Time
	SentAt    *time.Time
}

// NewItem enqueues one delivery for an outgoing message. Exactly one
// item exists per outgoing message, created at send time.
func NewItem(messageID uuid.UUID, phone, body, msgType string) *Item {
	return &Item{
		ID:        uuid.New(),
		MessageID: messageID,
		Phone:     phone,
		Body:      body,
		Type:      msgType,
		Status:    StatusPending,
		CreatedAt: time.Now(),
	}
}

// Acknowledge transitions the item pending -> sent and stamps the
// delivery time. It reports whether the call changed anything, so a
// second acknowledgment is a visible no-op rather than a silent double
// transition. There are no other transitions: items never expire and
// are never retried by this core.
func (i *Item) Acknowledge() bool {
	if i.Status == StatusSent {
		return false
	}
	now := time.Now()
	i.Status = StatusSent
	i.SentAt = &now
	return true
}
