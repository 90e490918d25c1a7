// Package message holds the domain model and invariants for the
// per-conversation message log.
package message

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Direction string

const (
	DirectionIncoming Direction = "incoming"
	DirectionOutgoing Direction = "outgoing"
)

type Status string

const (
	// StatusReceived is the terminal (and only) status of incoming messages.
	StatusReceived Status = "received"

	// Outgoing messages advance queued -> sent -> delivered, never backwards.
	StatusQueued    Status = "queued"
	StatusSent      Status = "sent"
	StatusDelivered Status = "delivered"
)

// DefaultType is assumed when the gateway does not say what kind of
// message it delivered.
const DefaultType = "text"

var (
	// ErrEmptyPhone is returned when no canonical phone is provided.
	ErrEmptyPhone = errors.New("message phone is required")
	// ErrEmptyBody is returned when an outgoing message has no body.
	ErrEmptyBody = errors.New("message body is required")
	// ErrInvalidTransition is returned when a status change would move
	// a message backwards or off its lifecycle.
	ErrInvalidTransition = errors.New("invalid message status transition")
	// ErrNotFound is returned when a referenced message does not exist.
	ErrNotFound = errors.New("message not found")
)

// statusRank orders the outgoing lifecycle. Incoming messages are not in
// the map; their status never changes.
var statusRank = map[Status]int{
	StatusQueued:    0,
	StatusSent:      1,
	StatusDelivered: 2,
}

// Message is a single entry in a conversation's history. Content lives
// here; the conversation only keeps a denormalized preview.
type Message struct {
	ID             uuid.UUID
	ConversationID uuid.UUID // uuid.Nil for phone-only sends before resolution
	Phone          string
	Direction      Direction
	Body           string
	Type           string
	MediaURL       string
	MessageID      string // the gateway's id, or a generated one
	SenderName     string
	Timestamp      time.Time
	Status         Status
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewIncoming constructs a received message from a webhook payload. The
// gateway's message id is preserved when present so duplicate deliveries
// stay identifiable; otherwise a fresh id is generated.
func NewIncoming(conversationID uuid.UUID, canonicalPhone, body, msgType, mediaURL, externalID, senderName string, ts time.Time) (*Message, error) {
	if canonicalPhone == "" {
		return nil, ErrEmptyPhone
	}
	if msgType == "" {
		msgType = DefaultType
	}
	if externalID == "" {
		externalID = uuid.NewString()
	}
	now := time.Now()
	if ts.IsZero() {
		ts = now
	}

	return &Message{
		ID:             uuid.New(),
		ConversationID: conversationID,
		Phone:          canonicalPhone,
		Direction:      DirectionIncoming,
		Body:           body,
		Type:           msgType,
		MediaURL:       mediaURL,
		MessageID:      externalID,
		SenderName:     senderName,
		Timestamp:      ts,
		Status:         StatusReceived,
		CreatedAt:      now,
	}, nil
}

// NewOutgoing constructs a queued message created by a dashboard send.
func NewOutgoing(conversationID uuid.UUID, canonicalPhone, body, msgType, senderName string) (*Message, error) {
	body = strings.TrimSpace(body)

	if canonicalPhone == "" {
		return nil, ErrEmptyPhone
	}
	if body == "" {
		return nil, ErrEmptyBody
	}
	if msgType == "" {
		msgType = DefaultType
	}

	now := time.Now()
	return &Message{
		ID:             uuid.New(),
		ConversationID: conversationID,
		Phone:          canonicalPhone,
		Direction:      DirectionOutgoing,
		Body:           body,
		Type:           msgType,
		MessageID:      uuid.NewString(),
		SenderName:     senderName,
		Timestamp:      now,
		Status:         StatusQueued,
		CreatedAt:      now,
	}, nil
}

// Advance moves an outgoing message forward in its lifecycle. Moving
// backwards, repeating a status, or touching an incoming message is
// rejected so the observable status history stays monotonic.
func (m *Message) Advance(next Status) error {
	if m.Direction != DirectionOutgoing {
		return ErrInvalidTransition
	}

	cur, ok := statusRank[m.Status]
	if !ok {
		return ErrInvalidTransition
	}
	nxt, ok := statusRank[next]
	if !ok || nxt <= cur {
		return ErrInvalidTransition
	}

	m.Status = next
	return nil
}

// Preview returns the text shown in the conversation list for this
// message: the body, or a bracketed type marker for media-only messages.
func (m *Message) Preview() string {
	if m.Body != "" {
		return m.Body
	}
	return "[" + m.Type + "]"
}
