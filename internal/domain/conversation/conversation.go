// Package conversation holds the domain model for the per-phone-number
// conversation ledger. There is exactly one conversation per canonical
// phone number; it is created lazily on the first inbound message and
// never deleted by normal operation.
package conversation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusArchived Status = "archived"
)

var (
	// ErrNotFound is returned when a conversation id or phone is unknown.
	ErrNotFound = errors.New("conversation not found")
	// ErrEmptyPhone is returned when no canonical phone is provided.
	ErrEmptyPhone = errors.New("conversation phone is required")
)

// Conversation aggregates message history metadata for one phone number.
// It owns the denormalized last-message preview and the unread counter;
// message content is owned by the message log.
type Conversation struct {
	ID            uuid.UUID
	Phone         string // canonical, unique across conversations
	Name          string
	LastMessage   string
	LastMessageAt *time.Time
	UnreadCount   int
	Status        Status
	IsGroup       bool
	GroupName     string
	Labels        []string
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// New creates a conversation for the first inbound message from a phone.
// The first message is already counted as unread.
func New(canonicalPhone, name, preview string, isGroup bool, groupName string) (*Conversation, error) {
	if canonicalPhone == "" {
		return nil, ErrEmptyPhone
	}
	if name == "" {
		name = canonicalPhone
	}

	now := time.Now()
	return &Conversation{
		ID:            uuid.New(),
		Phone:         canonicalPhone,
		Name:          name,
		LastMessage:   preview,
		LastMessageAt: &now,
		UnreadCount:   1,
		Status:        StatusActive,
		IsGroup:       isGroup,
		GroupName:     groupName,
		Labels:        []string{},
		CreatedAt:     now,
	}, nil
}

// ApplyInbound records another inbound message: refreshes the preview,
// bumps the unread counter and forces the conversation active. The
// display name is only replaced when the sender supplied one.
func (c *Conversation) ApplyInbound(name, preview string) {
	if name != "" {
		c.Name = name
	}
	now := time.Now()
	c.LastMessage = preview
	c.LastMessageAt = &now
	c.UnreadCount++
	c.Status = StatusActive
}

// TouchOutbound refreshes the preview after a dashboard send. The unread
// counter tracks inbound traffic only, so it is left alone.
func (c *Conversation) TouchOutbound(preview string) {
	now := time.Now()
	c.LastMessage = preview
	c.LastMessageAt = &now
}

// MarkRead resets the unread counter.
func (c *Conversation) MarkRead() {
	c.UnreadCount = 0
}

// Patch carries a partial update from the dashboard. Nil fields are
// left untouched.
type Patch struct {
	Name   *string
	Status *Status
	Labels *[]string
	Notes  *string
}

// Apply merges a patch into the conversation.
func (c *Conversation) Apply(p Patch) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Status != nil {
		c.Status = *p.Status
	}
	if p.Labels != nil {
		c.Labels = *p.Labels
	}
	if p.Notes != nil {
		c.Notes = *p.Notes
	}
}
