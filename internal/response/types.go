package response

import (
	"time"

	"github.com/blazeos/blaze-bridge/internal/domain/conversation"
	"github.com/blazeos/blaze-bridge/internal/domain/message"
	"github.com/blazeos/blaze-bridge/internal/domain/outbox"
	"github.com/google/uuid"
)

type WelcomePayload struct {
	Message string `json:"message"`
}

type HealthPayload struct {
	Status string `json:"status"`
}

type WelcomeResponse struct {
	Success   bool           `json:"success"`
	Data      WelcomePayload `json:"data"`
	Timestamp string         `json:"timestamp"`
}

type HealthResponse struct {
	Success   bool          `json:"success"`
	Data      HealthPayload `json:"data"`
	Timestamp string        `json:"timestamp"`
}

// WebhookAccepted is the flat success body of the inbound webhook; the
// gateway contract pins this shape.
type WebhookAccepted struct {
	Success        bool   `json:"success"`
	MessageID      string `json:"messageId"`
	ConversationID string `json:"conversationId"`
	Duplicate      bool   `json:"duplicate,omitempty"`
}

// WebhookError is the flat error body of the inbound webhook.
type WebhookError struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// WebhookStatus answers the gateway's GET verification probe.
type WebhookStatus struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Timestamp string `json:"timestamp"`
}

// ConversationDTO is the public-facing representation of a conversation.
type ConversationDTO struct {
	ID            string     `json:"id"`
	Phone         string     `json:"phone"`
	Name          string     `json:"name"`
	LastMessage   string     `json:"lastMessage"`
	LastMessageAt *time.Time `json:"lastMessageAt,omitempty"`
	UnreadCount   int        `json:"unreadCount"`
	Status        string     `json:"status"`
	IsGroup       bool       `json:"isGroup"`
	GroupName     string     `json:"groupName,omitempty"`
	Labels        []string   `json:"labels"`
	Notes         string     `json:"notes"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// MessageDTO is the public-facing representation of a message.
type MessageDTO struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversationId,omitempty"`
	Phone          string    `json:"phone"`
	Direction      string    `json:"direction"`
	Body           string    `json:"body"`
	Type           string    `json:"type"`
	MediaURL       string    `json:"mediaUrl,omitempty"`
	MessageID      string    `json:"messageId"`
	SenderName     string    `json:"senderName"`
	Timestamp      time.Time `json:"timestamp"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
}

// OutboxItemDTO is the shape the gateway polls for pending deliveries.
type OutboxItemDTO struct {
	ID        string     `json:"id"`
	MessageID string     `json:"messageId"`
	Phone     string     `json:"phone"`
	Body      string     `json:"body"`
	Type      string     `json:"type"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
	SentAt    *time.Time `json:"sentAt,omitempty"`
}

// StatsPayload aggregates counters for the dashboard header.
type StatsPayload struct {
	TotalConversations  int64 `json:"totalConversations"`
	ActiveConversations int64 `json:"activeConversations"`
	TotalMessages       int64 `json:"totalMessages"`
	Incoming            int64 `json:"incoming"`
	Outgoing            int64 `json:"outgoing"`
	UnreadCount         int64 `json:"unreadCount"`
}

type DispatcherControlPayload struct {
	Message string `json:"message"`
}

type DispatcherControlResponse struct {
	Success   bool                     `json:"success"`
	Data      DispatcherControlPayload `json:"data"`
	Timestamp string                   `json:"timestamp"`
}

type ConversationsResponse struct {
	Success   bool              `json:"success"`
	Data      []ConversationDTO `json:"data"`
	Timestamp string            `json:"timestamp"`
}

type MessagesResponse struct {
	Success   bool         `json:"success"`
	Data      []MessageDTO `json:"data"`
	Timestamp string       `json:"timestamp"`
}

type OutboxResponse struct {
	Success   bool            `json:"success"`
	Data      []OutboxItemDTO `json:"data"`
	Timestamp string          `json:"timestamp"`
}

type StatsResponse struct {
	Success   bool         `json:"success"`
	Data      StatsPayload `json:"data"`
	Timestamp string       `json:"timestamp"`
}

// FromConversation converts a domain conversation into its DTO.
func FromConversation(c *conversation.Conversation) ConversationDTO {
	labels := c.Labels
	if labels == nil {
		labels = []string{}
	}
	return ConversationDTO{
		ID:            c.ID.String(),
		Phone:         c.Phone,
		Name:          c.Name,
		LastMessage:   c.LastMessage,
		LastMessageAt: c.LastMessageAt,
		UnreadCount:   c.UnreadCount,
		Status:        string(c.Status),
		IsGroup:       c.IsGroup,
		GroupName:     c.GroupName,
		Labels:        labels,
		Notes:         c.Notes,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

// FromConversations converts a list of domain conversations.
func FromConversations(cs []*conversation.Conversation) []ConversationDTO {
	out := make([]ConversationDTO, len(cs))
	for i, c := range cs {
		out[i] = FromConversation(c)
	}
	return out
}

// FromMessage converts a domain message into its DTO.
func FromMessage(m *message.Message) MessageDTO {
	dto := MessageDTO{
		ID:         m.ID.String(),
		Phone:      m.Phone,
		Direction:  string(m.Direction),
		Body:       m.Body,
		Type:       m.Type,
		MediaURL:   m.MediaURL,
		MessageID:  m.MessageID,
		SenderName: m.SenderName,
		Timestamp:  m.Timestamp,
		Status:     string(m.Status),
		CreatedAt:  m.CreatedAt,
	}
	if m.ConversationID != uuid.Nil {
		dto.ConversationID = m.ConversationID.String()
	}
	return dto
}

// FromMessages converts a list of domain messages.
func FromMessages(ms []*message.Message) []MessageDTO {
	out := make([]MessageDTO, len(ms))
	for i, m := range ms {
		out[i] = FromMessage(m)
	}
	return out
}

// FromOutboxItem converts a domain outbox item into its DTO.
func FromOutboxItem(i *outbox.Item) OutboxItemDTO {
	return OutboxItemDTO{
		ID:        i.ID.String(),
		MessageID: i.MessageID.String(),
		Phone:     i.Phone,
		Body:      i.Body,
		Type:      i.Type,
		Status:    string(i.Status),
		CreatedAt: i.CreatedAt,
		SentAt:    i.SentAt,
	}
}

// FromOutboxItems converts a list of domain outbox items.
func FromOutboxItems(items []*outbox.Item) []OutboxItemDTO {
	out := make([]OutboxItemDTO, len(items))
	for i, item := range items {
		out[i] = FromOutboxItem(item)
	}
	return out
}
