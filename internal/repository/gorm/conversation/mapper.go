package conversationgorm

import (
	"github.com/blazeos/blaze-bridge/internal/domain/conversation"
)

// toDomain maps a GORM ConversationModel to a domain-level Conversation.
func toDomain(m *ConversationModel) *conversation.Conversation {
	labels := m.Labels
	if labels == nil {
		labels = []string{}
	}
	return &conversation.Conversation{
		ID:            m.ID,
		Phone:         m.Phone,
		Name:          m.Name,
		LastMessage:   m.LastMessage,
		LastMessageAt: m.LastMessageAt,
		UnreadCount:   m.UnreadCount,
		Status:        conversation.Status(m.Status),
		IsGroup:       m.IsGroup,
		GroupName:     m.GroupName,
		Labels:        labels,
		Notes:         m.Notes,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// toDomainMany maps a slice of models to domain Conversations.
func toDomainMany(models []ConversationModel) []*conversation.Conversation {
	out := make([]*conversation.Conversation, len(models))
	for i := range models {
		out[i] = toDomain(&models[i])
	}
	return out
}

// fromDomain maps a domain-level Conversation to a GORM model.
func fromDomain(c *conversation.Conversation) *ConversationModel {
	return &ConversationModel{
		ID:            c.ID,
		Phone:         c.Phone,
		Name:          c.Name,
		LastMessage:   c.LastMessage,
		LastMessageAt: c.LastMessageAt,
		UnreadCount:   c.UnreadCount,
		Status:        string(c.Status),
		IsGroup:       c.IsGroup,
		GroupName:     c.GroupName,
		Labels:        c.Labels,
		Notes:         c.Notes,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}
