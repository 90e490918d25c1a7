package messagegorm

import (
	"github.com/blazeos/blaze-bridge/internal/domain/message"
)

// toDomain maps a GORM MessageModel to a domain-level Message.
func toDomain(m *MessageModel) *message.Message {
	return &message.Message{
		ID:             m.ID,
		ConversationID: m.ConversationID,
		Phone:          m.Phone,
		Direction:      message.Direction(m.Direction),
		Body:           m.Body,
		Type:           m.Type,
		MediaURL:       m.MediaURL,
		MessageID:      m.MessageID,
		SenderName:     m.SenderName,
		Timestamp:      m.Timestamp,
		Status:         message.Status(m.Status),
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// toDomainMany maps a slice of MessageModel to a slice of domain Messages.
func toDomainMany(models []MessageModel) []*message.Message {
	out := make([]*message.Message, len(models))
	for i := range models {
		out[i] = toDomain(&models[i])
	}
	return out
}

// fromDomain maps a domain-level Message to a GORM MessageModel.
func fromDomain(m *message.Message) *MessageModel {
	return &MessageModel{
		ID:             m.ID,
		ConversationID: m.ConversationID,
		Phone:          m.Phone,
		Direction:      string(m.Direction),
		Body:           m.Body,
		Type:           m.Type,
		MediaURL:       m.MediaURL,
		MessageID:      m.MessageID,
		SenderName:     m.SenderName,
		Timestamp:      m.Timestamp,
		Status:         string(m.Status),
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}
