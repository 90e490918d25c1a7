package outboxgorm

import (
	"github.com/blazeos/blaze-bridge/internal/domain/outbox"
)

// toDomain maps a GORM ItemModel to a domain-level outbox Item.
func toDomain(m *ItemModel) *outbox.Item {
	return &outbox.Item{
		ID:        m.ID,
		MessageID: m.MessageID,
		Phone:     m.Phone,
		Body:      m.Body,
		Type:      m.Type,
		Status:    outbox.Status(m.Status),
		SentAt:    m.SentAt,
		CreatedAt: m.CreatedAt,
	}
}

// toDomainMany maps a slice of ItemModel to domain Items.
func toDomainMany(models []ItemModel) []*outbox.Item {
	out := make([]*outbox.Item, len(models))
	for i := range models {
		out[i] = toDomain(&models[i])
	}
	return out
}

// fromDomain maps a domain-level Item to a GORM ItemModel.
func fromDomain(i *outbox.Item) *ItemModel {
	return &ItemModel{
		ID:        i.ID,
		MessageID: i.MessageID,
		Phone:     i.Phone,
		Body:      i.Body,
		Type:      i.Type,
		Status:    string(i.Status),
		SentAt:    i.SentAt,
		CreatedAt: i.CreatedAt,
	}
}
