package messagegorm

import (
	"context"
	"errors"

	"github.com/blazeos/blaze-bridge/internal/db"
	"github.com/blazeos/blaze-bridge/internal/domain/message"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository is a GORM-backed implementation of message.Repository.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a message repository using the given DB adapter.
func NewRepository(d db.DB) *Repository {
	return &Repository{
		db: d.Conn().(*gorm.DB),
	}
}

// Save inserts a new message record into the database.
func (r *Repository) Save(ctx context.Context, m *message.Message) error {
	return r.db.WithContext(ctx).Create(fromDomain(m)).Error
}

// GetByID returns a single message by id.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*message.Message, error) {
	var model MessageModel

	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&model).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, message.ErrNotFound
		}
		return nil, err
	}

	return toDomain(&model), nil
}

// ListByConversation returns a conversation's history oldest-first. The
// gateway timestamp orders the list; creation time breaks ties and covers
// rows that carry no timestamp.
func (r *Repository) ListByConversation(ctx context.Context, conversationID uuid.UUID) ([]*message.Message, error) {
	var models []MessageModel

	err := r.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("timestamp ASC, created_at ASC").
		Find(&models).Error

	if err != nil {
		return nil, err
	}

	return toDomainMany(models), nil
}

// UpdateStatus persists the current status of a message.
func (r *Repository) UpdateStatus(ctx context.Context, m *message.Message) error {
	return r.db.WithContext(ctx).
		Model(&MessageModel{}).
		Where("id = ?", m.ID).
		Update("status", string(m.Status)).Error
}

// CountByDirection returns incoming/outgoing message totals.
func (r *Repository) CountByDirection(ctx context.Context) (incoming, outgoing int64, err error) {
	err = r.db.WithContext(ctx).
		Model(&MessageModel{}).
		Where("direction = ?", string(message.DirectionIncoming)).
		Count(&incoming).Error
	if err != nil {
		return 0, 0, err
	}

	err = r.db.WithContext(ctx).
		Model(&MessageModel{}).
		Where("direction = ?", string(message.DirectionOutgoing)).
		Count(&outgoing).Error
	if err != nil {
		return 0, 0, err
	}

	return incoming, outgoing, nil
}

// compile-time interface check
var _ message.Repository = (*Repository)(nil)
