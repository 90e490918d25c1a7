package conversationgorm

import (
	"context"
	"errors"

	"github.com/blazeos/blaze-bridge/internal/db"
	"github.com/blazeos/blaze-bridge/internal/domain/conversation"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository is a GORM-backed implementation of conversation.Repository.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a conversation repository using the given DB adapter.
func NewRepository(d db.DB) *Repository {
	return &Repository{
		db: d.Conn().(*gorm.DB),
	}
}

// Save inserts a new conversation record.
func (r *Repository) Save(ctx context.Context, c *conversation.Conversation) error {
	return r.db.WithContext(ctx).Create(fromDomain(c)).Error
}

// GetByID returns a single conversation by id.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*conversation.Conversation, error) {
	var model ConversationModel

	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&model).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, conversation.ErrNotFound
		}
		return nil, err
	}

	return toDomain(&model), nil
}

// GetByPhone returns the conversation keyed by a canonical phone.
func (r *Repository) GetByPhone(ctx context.Context, phone string) (*conversation.Conversation, error) {
	var model ConversationModel

	err := r.db.WithContext(ctx).
		Where("phone = ?", phone).
		First(&model).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, conversation.ErrNotFound
		}
		return nil, err
	}

	return toDomain(&model), nil
}

// List returns all conversations newest-first by last message time.
// NULLS LAST keeps never-messaged conversations at the end.
func (r *Repository) List(ctx context.Context) ([]*conversation.Conversation, error) {
	var models []ConversationModel

	err := r.db.WithContext(ctx).
		Order("last_message_at DESC NULLS LAST").
		Find(&models).Error

	if err != nil {
		return nil, err
	}

	return toDomainMany(models), nil
}

// Update persists the full current state of a conversation.
func (r *Repository) Update(ctx context.Context, c *conversation.Conversation) error {
	// Select("*") forces zero values (e.g. unread_count=0 after a read)
	// to be written as well; Omit keeps identity columns stable.
	res := r.db.WithContext(ctx).
		Model(&ConversationModel{}).
		Where("id = ?", c.ID).
		Select("*").
		Omit("id", "created_at", "deleted_at").
		Updates(fromDomain(c))

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return conversation.ErrNotFound
	}
	return nil
}

// Stats returns aggregate conversation counters.
func (r *Repository) Stats(ctx context.Context) (total, active, unread int64, err error) {
	q := r.db.WithContext(ctx).Model(&ConversationModel{})

	if err = q.Count(&total).Error; err != nil {
		return 0, 0, 0, err
	}

	err = r.db.WithContext(ctx).
		Model(&ConversationModel{}).
		Where("status = ?", string(conversation.StatusActive)).
		Count(&active).Error
	if err != nil {
		return 0, 0, 0, err
	}

	row := r.db.WithContext(ctx).
		Model(&ConversationModel{}).
		Select("COALESCE(SUM(unread_count), 0)").
		Row()
	if err = row.Scan(&unread); err != nil {
		return 0, 0, 0, err
	}

	return total, active, unread, nil
}

// compile-time interface check
var _ conversation.Repository = (*Repository)(nil)
