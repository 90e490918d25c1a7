package outboxgorm

import (
	"context"
	"errors"

	"github.com/blazeos/blaze-bridge/internal/db"
	"github.com/blazeos/blaze-bridge/internal/domain/outbox"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository is a GORM-backed implementation of outbox.Repository.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs an outbox repository using the given DB adapter.
func NewRepository(d db.DB) *Repository {
	return &Repository{
		db: d.Conn().(*gorm.DB),
	}
}

// Save inserts a new pending item.
func (r *Repository) Save(ctx context.Context, i *outbox.Item) error {
	return r.db.WithContext(ctx).Create(fromDomain(i)).Error
}

// GetByID returns a single outbox item by id.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*outbox.Item, error) {
	var model ItemModel

	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&model).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, outbox.ErrNotFound
		}
		return nil, err
	}

	return toDomain(&model), nil
}

// ListPending returns pending items in insertion order, using
// SELECT ... FOR UPDATE SKIP LOCKED so concurrent pollers do not hand
// the same item to two deliverers.
func (r *Repository) ListPending(ctx context.Context) ([]*outbox.Item, error) {
	var models []ItemModel

	err := r.db.WithContext(ctx).
		Where("status = ?", string(outbox.StatusPending)).
		Order("created_at ASC").
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Find(&models).Error

	if err != nil {
		return nil, err
	}

	return toDomainMany(models), nil
}

// Update persists the current state of an item.
func (r *Repository) Update(ctx context.Context, i *outbox.Item) error {
	res := r.db.WithContext(ctx).
		Model(&ItemModel{}).
		Where("id = ?", i.ID).
		Updates(map[string]interface{}{
			"status":  string(i.Status),
			"sent_at": i.SentAt,
		})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return outbox.ErrNotFound
	}
	return nil
}

// compile-time interface check
var _ outbox.Repository = (*Repository)(nil)
