package outboxgorm

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ItemModel is the GORM persistence model for outbox items.
// It maps directly to the "outbox" table in Postgres.
type ItemModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	MessageID uuid.UUID  `gorm:"type:uuid;index"`
	Phone     string     `gorm:"size:20;not null"`
	Body      string     `gorm:"type:text"`
	Type      string     `gorm:"size:20;not null"`
	Status    string     `gorm:"size:20;not null;index"`
	SentAt    *time.Time `gorm:"index"`
	CreatedAt time.Time  `gorm:"not null;index"`
	UpdatedAt time.Time
}

// TableName overrides the default table name used by GORM.
func (ItemModel) TableName() string {
	return "outbox"
}

// BeforeCreate ensures a UUID is set before inserting a new record.
func (m *ItemModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
