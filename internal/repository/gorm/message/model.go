package messagegorm

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MessageModel is the GORM persistence model for messages.
// It maps directly to the "messages" table in Postgres.
type MessageModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	ConversationID uuid.UUID `gorm:"type:uuid;index"`
	Phone          string    `gorm:"size:20;not null;index"`
	Direction      string    `gorm:"size:10;not null;index"`
	Body           string    `gorm:"type:text"`
	Type           string    `gorm:"size:20;not null"`
	MediaURL       string    `gorm:"type:text"`
	MessageID      string    `gorm:"size:100;index"`
	SenderName     string    `gorm:"size:100"`
	Timestamp      time.Time `gorm:"index"`
	Status         string    `gorm:"size:20;not null"`
	CreatedAt      time.Time `gorm:"not null;index"`
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

// TableName overrides the default table name used by GORM.
func (MessageModel) TableName() string {
	return "messages"
}

// BeforeCreate ensures a UUID is set before inserting a new record.
func (m *MessageModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
