package conversationgorm

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ConversationModel is the GORM persistence model for conversations.
// It maps directly to the "conversations" table in Postgres.
type ConversationModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Phone         string     `gorm:"size:20;not null;uniqueIndex"`
	Name          string     `gorm:"size:100"`
	LastMessage   string     `gorm:"type:text"`
	LastMessageAt *time.Time `gorm:"index"`
	UnreadCount   int        `gorm:"not null;default:0"`
	Status        string     `gorm:"size:20;not null;index"`
	IsGroup       bool       `gorm:"not null;default:false"`
	GroupName     string     `gorm:"size:100"`
	Labels        []string   `gorm:"serializer:json"`
	Notes         string     `gorm:"type:text"`
	CreatedAt     time.Time  `gorm:"not null"`
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

// TableName overrides the default table name used by GORM.
func (ConversationModel) TableName() string {
	return "conversations"
}

// BeforeCreate ensures a UUID is set before inserting a new record.
func (m *ConversationModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
