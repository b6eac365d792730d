package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Comment hangs off a card. Same denormalized user_id as Card.
type Comment struct {
	ID        string `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Text      string `gorm:"type:text" json:"text"`
	CardID    string `gorm:"index;type:varchar(36)" json:"card_id"`
	Card      Card   `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	UserID    string `gorm:"index;type:varchar(36)" json:"user_id"`
	User      User   `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func (cm *Comment) BeforeCreate(tx *gorm.DB) (err error) {
	if cm.ID == "" {
		cm.ID = uuid.New().String()
	}
	cm.CreatedAt = time.Now().Format(time.RFC3339)
	cm.UpdatedAt = cm.CreatedAt
	return
}
