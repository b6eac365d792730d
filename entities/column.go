package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Column is a board column owned by a single user. Deleting the owner
// removes the column; deleting the column removes its cards.
type Column struct {
	ID        string `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name      string `json:"name"`
	UserID    string `gorm:"index;type:varchar(36)" json:"user_id"`
	User      User   `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func (col *Column) BeforeCreate(tx *gorm.DB) (err error) {
	if col.ID == "" {
		col.ID = uuid.New().String()
	}
	col.CreatedAt = time.Now().Format(time.RFC3339)
	col.UpdatedAt = col.CreatedAt
	return
}
