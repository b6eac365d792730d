package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Card lives inside a column. The user_id duplicates what the column chain
// already knows; it is set once at creation and never revalidated on update.
type Card struct {
	ID          string `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Title       string `json:"title"`
	Description string `gorm:"type:text" json:"description"`
	ColumnID    string `gorm:"index;type:varchar(36)" json:"column_id"`
	Column      Column `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	UserID      string `gorm:"index;type:varchar(36)" json:"user_id"`
	User        User   `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

func (c *Card) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	c.CreatedAt = time.Now().Format(time.RFC3339)
	c.UpdatedAt = c.CreatedAt
	return
}
