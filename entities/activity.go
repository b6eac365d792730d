package entities

// Activity is an append-only record of a board mutation. Entries are
// buffered in memory first and bulk-inserted later, so the ID and timestamp
// are assigned by the recorder, not by a gorm hook.
type Activity struct {
	ID           string `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserID       string `gorm:"index;type:varchar(36)" json:"user_id"`
	Action       string `gorm:"type:varchar(32)" json:"action"`        // created, updated, deleted
	ResourceType string `gorm:"type:varchar(32)" json:"resource_type"` // column, card, comment
	ResourceID   string `gorm:"type:varchar(36)" json:"resource_id"`
	CreatedAt    string `gorm:"type:varchar(64)" json:"created_at"`
}
