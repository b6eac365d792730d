package repositories

import (
	"taskboard-server/db"
	"taskboard-server/entities"
	"time"
)

type columnPgRepository struct {
	db db.Database
}

func NewColumnPgRepository(database db.Database) ColumnRepository {
	return &columnPgRepository{db: database}
}

func (r *columnPgRepository) Create(column *entities.Column) error {
	return r.db.GetDB().Create(column).Error
}

// GetByOwner resolves a column only when it belongs to the given user, so a
// miss and another user's column look the same to the caller.
func (r *columnPgRepository) GetByOwner(id, userID string) (*entities.Column, error) {
	var column entities.Column
	err := r.db.GetDB().Where("id = ? AND user_id = ?", id, userID).First(&column).Error
	if err != nil {
		return nil, err
	}
	return &column, nil
}

func (r *columnPgRepository) GetAllByUserID(userID string) ([]entities.Column, error) {
	var columns []entities.Column
	err := r.db.GetDB().Where("user_id = ?", userID).Order("created_at ASC").Find(&columns).Error
	return columns, err
}

func (r *columnPgRepository) Update(column *entities.Column) error {
	column.UpdatedAt = time.Now().Format(time.RFC3339)
	return r.db.GetDB().Save(column).Error
}

func (r *columnPgRepository) Delete(id string) error {
	return r.db.GetDB().Where("id = ?", id).Delete(&entities.Column{}).Error
}
