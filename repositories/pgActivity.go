package repositories

import (
	"taskboard-server/db"
	"taskboard-server/entities"
)

type activityPgRepository struct {
	db db.Database
}

func NewActivityPgRepository(database db.Database) ActivityRepository {
	return &activityPgRepository{db: database}
}

func (r *activityPgRepository) CreateBatch(entries []entities.Activity) error {
	if len(entries) == 0 {
		return nil
	}
	return r.db.GetDB().Create(&entries).Error
}

func (r *activityPgRepository) GetByUserID(userID string, limit int) ([]entities.Activity, error) {
	var entries []entities.Activity
	q := r.db.GetDB().Where("user_id = ?", userID).Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&entries).Error
	return entries, err
}
