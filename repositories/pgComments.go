package repositories

import (
	"taskboard-server/db"
	"taskboard-server/entities"
	"time"
)

type commentPgRepository struct {
	db db.Database
}

func NewCommentPgRepository(database db.Database) CommentRepository {
	return &commentPgRepository{db: database}
}

func (r *commentPgRepository) Create(comment *entities.Comment) error {
	return r.db.GetDB().Create(comment).Error
}

func (r *commentPgRepository) GetByOwner(id, userID string) (*entities.Comment, error) {
	var comment entities.Comment
	err := r.db.GetDB().Where("id = ? AND user_id = ?", id, userID).First(&comment).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentPgRepository) GetAllByCardID(userID, cardID string) ([]entities.Comment, error) {
	var comments []entities.Comment
	err := r.db.GetDB().Where("user_id = ? AND card_id = ?", userID, cardID).Order("created_at ASC").Find(&comments).Error
	return comments, err
}

func (r *commentPgRepository) Update(comment *entities.Comment) error {
	comment.UpdatedAt = time.Now().Format(time.RFC3339)
	return r.db.GetDB().Save(comment).Error
}

func (r *commentPgRepository) Delete(id string) error {
	return r.db.GetDB().Where("id = ?", id).Delete(&entities.Comment{}).Error
}
