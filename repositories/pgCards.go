package repositories

import (
	"taskboard-server/db"
	"taskboard-server/entities"
	"time"
)

type cardPgRepository struct {
	db db.Database
}

func NewCardPgRepository(database db.Database) CardRepository {
	return &cardPgRepository{db: database}
}

func (r *cardPgRepository) Create(card *entities.Card) error {
	return r.db.GetDB().Create(card).Error
}

func (r *cardPgRepository) GetByOwner(id, userID string) (*entities.Card, error) {
	var card entities.Card
	err := r.db.GetDB().Where("id = ? AND user_id = ?", id, userID).First(&card).Error
	if err != nil {
		return nil, err
	}
	return &card, nil
}

func (r *cardPgRepository) GetAllByColumnID(userID, columnID string) ([]entities.Card, error) {
	var cards []entities.Card
	err := r.db.GetDB().Where("user_id = ? AND column_id = ?", userID, columnID).Order("created_at ASC").Find(&cards).Error
	return cards, err
}

func (r *cardPgRepository) Update(card *entities.Card) error {
	card.UpdatedAt = time.Now().Format(time.RFC3339)
	return r.db.GetDB().Save(card).Error
}

func (r *cardPgRepository) Delete(id string) error {
	return r.db.GetDB().Where("id = ?", id).Delete(&entities.Card{}).Error
}
