package repositories

import "taskboard-server/entities"

type UserRepository interface {
	Create(user *entities.User) error
	GetByID(id string) (*entities.User, error)
	GetByEmail(email string) (*entities.User, error)
	GetByClaims(username, email string) (*entities.User, error)
	Delete(id string) error
}

type ColumnRepository interface {
	Create(column *entities.Column) error
	GetByOwner(id, userID string) (*entities.Column, error)
	GetAllByUserID(userID string) ([]entities.Column, error)
	Update(column *entities.Column) error
	Delete(id string) error
}

type CardRepository interface {
	Create(card *entities.Card) error
	GetByOwner(id, userID string) (*entities.Card, error)
	GetAllByColumnID(userID, columnID string) ([]entities.Card, error)
	Update(card *entities.Card) error
	Delete(id string) error
}

type CommentRepository interface {
	Create(comment *entities.Comment) error
	GetByOwner(id, userID string) (*entities.Comment, error)
	GetAllByCardID(userID, cardID string) ([]entities.Comment, error)
	Update(comment *entities.Comment) error
	Delete(id string) error
}

type ActivityRepository interface {
	CreateBatch(entries []entities.Activity) error
	GetByUserID(userID string, limit int) ([]entities.Activity, error)
}
