package usecases

import (
	"taskboard-server/entities"
	"taskboard-server/repositories"
)

// BoardUseCase covers the column -> card -> comment hierarchy. Every lookup
// is scoped to the owning user; a miss is ErrNotFound regardless of whether
// the row exists under someone else.
type BoardUseCase struct {
	ColumnRepo  repositories.ColumnRepository
	CardRepo    repositories.CardRepository
	CommentRepo repositories.CommentRepository
}

func NewBoardUseCase(columnRepo repositories.ColumnRepository, cardRepo repositories.CardRepository, commentRepo repositories.CommentRepository) *BoardUseCase {
	return &BoardUseCase{
		ColumnRepo:  columnRepo,
		CardRepo:    cardRepo,
		CommentRepo: commentRepo,
	}
}

// ============= Column operations =============

func (uc *BoardUseCase) AddColumn(userID, name string) (*entities.Column, error) {
	column := &entities.Column{
		Name:   name,
		UserID: userID,
	}
	if err := uc.ColumnRepo.Create(column); err != nil {
		return nil, err
	}
	return column, nil
}

func (uc *BoardUseCase) GetColumns(userID string) ([]entities.Column, error) {
	return uc.ColumnRepo.GetAllByUserID(userID)
}

func (uc *BoardUseCase) GetColumn(userID, columnID string) (*entities.Column, error) {
	column, err := uc.ColumnRepo.GetByOwner(columnID, userID)
	if err != nil {
		return nil, ErrNotFound
	}
	return column, nil
}

// UpdateColumn overwrites only non-empty patch fields; an empty string
// leaves the stored value alone.
func (uc *BoardUseCase) UpdateColumn(userID, columnID, name string) (*entities.Column, error) {
	existing, err := uc.ColumnRepo.GetByOwner(columnID, userID)
	if err != nil {
		return nil, ErrNotFound
	}

	if name != "" {
		existing.Name = name
	}

	if err := uc.ColumnRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// DeleteColumn hard-deletes the column; the store cascades to its cards and
// their comments.
func (uc *BoardUseCase) DeleteColumn(userID, columnID string) error {
	if _, err := uc.ColumnRepo.GetByOwner(columnID, userID); err != nil {
		return ErrNotFound
	}
	return uc.ColumnRepo.Delete(columnID)
}

// ============= Card operations =============

// AddCard attaches a card to the column resolved by columnID. Ancestry past
// the ownership check is not re-verified, matching the guard layer contract.
func (uc *BoardUseCase) AddCard(userID, columnID, title, description string) (*entities.Card, error) {
	card := &entities.Card{
		Title:       title,
		Description: description,
		ColumnID:    columnID,
		UserID:      userID,
	}
	if err := uc.CardRepo.Create(card); err != nil {
		return nil, err
	}
	return card, nil
}

func (uc *BoardUseCase) GetCards(userID, columnID string) ([]entities.Card, error) {
	return uc.CardRepo.GetAllByColumnID(userID, columnID)
}

func (uc *BoardUseCase) GetCard(userID, cardID string) (*entities.Card, error) {
	card, err := uc.CardRepo.GetByOwner(cardID, userID)
	if err != nil {
		return nil, ErrNotFound
	}
	return card, nil
}

func (uc *BoardUseCase) UpdateCard(userID, cardID, title, description string) (*entities.Card, error) {
	existing, err := uc.CardRepo.GetByOwner(cardID, userID)
	if err != nil {
		return nil, ErrNotFound
	}

	if title != "" {
		existing.Title = title
	}
	if description != "" {
		existing.Description = description
	}

	if err := uc.CardRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (uc *BoardUseCase) DeleteCard(userID, cardID string) error {
	if _, err := uc.CardRepo.GetByOwner(cardID, userID); err != nil {
		return ErrNotFound
	}
	return uc.CardRepo.Delete(cardID)
}

// ============= Comment operations =============

func (uc *BoardUseCase) AddComment(userID, cardID, text string) (*entities.Comment, error) {
	comment := &entities.Comment{
		Text:   text,
		CardID: cardID,
		UserID: userID,
	}
	if err := uc.CommentRepo.Create(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (uc *BoardUseCase) GetComments(userID, cardID string) ([]entities.Comment, error) {
	return uc.CommentRepo.GetAllByCardID(userID, cardID)
}

func (uc *BoardUseCase) GetComment(userID, commentID string) (*entities.Comment, error) {
	comment, err := uc.CommentRepo.GetByOwner(commentID, userID)
	if err != nil {
		return nil, ErrNotFound
	}
	return comment, nil
}

func (uc *BoardUseCase) UpdateComment(userID, commentID, text string) (*entities.Comment, error) {
	existing, err := uc.CommentRepo.GetByOwner(commentID, userID)
	if err != nil {
		return nil, ErrNotFound
	}

	if text != "" {
		existing.Text = text
	}

	if err := uc.CommentRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (uc *BoardUseCase) DeleteComment(userID, commentID string) error {
	if _, err := uc.CommentRepo.GetByOwner(commentID, userID); err != nil {
		return ErrNotFound
	}
	return uc.CommentRepo.Delete(commentID)
}
