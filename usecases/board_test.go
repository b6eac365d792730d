package usecases

import (
	"taskboard-server/db"
	"taskboard-server/entities"
	"taskboard-server/repositories"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type boardFixture struct {
	board    *BoardUseCase
	users    repositories.UserRepository
	database db.Database
}

func newBoardFixture(t *testing.T) *boardFixture {
	t.Helper()
	database := newTestDB(t)
	return &boardFixture{
		board: NewBoardUseCase(
			repositories.NewColumnPgRepository(database),
			repositories.NewCardPgRepository(database),
			repositories.NewCommentPgRepository(database),
		),
		users:    repositories.NewUserPgRepository(database),
		database: database,
	}
}

func (f *boardFixture) createUser(t *testing.T, username, email string) *entities.User {
	t.Helper()
	user := &entities.User{Username: username, Email: email, PasswordHash: "irrelevant"}
	require.NoError(t, f.users.Create(user))
	return user
}

func TestAddAndListColumns(t *testing.T) {
	f := newBoardFixture(t)
	alice := f.createUser(t, "alice", "a@x.com")

	todo, err := f.board.AddColumn(alice.ID, "todo")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, todo.UserID)
	assert.NotEmpty(t, todo.ID)
	assert.NotEmpty(t, todo.CreatedAt)

	_, err = f.board.AddColumn(alice.ID, "done")
	require.NoError(t, err)

	columns, err := f.board.GetColumns(alice.ID)
	require.NoError(t, err)
	assert.Len(t, columns, 2)
}

func TestOwnershipFailuresReadAsNotFound(t *testing.T) {
	f := newBoardFixture(t)
	alice := f.createUser(t, "alice", "a@x.com")
	bob := f.createUser(t, "bobby", "b@x.com")

	column, err := f.board.AddColumn(alice.ID, "todo")
	require.NoError(t, err)
	card, err := f.board.AddCard(alice.ID, column.ID, "t", "d")
	require.NoError(t, err)
	comment, err := f.board.AddComment(alice.ID, card.ID, "hi")
	require.NoError(t, err)

	// bob sees none of alice's resources, and never a Forbidden-style error
	_, err = f.board.GetColumn(bob.ID, column.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = f.board.GetCard(bob.ID, card.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = f.board.GetComment(bob.ID, comment.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = f.board.UpdateColumn(bob.ID, column.ID, "stolen")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, f.board.DeleteColumn(bob.ID, column.ID), ErrNotFound)
	assert.ErrorIs(t, f.board.DeleteCard(bob.ID, card.ID), ErrNotFound)
	assert.ErrorIs(t, f.board.DeleteComment(bob.ID, comment.ID), ErrNotFound)

	// alice's column survived bob's attempts untouched
	got, err := f.board.GetColumn(alice.ID, column.ID)
	require.NoError(t, err)
	assert.Equal(t, "todo", got.Name)
}

func TestUpdateCardPartialPatch(t *testing.T) {
	f := newBoardFixture(t)
	alice := f.createUser(t, "alice", "a@x.com")

	column, err := f.board.AddColumn(alice.ID, "todo")
	require.NoError(t, err)
	card, err := f.board.AddCard(alice.ID, column.ID, "title", "description")
	require.NoError(t, err)

	// only title set: description keeps its value
	updated, err := f.board.UpdateCard(alice.ID, card.ID, "new title", "")
	require.NoError(t, err)
	assert.Equal(t, "new title", updated.Title)
	assert.Equal(t, "description", updated.Description)

	// empty-string patch is a no-op across the board
	updated, err = f.board.UpdateCard(alice.ID, card.ID, "", "")
	require.NoError(t, err)
	assert.Equal(t, "new title", updated.Title)
	assert.Equal(t, "description", updated.Description)
}

func TestUpdateColumnAndCommentPartialPatch(t *testing.T) {
	f := newBoardFixture(t)
	alice := f.createUser(t, "alice", "a@x.com")

	column, err := f.board.AddColumn(alice.ID, "todo")
	require.NoError(t, err)
	card, err := f.board.AddCard(alice.ID, column.ID, "t", "d")
	require.NoError(t, err)
	comment, err := f.board.AddComment(alice.ID, card.ID, "hi")
	require.NoError(t, err)

	updatedColumn, err := f.board.UpdateColumn(alice.ID, column.ID, "")
	require.NoError(t, err)
	assert.Equal(t, "todo", updatedColumn.Name)

	updatedComment, err := f.board.UpdateComment(alice.ID, comment.ID, "edited")
	require.NoError(t, err)
	assert.Equal(t, "edited", updatedComment.Text)
}

func TestDeleteColumnCascades(t *testing.T) {
	f := newBoardFixture(t)
	alice := f.createUser(t, "alice", "a@x.com")

	column, err := f.board.AddColumn(alice.ID, "todo")
	require.NoError(t, err)
	card, err := f.board.AddCard(alice.ID, column.ID, "t", "d")
	require.NoError(t, err)
	comment, err := f.board.AddComment(alice.ID, card.ID, "hi")
	require.NoError(t, err)

	require.NoError(t, f.board.DeleteColumn(alice.ID, column.ID))

	_, err = f.board.GetColumn(alice.ID, column.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// the card and its comment went with the column
	_, err = f.board.GetCard(alice.ID, card.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = f.board.GetComment(alice.ID, comment.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	cards, err := f.board.GetCards(alice.ID, column.ID)
	require.NoError(t, err)
	assert.Empty(t, cards)
}

func TestDeleteCardCascadesToComments(t *testing.T) {
	f := newBoardFixture(t)
	alice := f.createUser(t, "alice", "a@x.com")

	column, err := f.board.AddColumn(alice.ID, "todo")
	require.NoError(t, err)
	card, err := f.board.AddCard(alice.ID, column.ID, "t", "d")
	require.NoError(t, err)
	comment, err := f.board.AddComment(alice.ID, card.ID, "hi")
	require.NoError(t, err)

	require.NoError(t, f.board.DeleteCard(alice.ID, card.ID))

	_, err = f.board.GetComment(alice.ID, comment.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteUserCascadesToEverything(t *testing.T) {
	f := newBoardFixture(t)
	alice := f.createUser(t, "alice", "a@x.com")

	column, err := f.board.AddColumn(alice.ID, "todo")
	require.NoError(t, err)
	card, err := f.board.AddCard(alice.ID, column.ID, "t", "d")
	require.NoError(t, err)
	_, err = f.board.AddComment(alice.ID, card.ID, "hi")
	require.NoError(t, err)

	require.NoError(t, f.users.Delete(alice.ID))

	var count int64
	require.NoError(t, f.database.GetDB().Model(&entities.Column{}).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, f.database.GetDB().Model(&entities.Card{}).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, f.database.GetDB().Model(&entities.Comment{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCommentListingScopedToCard(t *testing.T) {
	f := newBoardFixture(t)
	alice := f.createUser(t, "alice", "a@x.com")

	column, err := f.board.AddColumn(alice.ID, "todo")
	require.NoError(t, err)
	first, err := f.board.AddCard(alice.ID, column.ID, "one", "d")
	require.NoError(t, err)
	second, err := f.board.AddCard(alice.ID, column.ID, "two", "d")
	require.NoError(t, err)

	_, err = f.board.AddComment(alice.ID, first.ID, "on first")
	require.NoError(t, err)
	_, err = f.board.AddComment(alice.ID, second.ID, "on second")
	require.NoError(t, err)

	comments, err := f.board.GetComments(alice.ID, first.ID)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "on first", comments[0].Text)
}
