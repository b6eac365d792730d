package usecases

import (
	"taskboard-server/auth"
	"taskboard-server/db"
	"taskboard-server/repositories"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory sqlite database with foreign keys enabled.
// The pool is pinned to one connection so every query sees the same memory
// database.
func newTestDB(t *testing.T) db.Database {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Migrate(gdb))
	return &db.GormDatabase{DB: gdb}
}

func newTestUserUseCase(t *testing.T) (*UserUseCase, db.Database) {
	t.Helper()
	database := newTestDB(t)
	tokens := auth.NewTokenService("test-secret")
	return NewUserUseCase(repositories.NewUserPgRepository(database), tokens), database
}

func TestRegisterIssuesVerifiableToken(t *testing.T) {
	uc, _ := newTestUserUseCase(t)

	result, err := uc.Register("alice", "a@x.com", "password1")
	require.NoError(t, err)
	require.NotEmpty(t, result.Token)
	assert.NotEqual(t, "password1", result.User.PasswordHash)

	claims, err := uc.Tokens.Verify(result.Token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "a@x.com", claims.Email)

	// the verified claims resolve back to the same stored principal
	principal, err := uc.FindByClaims(claims.Username, claims.Email)
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, principal.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	uc, _ := newTestUserUseCase(t)

	_, err := uc.Register("alice", "a@x.com", "password1")
	require.NoError(t, err)

	_, err = uc.Register("alice2", "a@x.com", "password2")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthenticate(t *testing.T) {
	uc, _ := newTestUserUseCase(t)

	_, err := uc.Register("alice", "a@x.com", "password1")
	require.NoError(t, err)

	result, err := uc.Authenticate("a@x.com", "password1")
	require.NoError(t, err)
	assert.Equal(t, "alice", result.User.Username)
	assert.NotEmpty(t, result.Token)

	_, err = uc.Authenticate("a@x.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// unknown email reads the same as a wrong password
	_, err = uc.Authenticate("nobody@x.com", "password1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestGetByIDMissing(t *testing.T) {
	uc, _ := newTestUserUseCase(t)

	_, err := uc.GetByID("no-such-id")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFindByClaimsUnknownUser(t *testing.T) {
	uc, _ := newTestUserUseCase(t)

	_, err := uc.FindByClaims("ghost", "g@x.com")
	assert.ErrorIs(t, err, ErrNotFound)
}
