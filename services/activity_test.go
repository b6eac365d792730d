package services

import (
	"taskboard-server/db"
	"taskboard-server/repositories"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRecorder(t *testing.T) *ActivityRecorder {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Migrate(gdb))

	repo := repositories.NewActivityPgRepository(&db.GormDatabase{DB: gdb})
	return NewActivityRecorder(repo, nil)
}

func TestRecordBuffersPerUser(t *testing.T) {
	r := newTestRecorder(t)

	r.Record("u1", "created", "column", "col-1")
	r.Record("u1", "deleted", "column", "col-1")
	r.Record("u2", "created", "card", "card-1")

	assert.Len(t, r.Buffered("u1"), 2)
	assert.Len(t, r.Buffered("u2"), 1)

	entry := r.Buffered("u1")[0]
	assert.NotEmpty(t, entry.ID)
	assert.NotEmpty(t, entry.CreatedAt)
	assert.Equal(t, "column", entry.ResourceType)
}

func TestFlushMovesBufferToDatabase(t *testing.T) {
	r := newTestRecorder(t)

	r.Record("u1", "created", "column", "col-1")
	r.Record("u1", "created", "card", "card-1")

	r.Flush()

	assert.Empty(t, r.Buffered("u1"))

	history, err := r.History("u1", 10)
	require.NoError(t, err)
	assert.Len(t, history, 2)
}

func TestFlushEmptyBufferIsNoop(t *testing.T) {
	r := newTestRecorder(t)

	r.Flush()

	history, err := r.History("u1", 10)
	require.NoError(t, err)
	assert.Empty(t, history)
}
