package cache

import (
	"taskboard-server/entities"
	"testing"

	"github.com/stretchr/testify/assert"
)

func entry(userID, action string) entities.Activity {
	return entities.Activity{
		ID:           action + "-" + userID,
		UserID:       userID,
		Action:       action,
		ResourceType: "column",
		ResourceID:   "col-1",
	}
}

func TestBufferScopedPerUser(t *testing.T) {
	buf := NewActivityBuffer()
	buf.Add(entry("u1", "created"))
	buf.Add(entry("u1", "updated"))
	buf.Add(entry("u2", "created"))

	assert.Len(t, buf.ForUser("u1"), 2)
	assert.Len(t, buf.ForUser("u2"), 1)
	assert.Empty(t, buf.ForUser("u3"))
	assert.Len(t, buf.All(), 3)
}

func TestBufferStatsAndClear(t *testing.T) {
	buf := NewActivityBuffer()
	buf.Add(entry("u1", "created"))
	buf.Add(entry("u2", "created"))

	stats := buf.Stats()
	assert.Equal(t, 2, stats["total_users"])
	assert.Equal(t, 2, stats["total_entries"])

	buf.Clear()
	assert.Empty(t, buf.All())
	assert.Equal(t, 0, buf.Stats()["total_entries"])
}

func TestForUserReturnsCopy(t *testing.T) {
	buf := NewActivityBuffer()
	buf.Add(entry("u1", "created"))

	got := buf.ForUser("u1")
	got[0].Action = "mutated"

	assert.Equal(t, "created", buf.ForUser("u1")[0].Action)
}
