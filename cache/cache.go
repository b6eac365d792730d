package cache

import (
	"sync"
	"taskboard-server/entities"
)

// ActivityBuffer holds board events in memory until the recorder flushes
// them to the database in bulk.
type ActivityBuffer struct {
	mu      sync.RWMutex
	entries map[string][]entities.Activity // map[userID][]entries
}

func NewActivityBuffer() *ActivityBuffer {
	return &ActivityBuffer{
		entries: make(map[string][]entities.Activity),
	}
}

// Add appends an entry to the owning user's buffer.
func (b *ActivityBuffer) Add(entry entities.Activity) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.entries[entry.UserID] = append(b.entries[entry.UserID], entry)
}

// ForUser returns a copy of the buffered entries for one user.
func (b *ActivityBuffer) ForUser(userID string) []entities.Activity {
	b.mu.RLock()
	defer b.mu.RUnlock()

	buffered := make([]entities.Activity, len(b.entries[userID]))
	copy(buffered, b.entries[userID])
	return buffered
}

// All returns a copy of everything currently buffered.
func (b *ActivityBuffer) All() []entities.Activity {
	b.mu.RLock()
	defer b.mu.RUnlock()

	var all []entities.Activity
	for _, entries := range b.entries {
		all = append(all, entries...)
	}
	return all
}

// Stats returns counts about the current buffer.
func (b *ActivityBuffer) Stats() map[string]interface{} {
	b.mu.RLock()
	defer b.mu.RUnlock()

	total := 0
	for _, entries := range b.entries {
		total += len(entries)
	}

	return map[string]interface{}{
		"total_users":   len(b.entries),
		"total_entries": total,
	}
}

// Clear empties the buffer after a flush.
func (b *ActivityBuffer) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.entries = make(map[string][]entities.Activity)
}
