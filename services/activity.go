package services

import (
	"encoding/json"
	"log"
	"taskboard-server/cache"
	"taskboard-server/entities"
	"taskboard-server/repositories"
	"taskboard-server/ws"
	"time"

	"github.com/google/uuid"
)

// ActivityRecorder buffers board events in memory, pushes them live to the
// owning user's websocket when one is open, and bulk-inserts the buffer on
// an interval.
type ActivityRecorder struct {
	buffer   *cache.ActivityBuffer
	repo     repositories.ActivityRepository
	manager  *ws.Manager
	interval time.Duration
}

func NewActivityRecorder(repo repositories.ActivityRepository, manager *ws.Manager) *ActivityRecorder {
	return &ActivityRecorder{
		buffer:   cache.NewActivityBuffer(),
		repo:     repo,
		manager:  manager,
		interval: 5 * time.Minute,
	}
}

// Start launches the periodic flush loop.
func (r *ActivityRecorder) Start() {
	ticker := time.NewTicker(r.interval)
	go func() {
		for range ticker.C {
			r.Flush()
		}
	}()
}

// Record buffers one event and pushes it to the user's live stream if any.
// IDs and timestamps are assigned here because the row reaches the database
// much later.
func (r *ActivityRecorder) Record(userID, action, resourceType, resourceID string) {
	entry := entities.Activity{
		ID:           uuid.New().String(),
		UserID:       userID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
	}
	r.buffer.Add(entry)

	if r.manager != nil && r.manager.IsConnected(userID) {
		payload, _ := json.Marshal(map[string]interface{}{
			"type":          "activity",
			"action":        entry.Action,
			"resource_type": entry.ResourceType,
			"resource_id":   entry.ResourceID,
			"timestamp":     entry.CreatedAt,
		})
		if err := r.manager.SendToUser(userID, payload); err != nil {
			log.Printf("failed to push activity to user %s: %v", userID, err)
		}
	}
}

// Flush bulk-inserts everything buffered and clears the buffer.
func (r *ActivityRecorder) Flush() {
	entries := r.buffer.All()
	if len(entries) == 0 {
		return
	}
	if err := r.repo.CreateBatch(entries); err != nil {
		log.Printf("Error bulk inserting %d activity entries: %v", len(entries), err)
		return
	}
	log.Printf("Inserted %d buffered activity entries", len(entries))
	r.buffer.Clear()
}

// Buffered returns the not-yet-flushed entries for one user.
func (r *ActivityRecorder) Buffered(userID string) []entities.Activity {
	return r.buffer.ForUser(userID)
}

// History returns flushed entries from the database for one user.
func (r *ActivityRecorder) History(userID string, limit int) ([]entities.Activity, error) {
	return r.repo.GetByUserID(userID, limit)
}

// Stats returns buffer statistics.
func (r *ActivityRecorder) Stats() map[string]interface{} {
	return r.buffer.Stats()
}
