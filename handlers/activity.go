package handlers

import (
	"net/http"
	httpHandler "taskboard-server/handlers/http"
	"taskboard-server/services"

	"github.com/gin-gonic/gin"
)

type ActivityHandler struct {
	recorder *services.ActivityRecorder
}

func NewActivityHandler(recorder *services.ActivityRecorder) *ActivityHandler {
	return &ActivityHandler{
		recorder: recorder,
	}
}

// GetActivity returns the caller's buffered (not yet flushed) events.
func (h *ActivityHandler) GetActivity(c *gin.Context) {
	entries := h.recorder.Buffered(httpHandler.CurrentUser(c).ID)

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"count":  len(entries),
		"data":   entries,
	})
}

// GetHistory returns the caller's flushed events from the database.
func (h *ActivityHandler) GetHistory(c *gin.Context) {
	entries, err := h.recorder.History(httpHandler.CurrentUser(c).ID, 100)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve activity history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"count":  len(entries),
		"data":   entries,
	})
}

// Flush forces a buffer flush.
func (h *ActivityHandler) Flush(c *gin.Context) {
	h.recorder.Flush()
	c.JSON(http.StatusOK, gin.H{"status": "flushed"})
}

// GetStats returns buffer statistics.
func (h *ActivityHandler) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"stats":  h.recorder.Stats(),
	})
}
