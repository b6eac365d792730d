package httpHandler

import (
	"net/http"
	"taskboard-server/services"
	"taskboard-server/usecases"

	"github.com/gin-gonic/gin"
)

type ColumnHandler struct {
	board    *usecases.BoardUseCase
	recorder *services.ActivityRecorder
}

func NewColumnHandler(board *usecases.BoardUseCase, recorder *services.ActivityRecorder) *ColumnHandler {
	return &ColumnHandler{
		board:    board,
		recorder: recorder,
	}
}

type addColumnRequest struct {
	Name string `json:"name" binding:"required"`
}

type updateColumnRequest struct {
	Name string `json:"name"`
}

// GetColumns handles GET /user/:id/columns
func (h *ColumnHandler) GetColumns(c *gin.Context) {
	columns, err := h.board.GetColumns(CurrentUser(c).ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve columns"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  columns,
		"count": len(columns),
	})
}

// AddColumn handles POST /user/:id/columns
func (h *ColumnHandler) AddColumn(c *gin.Context) {
	var req addColumnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	column, err := h.board.AddColumn(CurrentUser(c).ID, req.Name)
	if err != nil {
		respondError(c, err)
		return
	}

	h.recorder.Record(column.UserID, "created", "column", column.ID)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Column created successfully",
		"data":    column,
	})
}

// UpdateColumn handles PATCH /user/:id/columns/:columnId
func (h *ColumnHandler) UpdateColumn(c *gin.Context) {
	var req updateColumnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	column, err := h.board.UpdateColumn(CurrentUser(c).ID, c.Param("columnId"), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}

	h.recorder.Record(column.UserID, "updated", "column", column.ID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Column updated successfully",
		"data":    column,
	})
}

// DeleteColumn handles DELETE /user/:id/columns/:columnId
func (h *ColumnHandler) DeleteColumn(c *gin.Context) {
	user := CurrentUser(c)
	columnID := c.Param("columnId")

	if err := h.board.DeleteColumn(user.ID, columnID); err != nil {
		respondError(c, err)
		return
	}

	h.recorder.Record(user.ID, "deleted", "column", columnID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Column deleted successfully",
	})
}
