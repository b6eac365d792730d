package httpHandler

import (
	"net/http"
	"taskboard-server/services"
	"taskboard-server/usecases"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	board    *usecases.BoardUseCase
	recorder *services.ActivityRecorder
}

func NewCommentHandler(board *usecases.BoardUseCase, recorder *services.ActivityRecorder) *CommentHandler {
	return &CommentHandler{
		board:    board,
		recorder: recorder,
	}
}

type addCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

type updateCommentRequest struct {
	Text string `json:"text"`
}

// GetComments handles GET /user/:id/columns/:columnId/cards/:cardId/comments
func (h *CommentHandler) GetComments(c *gin.Context) {
	comments, err := h.board.GetComments(CurrentUser(c).ID, c.Param("cardId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve comments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  comments,
		"count": len(comments),
	})
}

// AddComment handles POST /user/:id/columns/:columnId/cards/:cardId
func (h *CommentHandler) AddComment(c *gin.Context) {
	var req addCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	comment, err := h.board.AddComment(CurrentUser(c).ID, c.Param("cardId"), req.Text)
	if err != nil {
		respondError(c, err)
		return
	}

	h.recorder.Record(comment.UserID, "created", "comment", comment.ID)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Comment created successfully",
		"data":    comment,
	})
}

// UpdateComment handles PATCH /user/:id/columns/:columnId/cards/:cardId/comments/:commentId
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	var req updateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	comment, err := h.board.UpdateComment(CurrentUser(c).ID, c.Param("commentId"), req.Text)
	if err != nil {
		respondError(c, err)
		return
	}

	h.recorder.Record(comment.UserID, "updated", "comment", comment.ID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Comment updated successfully",
		"data":    comment,
	})
}

// DeleteComment handles DELETE /user/:id/columns/:columnId/cards/:cardId/comments/:commentId
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	user := CurrentUser(c)
	commentID := c.Param("commentId")

	if err := h.board.DeleteComment(user.ID, commentID); err != nil {
		respondError(c, err)
		return
	}

	h.recorder.Record(user.ID, "deleted", "comment", commentID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Comment deleted successfully",
	})
}
