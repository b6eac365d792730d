package httpHandler

import (
	"net/http"
	"taskboard-server/services"
	"taskboard-server/usecases"

	"github.com/gin-gonic/gin"
)

type CardHandler struct {
	board    *usecases.BoardUseCase
	recorder *services.ActivityRecorder
}

func NewCardHandler(board *usecases.BoardUseCase, recorder *services.ActivityRecorder) *CardHandler {
	return &CardHandler{
		board:    board,
		recorder: recorder,
	}
}

type addCardRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
}

type updateCardRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// GetCards handles GET /user/:id/columns/:columnId/cards
func (h *CardHandler) GetCards(c *gin.Context) {
	cards, err := h.board.GetCards(CurrentUser(c).ID, c.Param("columnId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve cards"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  cards,
		"count": len(cards),
	})
}

// AddCard handles POST /user/:id/columns/:columnId
func (h *CardHandler) AddCard(c *gin.Context) {
	var req addCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	card, err := h.board.AddCard(CurrentUser(c).ID, c.Param("columnId"), req.Title, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}

	h.recorder.Record(card.UserID, "created", "card", card.ID)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Card created successfully",
		"data":    card,
	})
}

// UpdateCard handles PATCH /user/:id/columns/:columnId/cards/:cardId
func (h *CardHandler) UpdateCard(c *gin.Context) {
	var req updateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	card, err := h.board.UpdateCard(CurrentUser(c).ID, c.Param("cardId"), req.Title, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}

	h.recorder.Record(card.UserID, "updated", "card", card.ID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Card updated successfully",
		"data":    card,
	})
}

// DeleteCard handles DELETE /user/:id/columns/:columnId/cards/:cardId
func (h *CardHandler) DeleteCard(c *gin.Context) {
	user := CurrentUser(c)
	cardID := c.Param("cardId")

	if err := h.board.DeleteCard(user.ID, cardID); err != nil {
		respondError(c, err)
		return
	}

	h.recorder.Record(user.ID, "deleted", "card", cardID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Card deleted successfully",
	})
}
