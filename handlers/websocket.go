package handlers

import (
	"log"
	"net/http"

	"taskboard-server/auth"
	"taskboard-server/usecases"
	"taskboard-server/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// WSHandler serves the per-user live event stream. Browsers cannot set an
// Authorization header on a websocket dial, so the token rides in the query
// string instead.
type WSHandler struct {
	mgr    *ws.Manager
	tokens *auth.TokenService
	users  *usecases.UserUseCase
}

func NewWSHandler(mgr *ws.Manager, tokens *auth.TokenService, users *usecases.UserUseCase) *WSHandler {
	return &WSHandler{mgr: mgr, tokens: tokens, users: users}
}

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// HandleUserWS upgrades to websocket and keeps the connection registered
// until the client goes away.
// GET /ws?token=<bearer token>
func (h *WSHandler) HandleUserWS(c *gin.Context) {
	tokenString := c.Query("token")
	if tokenString == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}

	claims, err := h.tokens.Verify(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
		return
	}
	user, err := h.users.FindByClaims(claims.Username, claims.Email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}
	h.mgr.Register(user.ID, conn)
	log.Printf("user connected: %s", user.ID)

	defer func() {
		h.mgr.Unregister(user.ID)
		log.Printf("user disconnected: %s", user.ID)
	}()

	// The stream is server-push only; drain client frames until close.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("user %s closed connection", user.ID)
			} else {
				log.Printf("read error from %s: %v", user.ID, err)
			}
			return
		}
	}
}

// GetConnectedUsers GET /activity/connected
func (h *WSHandler) GetConnectedUsers(c *gin.Context) {
	ids := h.mgr.List()
	c.JSON(http.StatusOK, gin.H{"users": ids, "count": len(ids)})
}
