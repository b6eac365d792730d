package httpHandler

import (
	"errors"
	"net/http"
	"strings"

	"taskboard-server/auth"
	"taskboard-server/entities"
	"taskboard-server/usecases"

	"github.com/gin-gonic/gin"
)

const principalKey = "principal"

// CurrentUser returns the authenticated user set by RequireAuth.
func CurrentUser(c *gin.Context) *entities.User {
	user, _ := c.MustGet(principalKey).(*entities.User)
	return user
}

// RequireAuth verifies the bearer token and re-resolves the principal. Any
// failure is a 401; the claims alone are never trusted as the user.
func RequireAuth(tokens *auth.TokenService, users *usecases.UserUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		claims, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		user, err := users.FindByClaims(claims.Username, claims.Email)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set(principalKey, user)
		c.Next()
	}
}

// RequireSameUser rejects requests whose :id path segment names a different
// user than the principal. The mismatch reads as NotFound so the route never
// confirms that another user id exists.
func RequireSameUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUser(c).ID != c.Param("id") {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "resource not found"})
			return
		}
		c.Next()
	}
}

// RequireColumnOwnership guards routes carrying :columnId.
func RequireColumnOwnership(board *usecases.BoardUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := board.GetColumn(CurrentUser(c).ID, c.Param("columnId")); err != nil {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "column not found"})
			return
		}
		c.Next()
	}
}

// RequireCommentOwnership guards routes carrying :commentId.
func RequireCommentOwnership(board *usecases.BoardUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := board.GetComment(CurrentUser(c).ID, c.Param("commentId")); err != nil {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "comment not found"})
			return
		}
		c.Next()
	}
}

// respondError maps the use case error taxonomy onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecases.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, usecases.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, usecases.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
