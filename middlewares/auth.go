package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nbui/fitstore-api/models"
)

const (
	// SessionCookie is the cookie carrying the signed session token.
	SessionCookie = "token"

	userContextKey = "user"
)

type TokenVerifier interface {
	Verify(token string) (uint, error)
}

type IdentityResolver interface {
	ByID(id uint) (*models.User, error)
}

// Identify resolves the acting user from the session cookie and stashes it
// in the request context. A missing, invalid or stale token just leaves the
// request anonymous; handlers that need an identity enforce that themselves.
func Identify(tokens TokenVerifier, users IdentityResolver) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token, err := ctx.Cookie(SessionCookie)
		if err != nil || token == "" {
			ctx.Next()
			return
		}

		userID, err := tokens.Verify(token)
		if err != nil {
			ctx.Next()
			return
		}

		user, err := users.ByID(userID)
		if err != nil || user == nil {
			ctx.Next()
			return
		}

		ctx.Set(userContextKey, user)
		ctx.Next()
	}
}

// CurrentUser returns the identified user, or nil for anonymous requests.
func CurrentUser(ctx *gin.Context) *models.User {
	value, exists := ctx.Get(userContextKey)
	if !exists {
		return nil
	}
	user, ok := value.(*models.User)
	if !ok {
		return nil
	}
	return user
}

// RequireAuth rejects anonymous requests before the handler runs.
func RequireAuth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if CurrentUser(ctx) == nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "you must be signed in to do that"})
			return
		}
		ctx.Next()
	}
}
