package middleware

import (
	"net/http"
	"strings"
	"venuefinder-backend/services"
	"venuefinder-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Context keys set by the auth middlewares.
const (
	ContextUserID       = "userId"
	ContextSessionToken = "sessionToken"
)

// SessionCookieName is the cookie the auth controllers set on login.
const SessionCookieName = "token"

func extractToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header != "" {
		if len(header) > 7 && strings.EqualFold(header[0:7], "bearer ") {
			return header[7:]
		}
		return header
	}
	if cookie, err := c.Cookie(SessionCookieName); err == nil {
		return cookie
	}
	return ""
}

func resolveSession(c *gin.Context) (uuid.UUID, string, bool) {
	token := extractToken(c)
	if token == "" {
		return uuid.Nil, "", false
	}

	userIDString, err := services.Sessions.Get(c.Request.Context(), token)
	if err != nil {
		return uuid.Nil, "", false
	}

	userID, err := uuid.Parse(userIDString)
	if err != nil {
		return uuid.Nil, "", false
	}
	return userID, token, true
}

// RequireAuth rejects requests without a valid session token.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, token, ok := resolveSession(c)
		if !ok {
			utils.RespondWithError(c, http.StatusUnauthorized, "Authentication required")
			c.Abort()
			return
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextSessionToken, token)
		c.Next()
	}
}

// OptionalAuth resolves the session when a valid token is present but
// lets anonymous requests through. Used by search, where history is only
// recorded for authenticated callers.
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, token, ok := resolveSession(c); ok {
			c.Set(ContextUserID, userID)
			c.Set(ContextSessionToken, token)
		}
		c.Next()
	}
}

// CurrentUserID returns the authenticated user id set by RequireAuth or
// OptionalAuth, if any.
func CurrentUserID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(ContextUserID)
	if !exists {
		return uuid.Nil, false
	}
	userID, ok := value.(uuid.UUID)
	return userID, ok
}
