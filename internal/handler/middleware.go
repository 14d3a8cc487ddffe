package handler

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
)

const (
	sessionCookie = "session"
	userCookie    = "user"

	ctxUserIDKey = "userID"
)

// userCookiePayload is the client-readable identity cookie set at login.
type userCookiePayload struct {
	ID    string  `json:"id"`
	Email string  `json:"email"`
	Name  *string `json:"name"`
}

// currentUser reads the identity cookie leniently: a missing or malformed
// cookie means the request proceeds as a guest.
func (h *Handler) currentUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		// c.Cookie already percent-decodes the value once. Older sessions may
		// carry a double-encoded cookie, so fall back to a second decode.
		raw, err := c.Cookie(userCookie)
		if err == nil && raw != "" {
			var payload userCookiePayload
			if json.Unmarshal([]byte(raw), &payload) != nil {
				if decoded, err := url.QueryUnescape(raw); err == nil {
					_ = json.Unmarshal([]byte(decoded), &payload)
				}
			}
			if payload.ID != "" {
				c.Set(ctxUserIDKey, payload.ID)
			}
		}
		c.Next()
	}
}

// RequireAuth resolves the session cookie strictly and aborts with 401 when
// it does not map to a live session.
func (h *Handler) RequireAuth(c *gin.Context) {
	token, err := c.Cookie(sessionCookie)
	if err != nil || token == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No session cookie"})
		return
	}
	userID, err := h.Auth.ResolveSession(token)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid session"})
		return
	}
	c.Set(ctxUserIDKey, userID)
	c.Next()
}

// userID returns the requesting user's id, empty for guests.
func userID(c *gin.Context) string {
	if v, ok := c.Get(ctxUserIDKey); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}
