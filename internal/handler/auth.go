package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/soranjiro/AxI-itinerary/internal/apperror"
	"github.com/soranjiro/AxI-itinerary/internal/service"
)

// RegisterUser handles POST /api/auth/register.
func (h *Handler) RegisterUser(c *gin.Context) {
	var in service.RegisterInput
	if err := c.ShouldBindJSON(&in); err != nil {
		h.respondError(c, apperror.BadRequest("Invalid request body"))
		return
	}
	user, err := h.Auth.Register(in)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// Login handles POST /api/auth/login. On success it sets the httpOnly session
// cookie and the client-readable user cookie.
func (h *Handler) Login(c *gin.Context) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, apperror.BadRequest("Invalid request body"))
		return
	}

	user, session, err := h.Auth.Login(body.Email, body.Password)
	if err != nil {
		h.respondError(c, err)
		return
	}

	maxAge := int(h.Auth.SessionTTL().Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookie, session, maxAge, "/", "", true, true)

	// SetCookie percent-encodes the value; clients decode exactly once.
	payload, _ := json.Marshal(userCookiePayload{ID: user.ID, Email: user.Email, Name: user.Name})
	c.SetCookie(userCookie, string(payload), maxAge, "/", "", true, false)

	c.JSON(http.StatusOK, gin.H{"user": gin.H{
		"id":    user.ID,
		"email": user.Email,
		"name":  user.Name,
	}})
}

// Logout handles POST /api/auth/logout: revokes the session row and clears
// both cookies.
func (h *Handler) Logout(c *gin.Context) {
	if token, err := c.Cookie(sessionCookie); err == nil && token != "" {
		if err := h.Auth.Logout(token); err != nil {
			h.respondError(c, err)
			return
		}
	}
	c.SetCookie(sessionCookie, "", -1, "/", "", true, true)
	c.SetCookie(userCookie, "", -1, "/", "", true, false)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetUser handles GET /api/users/:id.
func (h *Handler) GetUser(c *gin.Context) {
	user, err := h.Auth.GetUser(c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateUser handles PATCH /api/users/:id. Only the account owner may update
// their profile.
func (h *Handler) UpdateUser(c *gin.Context) {
	id := c.Param("id")
	if id != userID(c) {
		h.respondError(c, apperror.Unauthorized("Cannot update another user"))
		return
	}
	var body struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, apperror.BadRequest("Invalid request body"))
		return
	}
	user, err := h.Auth.UpdateProfile(id, body.Name)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
