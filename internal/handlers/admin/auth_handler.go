package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	adminModels "github.com/hanootc/yasir-platform-sub002/internal/models/admin"
	adminServices "github.com/hanootc/yasir-platform-sub002/internal/services/admin"
	"github.com/hanootc/yasir-platform-sub002/internal/session"
)

type AuthHandler struct {
	auth *adminServices.AuthService
}

func NewAuthHandler(auth *adminServices.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login handles POST /api/admin/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req adminModels.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	resp, err := h.auth.Login(c.Request.Context(), &req)
	if err == adminServices.ErrInvalidCredentials {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log in", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Logout handles POST /api/admin/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	sessionID := c.MustGet("session_id").(uuid.UUID)

	if err := h.auth.Logout(c.Request.Context(), sessionID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log out", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// Session handles GET /api/admin/session
func (h *AuthHandler) Session(c *gin.Context) {
	sessionID := c.MustGet("session_id").(uuid.UUID)

	sess, err := h.auth.Session(c.Request.Context(), sessionID)
	if err == session.ErrNotFound {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Session expired"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load session", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, sess)
}
