package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	adminModels "github.com/hanootc/yasir-platform-sub002/internal/models/admin"
	adminServices "github.com/hanootc/yasir-platform-sub002/internal/services/admin"
)

const maxAvatarSize = 5 << 20 // 5 MB

// ProfileHandler serves the admin's own profile and avatar.
type ProfileHandler struct {
	profile *adminServices.ProfileService
}

func NewProfileHandler(profile *adminServices.ProfileService) *ProfileHandler {
	return &ProfileHandler{profile: profile}
}

// Get handles GET /api/admin/profile
func (h *ProfileHandler) Get(c *gin.Context) {
	adminID := c.MustGet("admin_id").(uuid.UUID)

	user, err := h.profile.Get(c.Request.Context(), adminID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, user)
}

// Update handles POST /api/admin/profile
func (h *ProfileHandler) Update(c *gin.Context) {
	adminID := c.MustGet("admin_id").(uuid.UUID)

	var req adminModels.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	user, err := h.profile.Update(c.Request.Context(), adminID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, user)
}

// UploadAvatar handles PUT /api/admin/avatar
func (h *ProfileHandler) UploadAvatar(c *gin.Context) {
	adminID := c.MustGet("admin_id").(uuid.UUID)

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Avatar file required"})
		return
	}
	if fileHeader.Size > maxAvatarSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Avatar file too large"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read avatar", "details": err.Error()})
		return
	}
	defer file.Close()

	url, err := h.profile.UploadAvatar(c.Request.Context(), adminID, file, fileHeader.Filename)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to store avatar", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"avatar_url": url})
}
