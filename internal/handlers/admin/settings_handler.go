package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	adminModels "github.com/hanootc/yasir-platform-sub002/internal/models/admin"
	adminServices "github.com/hanootc/yasir-platform-sub002/internal/services/admin"
)

// SettingsHandler serves the system settings form.
type SettingsHandler struct {
	settings *adminServices.SettingsService
}

func NewSettingsHandler(settings *adminServices.SettingsService) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

// Get handles GET /api/admin/system-settings
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.settings.Get(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load settings", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, settings)
}

// Update handles PUT /api/admin/system-settings
func (h *SettingsHandler) Update(c *gin.Context) {
	var req adminModels.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	adminID := c.MustGet("admin_id").(uuid.UUID)

	settings, err := h.settings.Update(c.Request.Context(), adminID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save settings", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, settings)
}
