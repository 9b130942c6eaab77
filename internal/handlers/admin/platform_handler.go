package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	adminModels "github.com/hanootc/yasir-platform-sub002/internal/models/admin"
	adminServices "github.com/hanootc/yasir-platform-sub002/internal/services/admin"
)

// PlatformHandler exposes the platform lifecycle mutations.
type PlatformHandler struct {
	subscriptions *adminServices.SubscriptionService
}

func NewPlatformHandler(subscriptions *adminServices.SubscriptionService) *PlatformHandler {
	return &PlatformHandler{subscriptions: subscriptions}
}

// ExtendSubscription handles POST /api/admin/extend-subscription
func (h *PlatformHandler) ExtendSubscription(c *gin.Context) {
	adminID := c.MustGet("admin_id").(uuid.UUID)

	var req adminModels.ExtendSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	platform, err := h.subscriptions.Extend(c.Request.Context(), adminID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to extend subscription", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, platform)
}

// SuspendPlatform handles POST /api/admin/suspend-platform
func (h *PlatformHandler) SuspendPlatform(c *gin.Context) {
	adminID := c.MustGet("admin_id").(uuid.UUID)

	var req adminModels.SuspendPlatformRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	platform, err := h.subscriptions.Suspend(c.Request.Context(), adminID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to suspend platform", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, platform)
}

// ActivatePlatform handles POST /api/admin/activate-platform
func (h *PlatformHandler) ActivatePlatform(c *gin.Context) {
	adminID := c.MustGet("admin_id").(uuid.UUID)

	var req adminModels.ActivatePlatformRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	platform, err := h.subscriptions.Activate(c.Request.Context(), adminID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to activate platform", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, platform)
}
