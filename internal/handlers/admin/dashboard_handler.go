package admin

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	adminRepo "github.com/hanootc/yasir-platform-sub002/internal/repository/admin"
)

// DashboardHandler serves the dashboard's read collections. Each tab fetches
// its own collection independently; there is no combined endpoint.
type DashboardHandler struct {
	platforms *adminRepo.PlatformRepository
	actions   *adminRepo.ActionRepository
	payments  *adminRepo.PaymentRepository
	settings  *adminRepo.SettingsRepository
}

func NewDashboardHandler(
	platforms *adminRepo.PlatformRepository,
	actions *adminRepo.ActionRepository,
	payments *adminRepo.PaymentRepository,
	settings *adminRepo.SettingsRepository,
) *DashboardHandler {
	return &DashboardHandler{
		platforms: platforms,
		actions:   actions,
		payments:  payments,
		settings:  settings,
	}
}

// Stats handles GET /api/admin/stats
func (h *DashboardHandler) Stats(c *gin.Context) {
	settings, err := h.settings.Get(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load settings", "details": err.Error()})
		return
	}

	stats, err := h.platforms.GetStats(c.Request.Context(), settings.ExpiryWarningDays)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load stats", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// Platforms handles GET /api/admin/platforms
func (h *DashboardHandler) Platforms(c *gin.Context) {
	platforms, err := h.platforms.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load platforms", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, platforms)
}

// Subscriptions handles GET /api/admin/subscriptions
func (h *DashboardHandler) Subscriptions(c *gin.Context) {
	subs, err := h.platforms.ListSubscriptions(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load subscriptions", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, subs)
}

// Actions handles GET /api/admin/actions
func (h *DashboardHandler) Actions(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	actions, err := h.actions.List(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load actions", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, actions)
}

// Payments handles GET /api/admin/payments
func (h *DashboardHandler) Payments(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	payments, err := h.payments.List(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load payments", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, payments)
}
