package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	adminModels "github.com/hanootc/yasir-platform-sub002/internal/models/admin"
	adminServices "github.com/hanootc/yasir-platform-sub002/internal/services/admin"
)

// FeatureHandler manages the per-plan feature flags.
type FeatureHandler struct {
	features *adminServices.FeatureService
}

func NewFeatureHandler(features *adminServices.FeatureService) *FeatureHandler {
	return &FeatureHandler{features: features}
}

// List handles GET /api/admin/features
func (h *FeatureHandler) List(c *gin.Context) {
	features, err := h.features.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load features", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, features)
}

// Create handles POST /api/admin/features
func (h *FeatureHandler) Create(c *gin.Context) {
	var req adminModels.CreateFeatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	adminID := c.MustGet("admin_id").(uuid.UUID)

	feature, err := h.features.Create(c.Request.Context(), adminID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create feature", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, feature)
}

// Update handles PUT /api/admin/features/:id
func (h *FeatureHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid feature id"})
		return
	}

	var req adminModels.UpdateFeatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	adminID := c.MustGet("admin_id").(uuid.UUID)

	feature, err := h.features.Update(c.Request.Context(), adminID, id, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update feature", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, feature)
}

// Delete handles DELETE /api/admin/features/:id
func (h *FeatureHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid feature id"})
		return
	}

	adminID := c.MustGet("admin_id").(uuid.UUID)

	if err := h.features.Delete(c.Request.Context(), adminID, id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete feature", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Feature deleted"})
}
