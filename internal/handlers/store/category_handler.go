package store

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	storeRepo "github.com/hanootc/yasir-platform-sub002/internal/repository/store"
)

type CategoryHandler struct {
	categories *storeRepo.CategoryRepository
}

func NewCategoryHandler(categories *storeRepo.CategoryRepository) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

// ListGlobal handles GET /api/categories
func (h *CategoryHandler) ListGlobal(c *gin.Context) {
	categories, err := h.categories.ListGlobal(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, categories)
}

// ListByPlatform handles GET /api/platforms/:id/categories
func (h *CategoryHandler) ListByPlatform(c *gin.Context) {
	platformID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid platform id"})
		return
	}

	categories, err := h.categories.ListByPlatform(c.Request.Context(), platformID)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, categories)
}

// GetPublic handles GET /api/public/categories/:id
func (h *CategoryHandler) GetPublic(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category id"})
		return
	}

	category, err := h.categories.GetByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, category)
}
