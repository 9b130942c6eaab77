package store

import (
	"net/http"

	"github.com/gin-gonic/gin"

	storeModels "github.com/hanootc/yasir-platform-sub002/internal/models/store"
	storeServices "github.com/hanootc/yasir-platform-sub002/internal/services/store"
)

type PixelHandler struct {
	pixels *storeServices.PixelService
}

func NewPixelHandler(pixels *storeServices.PixelService) *PixelHandler {
	return &PixelHandler{pixels: pixels}
}

// Track handles POST /api/pixel/events
func (h *PixelHandler) Track(c *gin.Context) {
	platform := platformFromContext(c)

	var req storeModels.TrackEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	event, emitted, err := h.pixels.Track(c.Request.Context(), platform, &req)
	if err != nil {
		fail(c, err)
		return
	}
	if !emitted {
		c.JSON(http.StatusOK, gin.H{"deduplicated": true})
		return
	}

	c.JSON(http.StatusCreated, event)
}
