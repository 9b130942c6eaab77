package store

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"

	storeModels "github.com/hanootc/yasir-platform-sub002/internal/models/store"
	storeServices "github.com/hanootc/yasir-platform-sub002/internal/services/store"
)

// fail maps service errors onto HTTP statuses: validation rejections are
// 400 with the user-facing message, missing rows are 404, the rest 500.
func fail(c *gin.Context, err error) {
	var ve *storeServices.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Message})
	case errors.Is(err, pgx.ErrNoRows), errors.Is(err, storeServices.ErrLandingNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error", "details": err.Error()})
	}
}

func platformFromContext(c *gin.Context) *storeModels.PlatformSummary {
	return c.MustGet("platform").(*storeModels.PlatformSummary)
}
