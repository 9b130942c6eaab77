package store

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hanootc/yasir-platform-sub002/internal/cache"
	"github.com/hanootc/yasir-platform-sub002/internal/render"
	storeServices "github.com/hanootc/yasir-platform-sub002/internal/services/store"
)

const landingCacheTTL = 5 * time.Minute

// LandingHandler serves the resolved landing document, as JSON for the
// storefront app and as server-rendered HTML for direct hits and crawlers.
// Documents are cached per platform+slug; admin mutations and product
// creation invalidate them.
type LandingHandler struct {
	landings *storeServices.LandingService
	redis    *cache.Client
}

func NewLandingHandler(landings *storeServices.LandingService, redisClient *cache.Client) *LandingHandler {
	return &LandingHandler{landings: landings, redis: redisClient}
}

// GetDocument handles GET /api/landing/:slug
func (h *LandingHandler) GetDocument(c *gin.Context) {
	platform := platformFromContext(c)
	slug := c.Param("slug")

	if raw, err := h.redis.GetLandingDoc(c.Request.Context(), platform.ID.String(), slug); err == nil {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(raw))
		return
	}

	doc, err := h.landings.Resolve(c.Request.Context(), platform, slug)
	if err != nil {
		fail(c, err)
		return
	}

	if blob, err := json.Marshal(doc); err == nil {
		_ = h.redis.SetLandingDoc(c.Request.Context(), platform.ID.String(), slug, blob, landingCacheTTL)
	}

	c.JSON(http.StatusOK, doc)
}

// RenderPage handles GET /:subdomain/:slug
func (h *LandingHandler) RenderPage(c *gin.Context) {
	platform := platformFromContext(c)
	slug := c.Param("slug")

	doc, err := h.landings.Resolve(c.Request.Context(), platform, slug)
	if err != nil {
		fail(c, err)
		return
	}

	c.Status(http.StatusOK)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := render.WriteHTML(c.Writer, doc); err != nil {
		// Headers are already out; nothing useful left to send.
		_ = c.Error(err)
	}
}

// GetPublicPlatform handles GET /api/public/platform/:subdomain
func (h *LandingHandler) GetPublicPlatform(c *gin.Context) {
	c.JSON(http.StatusOK, platformFromContext(c))
}

// GetProductBySlug handles GET /api/public/platform/:subdomain/products/by-slug/:slug
func (h *LandingHandler) GetProductBySlug(c *gin.Context) {
	platform := platformFromContext(c)
	slug := c.Param("slug")

	doc, err := h.landings.Resolve(c.Request.Context(), platform, slug)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"product": doc.Product,
		"offers":  doc.Offers,
		"landing_page": doc.Landing,
	})
}
