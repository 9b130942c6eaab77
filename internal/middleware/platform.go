package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"

	"github.com/hanootc/yasir-platform-sub002/internal/cache"
	adminRepo "github.com/hanootc/yasir-platform-sub002/internal/repository/admin"

	"github.com/hanootc/yasir-platform-sub002/internal/models/shared"
	storeModels "github.com/hanootc/yasir-platform-sub002/internal/models/store"
	"github.com/hanootc/yasir-platform-sub002/internal/utils"
)

const platformCacheTTL = 10 * time.Minute

// PlatformResolver maps the request to a tenant platform. The subdomain comes
// from the :subdomain route param, the X-Platform-Subdomain header, or the
// first label of the Host, in that order. Resolution is cached in Redis;
// admin mutations invalidate the key, so a suspension takes effect on the
// next request.
func PlatformResolver(redisClient *cache.Client, platforms *adminRepo.PlatformRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		subdomain := extractSubdomain(c)
		if subdomain == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Platform subdomain required"})
			c.Abort()
			return
		}

		summary, err := resolvePlatform(c, redisClient, platforms, subdomain)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Platform not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve platform"})
			}
			c.Abort()
			return
		}

		if summary.Status != string(shared.PlatformActive) {
			c.JSON(http.StatusForbidden, gin.H{"error": "هذه المنصة غير متاحة حالياً"})
			c.Abort()
			return
		}

		c.Set("platform", summary)
		c.Set("platform_id", summary.ID)
		c.Next()
	}
}

func resolvePlatform(c *gin.Context, redisClient *cache.Client, platforms *adminRepo.PlatformRepository, subdomain string) (*storeModels.PlatformSummary, error) {
	ctx := c.Request.Context()

	if raw, err := redisClient.GetPlatform(ctx, subdomain); err == nil {
		var summary storeModels.PlatformSummary
		if err := json.Unmarshal([]byte(raw), &summary); err == nil {
			return &summary, nil
		}
	}

	p, err := platforms.GetBySubdomain(ctx, subdomain)
	if err != nil {
		return nil, err
	}

	summary := &storeModels.PlatformSummary{
		ID:        p.ID,
		Name:      p.Name,
		Subdomain: p.Subdomain,
		LogoURL:   p.LogoURL,
		Status:    string(p.Status),
	}

	if blob, err := json.Marshal(summary); err == nil {
		_ = redisClient.SetPlatform(ctx, subdomain, blob, platformCacheTTL)
	}

	return summary, nil
}

func extractSubdomain(c *gin.Context) string {
	if s := c.Param("subdomain"); s != "" {
		return utils.NormalizeSubdomain(s)
	}
	if s := c.GetHeader("X-Platform-Subdomain"); s != "" {
		return utils.NormalizeSubdomain(s)
	}

	host := c.Request.Host
	if i := strings.Index(host, ":"); i >= 0 {
		host = host[:i]
	}
	parts := strings.Split(host, ".")
	if len(parts) >= 3 {
		return utils.NormalizeSubdomain(parts[0])
	}
	return ""
}
