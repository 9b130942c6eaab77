package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	storeModels "github.com/hanootc/yasir-platform-sub002/internal/models/store"
)

type LandingRepository struct {
	pool *pgxpool.Pool
}

func NewLandingRepository(pool *pgxpool.Pool) *LandingRepository {
	return &LandingRepository{pool: pool}
}

const landingColumns = `
	id, platform_id, product_id, template, theme, custom_url, title,
	is_active, created_at, updated_at`

// GetBySlug retrieves an active landing page by its custom URL within a
// platform.
func (r *LandingRepository) GetBySlug(ctx context.Context, platformID uuid.UUID, slug string) (*storeModels.LandingPage, error) {
	query := `SELECT ` + landingColumns + `
		FROM landing_pages
		WHERE platform_id = $1 AND custom_url = $2 AND is_active = TRUE AND deleted_at IS NULL`

	return r.scanOne(ctx, query, platformID, slug)
}

// GetByID retrieves an active landing page by id.
func (r *LandingRepository) GetByID(ctx context.Context, id uuid.UUID) (*storeModels.LandingPage, error) {
	query := `SELECT ` + landingColumns + `
		FROM landing_pages
		WHERE id = $1 AND deleted_at IS NULL`

	return r.scanOne(ctx, query, id)
}

func (r *LandingRepository) scanOne(ctx context.Context, query string, args ...interface{}) (*storeModels.LandingPage, error) {
	lp := &storeModels.LandingPage{}
	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&lp.ID,
		&lp.PlatformID,
		&lp.ProductID,
		&lp.Template,
		&lp.Theme,
		&lp.CustomURL,
		&lp.Title,
		&lp.IsActive,
		&lp.CreatedAt,
		&lp.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get landing page: %w", err)
	}
	return lp, nil
}
