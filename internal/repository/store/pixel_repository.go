package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	storeModels "github.com/hanootc/yasir-platform-sub002/internal/models/store"
)

type PixelRepository struct {
	pool *pgxpool.Pool
}

func NewPixelRepository(pool *pgxpool.Pool) *PixelRepository {
	return &PixelRepository{pool: pool}
}

// Insert persists one conversion event.
func (r *PixelRepository) Insert(ctx context.Context, e *storeModels.PixelEvent) (*storeModels.PixelEvent, error) {
	query := `
		INSERT INTO pixel_events (event_type, landing_page_id, product_id, platform_id,
		                          visitor_id, external_id, source_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`

	err := r.pool.QueryRow(ctx, query,
		e.EventType, e.LandingPageID, e.ProductID, e.PlatformID,
		e.VisitorID, e.ExternalID, e.SourceURL,
	).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert pixel event: %w", err)
	}

	return e, nil
}
