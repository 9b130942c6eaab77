package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	storeModels "github.com/hanootc/yasir-platform-sub002/internal/models/store"
)

type CategoryRepository struct {
	pool *pgxpool.Pool
}

func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{pool: pool}
}

const categoryColumns = `id, platform_id, name, description, image_url, created_at`

// ListGlobal returns the marketplace-wide categories.
func (r *CategoryRepository) ListGlobal(ctx context.Context) ([]storeModels.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE platform_id IS NULL ORDER BY name`
	return r.list(ctx, query)
}

// ListByPlatform returns a platform's own categories.
func (r *CategoryRepository) ListByPlatform(ctx context.Context, platformID uuid.UUID) ([]storeModels.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE platform_id = $1 ORDER BY name`
	return r.list(ctx, query, platformID)
}

// GetByID retrieves one category.
func (r *CategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*storeModels.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE id = $1`

	c := &storeModels.Category{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.PlatformID, &c.Name, &c.Description, &c.ImageURL, &c.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return c, nil
}

func (r *CategoryRepository) list(ctx context.Context, query string, args ...interface{}) ([]storeModels.Category, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var categories []storeModels.Category
	for rows.Next() {
		var c storeModels.Category
		if err := rows.Scan(&c.ID, &c.PlatformID, &c.Name, &c.Description, &c.ImageURL, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	if categories == nil {
		categories = []storeModels.Category{}
	}
	return categories, nil
}
