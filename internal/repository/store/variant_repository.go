package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hanootc/yasir-platform-sub002/internal/models/shared"
	storeModels "github.com/hanootc/yasir-platform-sub002/internal/models/store"
)

type VariantRepository struct {
	pool *pgxpool.Pool
}

func NewVariantRepository(pool *pgxpool.Pool) *VariantRepository {
	return &VariantRepository{pool: pool}
}

// ListByKind returns a product's variants of one kind, in display order.
func (r *VariantRepository) ListByKind(ctx context.Context, productID uuid.UUID, kind shared.VariantKind) ([]storeModels.ProductVariant, error) {
	query := `
		SELECT id, product_id, kind, name, value, image_url, sort_order
		FROM product_variants
		WHERE product_id = $1 AND kind = $2
		ORDER BY sort_order, name`

	rows, err := r.pool.Query(ctx, query, productID, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to list variants: %w", err)
	}
	defer rows.Close()

	var variants []storeModels.ProductVariant
	for rows.Next() {
		var v storeModels.ProductVariant
		if err := rows.Scan(&v.ID, &v.ProductID, &v.Kind, &v.Name, &v.Value, &v.ImageURL, &v.SortOrder); err != nil {
			return nil, fmt.Errorf("failed to scan variant: %w", err)
		}
		variants = append(variants, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating variants: %w", err)
	}

	if variants == nil {
		variants = []storeModels.ProductVariant{}
	}
	return variants, nil
}

// ListGroups loads all three variant kinds for a product.
func (r *VariantRepository) ListGroups(ctx context.Context, productID uuid.UUID) (*storeModels.VariantGroups, error) {
	colors, err := r.ListByKind(ctx, productID, shared.VariantColor)
	if err != nil {
		return nil, err
	}
	shapes, err := r.ListByKind(ctx, productID, shared.VariantShape)
	if err != nil {
		return nil, err
	}
	sizes, err := r.ListByKind(ctx, productID, shared.VariantSize)
	if err != nil {
		return nil, err
	}

	return &storeModels.VariantGroups{Colors: colors, Shapes: shapes, Sizes: sizes}, nil
}

// CountExisting reports how many of the given variant ids exist for the
// product and kind. Order validation uses it to reject stale ids.
func (r *VariantRepository) CountExisting(ctx context.Context, productID uuid.UUID, kind shared.VariantKind, ids []uuid.UUID) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	var count int
	query := `
		SELECT COUNT(*) FROM product_variants
		WHERE product_id = $1 AND kind = $2 AND id = ANY($3)`

	if err := r.pool.QueryRow(ctx, query, productID, kind, ids).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count variants: %w", err)
	}
	return count, nil
}
