package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	storeModels "github.com/hanootc/yasir-platform-sub002/internal/models/store"
)

type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

// Create inserts a landing-page order.
func (r *OrderRepository) Create(ctx context.Context, o *storeModels.LandingOrder) (*storeModels.LandingOrder, error) {
	query := `
		INSERT INTO landing_orders (landing_page_id, product_id, platform_id,
		                            customer_name, customer_phone, governorate, address, notes,
		                            offer_id, offer_label, quantity, total,
		                            color_ids, shape_ids, size_ids, external_id, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING id, created_at`

	err := r.pool.QueryRow(ctx, query,
		o.LandingPageID, o.ProductID, o.PlatformID,
		o.CustomerName, o.CustomerPhone, o.Governorate, o.Address, o.Notes,
		o.OfferID, o.OfferLabel, o.Quantity, o.Total,
		o.ColorIDs, o.ShapeIDs, o.SizeIDs, o.ExternalID, o.Status,
	).Scan(&o.ID, &o.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	return o, nil
}

// GetByID retrieves an order (thank-you page lookup).
func (r *OrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*storeModels.LandingOrder, error) {
	query := `
		SELECT id, landing_page_id, product_id, platform_id,
		       customer_name, customer_phone, governorate, address, notes,
		       offer_id, offer_label, quantity, total,
		       color_ids, shape_ids, size_ids, external_id, status, created_at
		FROM landing_orders
		WHERE id = $1`

	o := &storeModels.LandingOrder{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.LandingPageID, &o.ProductID, &o.PlatformID,
		&o.CustomerName, &o.CustomerPhone, &o.Governorate, &o.Address, &o.Notes,
		&o.OfferID, &o.OfferLabel, &o.Quantity, &o.Total,
		&o.ColorIDs, &o.ShapeIDs, &o.SizeIDs, &o.ExternalID, &o.Status, &o.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return o, nil
}
