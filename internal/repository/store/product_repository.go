package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	storeModels "github.com/hanootc/yasir-platform-sub002/internal/models/store"
)

type ProductRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

const productColumns = `
	id, platform_id, category_id, name, slug, description, price, cost, stock,
	sku, image_urls, additional_images, price_offers, two_piece_price,
	three_piece_price, bulk_price, bulk_min_quantity, is_active, created_at,
	updated_at`

// NewProduct is the parsed, validated input Create persists.
type NewProduct struct {
	PlatformID       *uuid.UUID
	CategoryID       *uuid.UUID
	Name             string
	Slug             string
	Description      *string
	Price            float64
	Cost             *float64
	Stock            *int
	SKU              *string
	ImageURLs        []string
	AdditionalImages []string
	PriceOffers      []storeModels.PriceOffer
}

// Create inserts a product.
func (r *ProductRepository) Create(ctx context.Context, p *NewProduct) (*storeModels.Product, error) {
	offersJSON, err := json.Marshal(p.PriceOffers)
	if err != nil {
		return nil, fmt.Errorf("failed to encode price offers: %w", err)
	}

	query := `
		INSERT INTO products (platform_id, category_id, name, slug, description,
		                      price, cost, stock, sku, image_urls, additional_images,
		                      price_offers, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, TRUE)
		RETURNING ` + productColumns

	row := r.pool.QueryRow(ctx, query,
		p.PlatformID, p.CategoryID, p.Name, p.Slug, p.Description,
		p.Price, p.Cost, p.Stock, p.SKU, p.ImageURLs, p.AdditionalImages,
		offersJSON,
	)

	product, err := scanProduct(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return product, nil
}

// GetByID retrieves a product.
func (r *ProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*storeModels.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 AND is_active = TRUE`
	return scanProduct(r.pool.QueryRow(ctx, query, id))
}

// GetBySlug retrieves a platform's product by slug.
func (r *ProductRepository) GetBySlug(ctx context.Context, platformID uuid.UUID, slug string) (*storeModels.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE platform_id = $1 AND slug = $2 AND is_active = TRUE`
	return scanProduct(r.pool.QueryRow(ctx, query, platformID, slug))
}

// SlugExists reports whether a slug is taken within a platform scope.
func (r *ProductRepository) SlugExists(ctx context.Context, platformID *uuid.UUID, slug string) (bool, error) {
	var exists bool
	query := `
		SELECT EXISTS(
			SELECT 1 FROM products
			WHERE slug = $2 AND (platform_id = $1 OR ($1 IS NULL AND platform_id IS NULL))
		)`
	if err := r.pool.QueryRow(ctx, query, platformID, slug).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check slug: %w", err)
	}
	return exists, nil
}

type row interface {
	Scan(dest ...interface{}) error
}

func scanProduct(row row) (*storeModels.Product, error) {
	p := &storeModels.Product{}
	var offersJSON []byte

	err := row.Scan(
		&p.ID,
		&p.PlatformID,
		&p.CategoryID,
		&p.Name,
		&p.Slug,
		&p.Description,
		&p.Price,
		&p.Cost,
		&p.Stock,
		&p.SKU,
		&p.ImageURLs,
		&p.AdditionalImages,
		&offersJSON,
		&p.TwoPiecePrice,
		&p.ThreePiecePrice,
		&p.BulkPrice,
		&p.BulkMinQuantity,
		&p.IsActive,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan product: %w", err)
	}

	if len(offersJSON) > 0 {
		if err := json.Unmarshal(offersJSON, &p.PriceOffers); err != nil {
			return nil, fmt.Errorf("failed to decode price offers: %w", err)
		}
	}
	if p.ImageURLs == nil {
		p.ImageURLs = []string{}
	}
	if p.AdditionalImages == nil {
		p.AdditionalImages = []string{}
	}

	return p, nil
}
