package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/hanootc/yasir-platform-sub002/internal/models/shared"
)

// PriceOffer is a stored quantity tier on a product ("قطعتان بـ 15000").
// Quantity is the authoritative field; legacy rows may carry zero, in which
// case normalization falls back to the label text.
type PriceOffer struct {
	ID        string  `json:"id"`
	Label     string  `json:"label"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	IsDefault bool    `json:"is_default"`
}

// Product lives in the store DB. PlatformID nil means a global (marketplace)
// product. The legacy tier columns predate the price_offers array and are
// kept for rows that were never migrated.
type Product struct {
	ID               uuid.UUID    `json:"id"`
	PlatformID       *uuid.UUID   `json:"platform_id,omitempty"`
	CategoryID       *uuid.UUID   `json:"category_id,omitempty"`
	Name             string       `json:"name"`
	Slug             string       `json:"slug"`
	Description      *string      `json:"description,omitempty"`
	Price            float64      `json:"price"`
	Cost             *float64     `json:"cost,omitempty"`
	Stock            *int         `json:"stock,omitempty"`
	SKU              *string      `json:"sku,omitempty"`
	ImageURLs        []string     `json:"image_urls"`
	AdditionalImages []string     `json:"additional_images"`
	PriceOffers      []PriceOffer `json:"price_offers"`
	TwoPiecePrice    *float64     `json:"two_piece_price,omitempty"`
	ThreePiecePrice  *float64     `json:"three_piece_price,omitempty"`
	BulkPrice        *float64     `json:"bulk_price,omitempty"`
	BulkMinQuantity  *int         `json:"bulk_min_quantity,omitempty"`
	IsActive         bool         `json:"is_active"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`
}

// Offer is the normalized view served to landing pages, unified across
// price_offers rows and legacy tier columns.
type Offer struct {
	ID        string  `json:"id"`
	Label     string  `json:"label"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Savings   float64 `json:"savings"`
	IsDefault bool    `json:"is_default"`
}

// ProductVariant is a selectable color/shape/size option.
type ProductVariant struct {
	ID        uuid.UUID          `json:"id"`
	ProductID uuid.UUID          `json:"product_id"`
	Kind      shared.VariantKind `json:"kind"`
	Name      string             `json:"name"`
	Value     *string            `json:"value,omitempty"`
	ImageURL  *string            `json:"image_url,omitempty"`
	SortOrder int                `json:"sort_order"`
}

// Category groups products; PlatformID nil means a global category.
type Category struct {
	ID          uuid.UUID  `json:"id"`
	PlatformID  *uuid.UUID `json:"platform_id,omitempty"`
	Name        string     `json:"name"`
	Description *string    `json:"description,omitempty"`
	ImageURL    *string    `json:"image_url,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}
