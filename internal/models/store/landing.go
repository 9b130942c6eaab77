package store

import (
	"time"

	"github.com/google/uuid"
)

// LandingPage links a product to a named template under a custom URL slug.
type LandingPage struct {
	ID              uuid.UUID  `json:"id"`
	PlatformID      uuid.UUID  `json:"platform_id"`
	ProductID       uuid.UUID  `json:"product_id"`
	Template        string     `json:"template"`
	Theme           string     `json:"theme"`
	CustomURL       string     `json:"custom_url"`
	Title           *string    `json:"title,omitempty"`
	IsActive        bool       `json:"is_active"`
	IsProductDirect bool       `json:"is_product_direct"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
	DeletedAt       *time.Time `json:"-"`
}

// PlatformSummary is the slice of platform data a public landing page needs.
type PlatformSummary struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Subdomain string    `json:"subdomain"`
	LogoURL   *string   `json:"logo_url,omitempty"`
	Status    string    `json:"status"`
}

// SEOMeta is the resolved head content for a landing page: title, Open Graph
// tags, favicon and the product schema JSON-LD blob.
type SEOMeta struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	OGTitle       string `json:"og_title"`
	OGDescription string `json:"og_description"`
	OGImage       string `json:"og_image,omitempty"`
	OGURL         string `json:"og_url"`
	FaviconURL    string `json:"favicon_url,omitempty"`
	SchemaJSON    string `json:"schema_json"`
}

// VariantGroups carries the selectable options, split by kind.
type VariantGroups struct {
	Colors []ProductVariant `json:"colors"`
	Shapes []ProductVariant `json:"shapes"`
	Sizes  []ProductVariant `json:"sizes"`
}
