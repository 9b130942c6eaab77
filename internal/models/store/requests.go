package store

import (
	"github.com/google/uuid"

	"github.com/hanootc/yasir-platform-sub002/internal/models/shared"
)

// PriceOfferInput is one row of the flexible offers list on the product
// form. Price accepts localized strings ("12,500"); Quantity is required.
type PriceOfferInput struct {
	Label     string `json:"label" binding:"required,max=255"`
	Price     string `json:"price" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
	IsDefault bool   `json:"is_default"`
}

// CreateProductRequest mirrors the product creation form. Numeric fields
// arrive as strings so thousands separators and Arabic-Indic digits survive
// the wire; the service parses them.
type CreateProductRequest struct {
	Name             string            `json:"name" binding:"required,min=2,max=255"`
	Description      *string           `json:"description,omitempty"`
	Price            string            `json:"price" binding:"required"`
	Cost             *string           `json:"cost,omitempty"`
	Stock            *string           `json:"stock,omitempty"`
	SKU              *string           `json:"sku,omitempty" binding:"omitempty,max=100"`
	CategoryID       *uuid.UUID        `json:"category_id,omitempty"`
	ImageURLs        []string          `json:"image_urls,omitempty"`
	AdditionalImages []string          `json:"additional_images,omitempty"`
	PriceOffers      []PriceOfferInput `json:"price_offers,omitempty"`
}

// GenerateDescriptionRequest asks for a proposed product description.
// Nothing is persisted; the client commits by sending the text back on
// product creation.
type GenerateDescriptionRequest struct {
	Name string `json:"name" binding:"required,min=2,max=255"`
}

// CreateOrderRequest is the landing-page order form payload.
type CreateOrderRequest struct {
	LandingPageID *uuid.UUID  `json:"landing_page_id,omitempty"`
	ProductID     uuid.UUID   `json:"product_id" binding:"required"`
	OfferID       string      `json:"offer_id" binding:"required"`
	CustomerName  string      `json:"customer_name" binding:"required,min=2,max=120"`
	CustomerPhone string      `json:"customer_phone" binding:"required,min=7,max=20"`
	Governorate   string      `json:"governorate" binding:"required"`
	Address       string      `json:"address" binding:"required"`
	Notes         *string     `json:"notes,omitempty"`
	ColorIDs      []uuid.UUID `json:"color_ids,omitempty"`
	ShapeIDs      []uuid.UUID `json:"shape_ids,omitempty"`
	SizeIDs       []uuid.UUID `json:"size_ids,omitempty"`
	VisitorID     string      `json:"visitor_id,omitempty"`
	ExternalID    string      `json:"external_id,omitempty"`
}

// TrackEventRequest reports a pixel milestone from the landing page.
type TrackEventRequest struct {
	EventType     shared.PixelEventType `json:"event_type" binding:"required"`
	LandingPageID *uuid.UUID            `json:"landing_page_id,omitempty"`
	ProductID     uuid.UUID             `json:"product_id" binding:"required"`
	VisitorID     string                `json:"visitor_id" binding:"required"`
	ExternalID    string                `json:"external_id,omitempty"`
	SourceURL     *string               `json:"source_url,omitempty"`
}
