package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/hanootc/yasir-platform-sub002/internal/models/shared"
)

// LandingOrder is one order placed through a landing page. Totals are
// computed server-side from the stored offer, never trusted from the client.
type LandingOrder struct {
	ID            uuid.UUID          `json:"id"`
	LandingPageID *uuid.UUID         `json:"landing_page_id,omitempty"`
	ProductID     uuid.UUID          `json:"product_id"`
	PlatformID    uuid.UUID          `json:"platform_id"`
	CustomerName  string             `json:"customer_name"`
	CustomerPhone string             `json:"customer_phone"`
	Governorate   string             `json:"governorate"`
	Address       string             `json:"address"`
	Notes         *string            `json:"notes,omitempty"`
	OfferID       string             `json:"offer_id"`
	OfferLabel    string             `json:"offer_label"`
	Quantity      int                `json:"quantity"`
	Total         float64            `json:"total"`
	ColorIDs      []uuid.UUID        `json:"color_ids"`
	ShapeIDs      []uuid.UUID        `json:"shape_ids"`
	SizeIDs       []uuid.UUID        `json:"size_ids"`
	ExternalID    string             `json:"external_id"`
	Status        shared.OrderStatus `json:"status"`
	CreatedAt     time.Time          `json:"created_at"`
}

// PixelEvent is one ad-platform conversion signal.
type PixelEvent struct {
	ID            uuid.UUID             `json:"id"`
	EventType     shared.PixelEventType `json:"event_type"`
	LandingPageID *uuid.UUID            `json:"landing_page_id,omitempty"`
	ProductID     uuid.UUID             `json:"product_id"`
	PlatformID    uuid.UUID             `json:"platform_id"`
	VisitorID     string                `json:"visitor_id"`
	ExternalID    string                `json:"external_id"`
	SourceURL     *string               `json:"source_url,omitempty"`
	CreatedAt     time.Time             `json:"created_at"`
}
