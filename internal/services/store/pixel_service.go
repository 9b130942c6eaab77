package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hanootc/yasir-platform-sub002/internal/models/shared"
	storeModels "github.com/hanootc/yasir-platform-sub002/internal/models/store"
	"github.com/hanootc/yasir-platform-sub002/internal/utils"
)

const viewDedupeTTL = 24 * time.Hour

type pixelSink interface {
	Insert(ctx context.Context, e *storeModels.PixelEvent) (*storeModels.PixelEvent, error)
}

type pixelBus interface {
	MarkViewContent(ctx context.Context, visitorID, landingKey string, ttl time.Duration) (bool, error)
	Publish(ctx context.Context, channel string, message interface{}) error
}

// PixelService records ad-platform conversion events and hands them to the
// forwarding worker over Redis. The funnel order is view_content,
// add_to_cart, initiate_checkout from the page, then lead when the order is
// actually stored; lead is server-emitted only, a client reporting it is
// rejected.
type PixelService struct {
	events  pixelSink
	bus     pixelBus
	channel string
	logger  *zap.Logger
}

func NewPixelService(events pixelSink, bus pixelBus, channel string, logger *zap.Logger) *PixelService {
	return &PixelService{events: events, bus: bus, channel: channel, logger: logger}
}

// Track records a client-reported milestone. view_content is deduplicated
// per visitor and page; a repeat returns emitted=false with no event.
func (s *PixelService) Track(ctx context.Context, platform *storeModels.PlatformSummary, req *storeModels.TrackEventRequest) (*storeModels.PixelEvent, bool, error) {
	switch req.EventType {
	case shared.PixelViewContent, shared.PixelAddToCart, shared.PixelInitiateCheckout:
	case shared.PixelLead:
		return nil, false, invalid("هذا الحدث يُسجل من الخادم فقط")
	default:
		return nil, false, invalid("نوع الحدث غير معروف")
	}

	if req.EventType == shared.PixelViewContent {
		fresh, err := s.bus.MarkViewContent(ctx, req.VisitorID, dedupeKey(req), viewDedupeTTL)
		if err != nil {
			// Dedupe is best-effort; a Redis hiccup must not drop the event.
			s.logger.Warn("view_content dedupe check failed", zap.Error(err))
		} else if !fresh {
			return nil, false, nil
		}
	}

	externalID := req.ExternalID
	if externalID == "" {
		externalID = utils.PixelExternalID(req.ProductID, time.Now())
	}

	event := &storeModels.PixelEvent{
		EventType:     req.EventType,
		LandingPageID: req.LandingPageID,
		ProductID:     req.ProductID,
		PlatformID:    platform.ID,
		VisitorID:     req.VisitorID,
		ExternalID:    externalID,
		SourceURL:     req.SourceURL,
	}

	stored, err := s.record(ctx, event)
	if err != nil {
		return nil, false, err
	}
	return stored, true, nil
}

// EmitLead records the lead conversion for a stored order, reusing the
// order's external id so the ad platform can join the funnel.
func (s *PixelService) EmitLead(ctx context.Context, platform *storeModels.PlatformSummary, order *storeModels.LandingOrder, visitorID string) error {
	event := &storeModels.PixelEvent{
		EventType:     shared.PixelLead,
		LandingPageID: order.LandingPageID,
		ProductID:     order.ProductID,
		PlatformID:    platform.ID,
		VisitorID:     visitorID,
		ExternalID:    order.ExternalID,
	}

	_, err := s.record(ctx, event)
	return err
}

func (s *PixelService) record(ctx context.Context, event *storeModels.PixelEvent) (*storeModels.PixelEvent, error) {
	stored, err := s.events.Insert(ctx, event)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(stored)
	if err == nil {
		err = s.bus.Publish(ctx, s.channel, payload)
	}
	if err != nil {
		// The event row is already durable; forwarding can lag behind.
		s.logger.Warn("failed to publish pixel event",
			zap.String("event_id", stored.ID.String()), zap.Error(err))
	}

	return stored, nil
}

func dedupeKey(req *storeModels.TrackEventRequest) string {
	if req.LandingPageID != nil && *req.LandingPageID != uuid.Nil {
		return req.LandingPageID.String()
	}
	return req.ProductID.String()
}
