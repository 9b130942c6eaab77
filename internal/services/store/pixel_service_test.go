package store

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hanootc/yasir-platform-sub002/internal/models/shared"
	storeModels "github.com/hanootc/yasir-platform-sub002/internal/models/store"
)

type fakePixelSink struct {
	events []*storeModels.PixelEvent
}

func (f *fakePixelSink) Insert(ctx context.Context, e *storeModels.PixelEvent) (*storeModels.PixelEvent, error) {
	e.ID = uuid.New()
	e.CreatedAt = time.Now()
	f.events = append(f.events, e)
	return e, nil
}

type fakePixelBus struct {
	seen      map[string]bool
	published []string
}

func (f *fakePixelBus) MarkViewContent(ctx context.Context, visitorID, landingKey string, ttl time.Duration) (bool, error) {
	key := visitorID + ":" + landingKey
	if f.seen[key] {
		return false, nil
	}
	f.seen[key] = true
	return true, nil
}

func (f *fakePixelBus) Publish(ctx context.Context, channel string, message interface{}) error {
	f.published = append(f.published, channel)
	return nil
}

func testPixelFixture() (*PixelService, *fakePixelSink, *fakePixelBus, *storeModels.PlatformSummary) {
	sink := &fakePixelSink{}
	bus := &fakePixelBus{seen: map[string]bool{}}
	svc := NewPixelService(sink, bus, "pixel:events", zap.NewNop())
	platform := &storeModels.PlatformSummary{ID: uuid.New(), Subdomain: "shop"}
	return svc, sink, bus, platform
}

func TestTrackViewContentDeduplicates(t *testing.T) {
	svc, sink, bus, platform := testPixelFixture()

	req := &storeModels.TrackEventRequest{
		EventType: shared.PixelViewContent,
		ProductID: uuid.New(),
		VisitorID: "v1",
	}

	_, emitted, err := svc.Track(context.Background(), platform, req)
	if err != nil || !emitted {
		t.Fatalf("first view_content should be emitted: emitted=%v err=%v", emitted, err)
	}

	_, emitted, err = svc.Track(context.Background(), platform, req)
	if err != nil {
		t.Fatalf("repeat view_content should not error: %v", err)
	}
	if emitted {
		t.Fatalf("repeat view_content should be deduplicated")
	}

	if len(sink.events) != 1 {
		t.Fatalf("expected 1 stored event, got %d", len(sink.events))
	}
	if len(bus.published) != 1 {
		t.Fatalf("expected 1 published event, got %d", len(bus.published))
	}
}

func TestTrackDefaultsExternalID(t *testing.T) {
	svc, sink, _, platform := testPixelFixture()

	productID := uuid.New()
	_, emitted, err := svc.Track(context.Background(), platform, &storeModels.TrackEventRequest{
		EventType: shared.PixelAddToCart,
		ProductID: productID,
		VisitorID: "v1",
	})
	if err != nil || !emitted {
		t.Fatalf("add_to_cart should be emitted: emitted=%v err=%v", emitted, err)
	}

	got := sink.events[0].ExternalID
	if !strings.HasPrefix(got, productID.String()+"_") {
		t.Fatalf("expected external id derived from product id, got %q", got)
	}
}

func TestTrackKeepsClientExternalID(t *testing.T) {
	svc, sink, _, platform := testPixelFixture()

	_, _, err := svc.Track(context.Background(), platform, &storeModels.TrackEventRequest{
		EventType:  shared.PixelInitiateCheckout,
		ProductID:  uuid.New(),
		VisitorID:  "v1",
		ExternalID: "funnel-123",
	})
	if err != nil {
		t.Fatalf("Track failed: %v", err)
	}

	if sink.events[0].ExternalID != "funnel-123" {
		t.Fatalf("client external id must be preserved, got %q", sink.events[0].ExternalID)
	}
}

func TestTrackRejectsClientLead(t *testing.T) {
	svc, sink, _, platform := testPixelFixture()

	_, _, err := svc.Track(context.Background(), platform, &storeModels.TrackEventRequest{
		EventType: shared.PixelLead,
		ProductID: uuid.New(),
		VisitorID: "v1",
	})

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected client-sent lead to be rejected, got %v", err)
	}
	if len(sink.events) != 0 {
		t.Fatalf("rejected lead must not be stored")
	}
}

func TestEmitLeadUsesOrderExternalID(t *testing.T) {
	svc, sink, _, platform := testPixelFixture()

	order := &storeModels.LandingOrder{
		ID:         uuid.New(),
		ProductID:  uuid.New(),
		ExternalID: "order-ext-1",
	}

	if err := svc.EmitLead(context.Background(), platform, order, "v9"); err != nil {
		t.Fatalf("EmitLead failed: %v", err)
	}

	e := sink.events[0]
	if e.EventType != shared.PixelLead {
		t.Fatalf("expected lead event, got %s", e.EventType)
	}
	if e.ExternalID != "order-ext-1" {
		t.Fatalf("lead must reuse the order external id, got %q", e.ExternalID)
	}
}
