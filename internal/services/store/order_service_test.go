package store

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/hanootc/yasir-platform-sub002/internal/models/shared"
	storeModels "github.com/hanootc/yasir-platform-sub002/internal/models/store"
)

type fakeProducts struct {
	product *storeModels.Product
}

func (f *fakeProducts) GetByID(ctx context.Context, id uuid.UUID) (*storeModels.Product, error) {
	return f.product, nil
}

type fakeOrderLandings struct {
	pages map[uuid.UUID]*storeModels.LandingPage
}

func (f *fakeOrderLandings) GetByID(ctx context.Context, id uuid.UUID) (*storeModels.LandingPage, error) {
	if lp, ok := f.pages[id]; ok {
		return lp, nil
	}
	return nil, pgx.ErrNoRows
}

type fakeOrders struct {
	created []*storeModels.LandingOrder
}

func (f *fakeOrders) Create(ctx context.Context, o *storeModels.LandingOrder) (*storeModels.LandingOrder, error) {
	o.ID = uuid.New()
	f.created = append(f.created, o)
	return o, nil
}

type fakeVariants struct {
	existing map[uuid.UUID]bool
}

func (f *fakeVariants) CountExisting(ctx context.Context, productID uuid.UUID, kind shared.VariantKind, ids []uuid.UUID) (int, error) {
	count := 0
	for _, id := range ids {
		if f.existing[id] {
			count++
		}
	}
	return count, nil
}

type fakeStats struct {
	revenue float64
	calls   int
}

func (f *fakeStats) IncrementOrderStats(ctx context.Context, platformID uuid.UUID, revenue float64) error {
	f.calls++
	f.revenue += revenue
	return nil
}

type fakeLeads struct {
	orders []*storeModels.LandingOrder
}

func (f *fakeLeads) EmitLead(ctx context.Context, platform *storeModels.PlatformSummary, order *storeModels.LandingOrder, visitorID string) error {
	f.orders = append(f.orders, order)
	return nil
}

func testOrderFixture() (*OrderService, *fakeOrders, *fakeStats, *fakeLeads, *fakeVariants, *fakeOrderLandings, *storeModels.PlatformSummary, *storeModels.Product) {
	platformID := uuid.New()
	product := &storeModels.Product{
		ID:         uuid.New(),
		PlatformID: &platformID,
		Name:       "حذاء رياضي",
		Price:      10000,
		PriceOffers: []storeModels.PriceOffer{
			{ID: "two", Label: "قطعتان", Price: 18000, Quantity: 2, IsDefault: true},
		},
	}

	orders := &fakeOrders{}
	stats := &fakeStats{}
	leads := &fakeLeads{}
	variants := &fakeVariants{existing: map[uuid.UUID]bool{}}
	landings := &fakeOrderLandings{pages: map[uuid.UUID]*storeModels.LandingPage{}}

	svc := NewOrderService(&fakeProducts{product: product}, landings, orders, variants, stats, leads, zap.NewNop())
	platform := &storeModels.PlatformSummary{ID: platformID, Name: "متجر", Subdomain: "shop"}

	return svc, orders, stats, leads, variants, landings, platform, product
}

func validOrderRequest(product *storeModels.Product) *storeModels.CreateOrderRequest {
	return &storeModels.CreateOrderRequest{
		ProductID:     product.ID,
		OfferID:       "two",
		CustomerName:  "علي حسين",
		CustomerPhone: "07701234567",
		Governorate:   "بغداد",
		Address:       "حي الجامعة",
	}
}

func TestCreateOrderRecomputesTotals(t *testing.T) {
	svc, orders, stats, leads, _, _, platform, product := testOrderFixture()

	order, err := svc.Create(context.Background(), platform, validOrderRequest(product))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if order.Quantity != 2 {
		t.Fatalf("expected quantity 2 from offer, got %d", order.Quantity)
	}
	if order.Total != 18000 {
		t.Fatalf("expected total 18000 from offer, got %v", order.Total)
	}
	if order.Status != shared.OrderPending {
		t.Fatalf("expected pending status, got %s", order.Status)
	}
	if order.ExternalID == "" {
		t.Fatalf("expected a generated external id")
	}
	if len(orders.created) != 1 {
		t.Fatalf("expected 1 stored order, got %d", len(orders.created))
	}
	if stats.calls != 1 || stats.revenue != 18000 {
		t.Fatalf("expected stats bump of 18000, got %d calls / %v", stats.calls, stats.revenue)
	}
	if len(leads.orders) != 1 || leads.orders[0].ExternalID != order.ExternalID {
		t.Fatalf("expected one lead event sharing the order external id")
	}
}

func TestCreateOrderRejectsOverSelection(t *testing.T) {
	svc, orders, _, _, variants, _, platform, product := testOrderFixture()

	colors := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	for _, id := range colors {
		variants.existing[id] = true
	}

	req := validOrderRequest(product)
	req.ColorIDs = colors

	// The offer allows two pieces; three colors must be rejected outright.
	_, err := svc.Create(context.Background(), platform, req)

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected a validation error, got %v", err)
	}
	if len(orders.created) != 0 {
		t.Fatalf("rejected order must not be stored")
	}
	if len(req.ColorIDs) != 3 {
		t.Fatalf("rejection must not mutate the request selection")
	}
}

func TestCreateOrderAllowsSelectionAtCap(t *testing.T) {
	svc, _, _, _, variants, _, platform, product := testOrderFixture()

	colors := []uuid.UUID{uuid.New(), uuid.New()}
	for _, id := range colors {
		variants.existing[id] = true
	}

	req := validOrderRequest(product)
	req.ColorIDs = colors

	order, err := svc.Create(context.Background(), platform, req)
	if err != nil {
		t.Fatalf("selection at the cap should pass: %v", err)
	}
	if len(order.ColorIDs) != 2 {
		t.Fatalf("expected both colors on the order, got %d", len(order.ColorIDs))
	}
}

func TestCreateOrderRejectsStaleVariants(t *testing.T) {
	svc, _, _, _, _, _, platform, product := testOrderFixture()

	req := validOrderRequest(product)
	req.ColorIDs = []uuid.UUID{uuid.New()} // not present in the fake store

	_, err := svc.Create(context.Background(), platform, req)

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected a validation error for stale variant ids, got %v", err)
	}
}

func TestCreateOrderRejectsUnknownOffer(t *testing.T) {
	svc, _, _, _, _, _, platform, product := testOrderFixture()

	req := validOrderRequest(product)
	req.OfferID = "nope"

	_, err := svc.Create(context.Background(), platform, req)

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected a validation error for unknown offer, got %v", err)
	}
}

func TestCreateOrderKeepsOwnLandingPage(t *testing.T) {
	svc, orders, _, _, _, landings, platform, product := testOrderFixture()

	lp := &storeModels.LandingPage{
		ID:         uuid.New(),
		PlatformID: platform.ID,
		ProductID:  product.ID,
	}
	landings.pages[lp.ID] = lp

	req := validOrderRequest(product)
	req.LandingPageID = &lp.ID

	order, err := svc.Create(context.Background(), platform, req)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if order.LandingPageID == nil || *order.LandingPageID != lp.ID {
		t.Fatalf("expected the landing page reference to be kept")
	}
	if len(orders.created) != 1 {
		t.Fatalf("expected 1 stored order, got %d", len(orders.created))
	}
}

func TestCreateOrderDropsForeignLandingPage(t *testing.T) {
	svc, orders, _, _, _, landings, platform, product := testOrderFixture()

	lp := &storeModels.LandingPage{
		ID:         uuid.New(),
		PlatformID: uuid.New(), // belongs to some other platform
		ProductID:  product.ID,
	}
	landings.pages[lp.ID] = lp

	req := validOrderRequest(product)
	req.LandingPageID = &lp.ID

	order, err := svc.Create(context.Background(), platform, req)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if order.LandingPageID != nil {
		t.Fatalf("a foreign landing page reference must not be stored")
	}
	if len(orders.created) != 1 {
		t.Fatalf("the order itself should still go through")
	}
}

func TestCreateOrderDropsStaleLandingPage(t *testing.T) {
	svc, _, _, _, _, _, platform, product := testOrderFixture()

	stale := uuid.New()
	req := validOrderRequest(product)
	req.LandingPageID = &stale

	order, err := svc.Create(context.Background(), platform, req)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if order.LandingPageID != nil {
		t.Fatalf("a deleted landing page reference must not be stored")
	}
}

func TestCreateOrderRejectsForeignProduct(t *testing.T) {
	svc, _, _, _, _, _, _, product := testOrderFixture()

	other := &storeModels.PlatformSummary{ID: uuid.New(), Subdomain: "other"}
	_, err := svc.Create(context.Background(), other, validOrderRequest(product))

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected a validation error for a foreign platform, got %v", err)
	}
}
