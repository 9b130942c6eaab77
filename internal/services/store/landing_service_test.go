package store

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	storeModels "github.com/hanootc/yasir-platform-sub002/internal/models/store"
	"github.com/hanootc/yasir-platform-sub002/internal/render"
)

type fakeLandings struct {
	pages map[string]*storeModels.LandingPage
}

func (f *fakeLandings) GetBySlug(ctx context.Context, platformID uuid.UUID, slug string) (*storeModels.LandingPage, error) {
	if lp, ok := f.pages[slug]; ok {
		return lp, nil
	}
	return nil, pgx.ErrNoRows
}

type fakeProductSource struct {
	byID   map[uuid.UUID]*storeModels.Product
	bySlug map[string]*storeModels.Product
}

func (f *fakeProductSource) GetByID(ctx context.Context, id uuid.UUID) (*storeModels.Product, error) {
	if p, ok := f.byID[id]; ok {
		return p, nil
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeProductSource) GetBySlug(ctx context.Context, platformID uuid.UUID, slug string) (*storeModels.Product, error) {
	if p, ok := f.bySlug[slug]; ok {
		return p, nil
	}
	return nil, pgx.ErrNoRows
}

type fakeVariantSource struct{}

func (f *fakeVariantSource) ListGroups(ctx context.Context, productID uuid.UUID) (*storeModels.VariantGroups, error) {
	return &storeModels.VariantGroups{
		Colors: []storeModels.ProductVariant{},
		Shapes: []storeModels.ProductVariant{},
		Sizes:  []storeModels.ProductVariant{},
	}, nil
}

func testLandingFixture() (*LandingService, *fakeLandings, *fakeProductSource, *storeModels.PlatformSummary) {
	platform := &storeModels.PlatformSummary{
		ID:        uuid.New(),
		Name:      "متجر الياس",
		Subdomain: "alyas",
		Status:    "active",
	}

	landings := &fakeLandings{pages: map[string]*storeModels.LandingPage{}}
	products := &fakeProductSource{
		byID:   map[uuid.UUID]*storeModels.Product{},
		bySlug: map[string]*storeModels.Product{},
	}

	svc := NewLandingService(landings, products, &fakeVariantSource{}, "https://shop.example.com", zap.NewNop())
	return svc, landings, products, platform
}

func testProduct(platformID uuid.UUID) *storeModels.Product {
	return &storeModels.Product{
		ID:         uuid.New(),
		PlatformID: &platformID,
		Name:       "ساعة ذكية",
		Slug:       "smart-watch",
		Price:      25000,
	}
}

func TestResolveLandingPage(t *testing.T) {
	svc, landings, products, platform := testLandingFixture()

	product := testProduct(platform.ID)
	products.byID[product.ID] = product
	landings.pages["summer-offer"] = &storeModels.LandingPage{
		ID:         uuid.New(),
		PlatformID: platform.ID,
		ProductID:  product.ID,
		Template:   "tiktok_style",
		Theme:      "dark",
		CustomURL:  "summer-offer",
		IsActive:   true,
	}

	doc, err := svc.Resolve(context.Background(), platform, "summer-offer")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if doc.Landing.IsProductDirect {
		t.Fatalf("a real landing page must not be marked product-direct")
	}
	if doc.Template.Name != "tiktok_style" {
		t.Fatalf("expected tiktok_style config, got %s", doc.Template.Name)
	}
	if doc.Product.ID != product.ID {
		t.Fatalf("document carries the wrong product")
	}
	if len(doc.Offers) == 0 || !doc.Offers[0].IsDefault {
		t.Fatalf("expected a normalized default offer")
	}
}

func TestResolveSynthesizesDirectProductPage(t *testing.T) {
	svc, _, products, platform := testLandingFixture()

	product := testProduct(platform.ID)
	products.bySlug[product.Slug] = product
	products.byID[product.ID] = product

	doc, err := svc.Resolve(context.Background(), platform, "smart-watch")
	if err != nil {
		t.Fatalf("expected direct-product synthesis, got error: %v", err)
	}

	if !doc.Landing.IsProductDirect {
		t.Fatalf("expected is_product_direct on the synthesized page")
	}
	if doc.Landing.Template != render.DefaultTemplate {
		t.Fatalf("expected default template, got %s", doc.Landing.Template)
	}
	if doc.Landing.ProductID != product.ID {
		t.Fatalf("synthesized page must point at the product")
	}
}

func TestResolveUnknownSlug(t *testing.T) {
	svc, _, _, platform := testLandingFixture()

	_, err := svc.Resolve(context.Background(), platform, "missing")
	if err != ErrLandingNotFound {
		t.Fatalf("expected ErrLandingNotFound, got %v", err)
	}
}

func TestResolveUnknownTemplateFallsBack(t *testing.T) {
	svc, landings, products, platform := testLandingFixture()

	product := testProduct(platform.ID)
	products.byID[product.ID] = product
	landings.pages["odd"] = &storeModels.LandingPage{
		ID:         uuid.New(),
		PlatformID: platform.ID,
		ProductID:  product.ID,
		Template:   "no_such_template",
		CustomURL:  "odd",
		IsActive:   true,
	}

	doc, err := svc.Resolve(context.Background(), platform, "odd")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if doc.Template.Name != render.DefaultTemplate {
		t.Fatalf("expected fallback to %s, got %s", render.DefaultTemplate, doc.Template.Name)
	}
}
