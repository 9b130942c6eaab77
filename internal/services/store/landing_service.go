package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	storeModels "github.com/hanootc/yasir-platform-sub002/internal/models/store"
	"github.com/hanootc/yasir-platform-sub002/internal/offers"
	"github.com/hanootc/yasir-platform-sub002/internal/render"
)

// ErrLandingNotFound is returned when neither a landing page nor a product
// matches the slug.
var ErrLandingNotFound = errors.New("landing page not found")

type landingSource interface {
	GetBySlug(ctx context.Context, platformID uuid.UUID, slug string) (*storeModels.LandingPage, error)
}

type productSource interface {
	GetByID(ctx context.Context, id uuid.UUID) (*storeModels.Product, error)
	GetBySlug(ctx context.Context, platformID uuid.UUID, slug string) (*storeModels.Product, error)
}

type variantSource interface {
	ListGroups(ctx context.Context, productID uuid.UUID) (*storeModels.VariantGroups, error)
}

// LandingService resolves a public slug into the fully populated landing
// document. Slugs name landing pages first; when none matches, a product
// slug is accepted and a direct page is synthesized around the product with
// the default template.
type LandingService struct {
	landings landingSource
	products productSource
	variants variantSource
	baseURL  string
	logger   *zap.Logger
}

func NewLandingService(landings landingSource, products productSource, variants variantSource, baseURL string, logger *zap.Logger) *LandingService {
	return &LandingService{
		landings: landings,
		products: products,
		variants: variants,
		baseURL:  baseURL,
		logger:   logger,
	}
}

// Resolve builds the landing document for a slug within a platform.
func (s *LandingService) Resolve(ctx context.Context, platform *storeModels.PlatformSummary, slug string) (*render.Document, error) {
	lp, product, err := s.lookup(ctx, platform, slug)
	if err != nil {
		return nil, err
	}

	variants, err := s.variants.ListGroups(ctx, product.ID)
	if err != nil {
		return nil, err
	}

	pageURL := fmt.Sprintf("%s/%s/%s", s.baseURL, platform.Subdomain, slug)

	return &render.Document{
		Landing:  *lp,
		Product:  *product,
		Platform: *platform,
		Offers:   offers.Normalize(product),
		Variants: *variants,
		Template: render.ConfigFor(lp.Template),
		Theme:    lp.Theme,
		SEO:      render.BuildSEOMeta(lp, product, platform, pageURL),
	}, nil
}

func (s *LandingService) lookup(ctx context.Context, platform *storeModels.PlatformSummary, slug string) (*storeModels.LandingPage, *storeModels.Product, error) {
	lp, err := s.landings.GetBySlug(ctx, platform.ID, slug)
	if err == nil {
		product, err := s.products.GetByID(ctx, lp.ProductID)
		if err != nil {
			return nil, nil, err
		}
		return lp, product, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, nil, err
	}

	product, err := s.products.GetBySlug(ctx, platform.ID, slug)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil, ErrLandingNotFound
	}
	if err != nil {
		return nil, nil, err
	}

	return directPage(platform.ID, product, slug), product, nil
}

// directPage wraps a bare product in a synthetic landing page so product
// slugs render through the same pipeline.
func directPage(platformID uuid.UUID, p *storeModels.Product, slug string) *storeModels.LandingPage {
	return &storeModels.LandingPage{
		ID:              p.ID,
		PlatformID:      platformID,
		ProductID:       p.ID,
		Template:        render.DefaultTemplate,
		CustomURL:       slug,
		IsActive:        true,
		IsProductDirect: true,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}
