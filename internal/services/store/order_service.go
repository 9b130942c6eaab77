package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/hanootc/yasir-platform-sub002/internal/models/shared"
	storeModels "github.com/hanootc/yasir-platform-sub002/internal/models/store"
	"github.com/hanootc/yasir-platform-sub002/internal/offers"
	"github.com/hanootc/yasir-platform-sub002/internal/utils"
)

type orderSink interface {
	Create(ctx context.Context, o *storeModels.LandingOrder) (*storeModels.LandingOrder, error)
}

type variantChecker interface {
	CountExisting(ctx context.Context, productID uuid.UUID, kind shared.VariantKind, ids []uuid.UUID) (int, error)
}

type orderStatsSink interface {
	IncrementOrderStats(ctx context.Context, platformID uuid.UUID, revenue float64) error
}

type leadEmitter interface {
	EmitLead(ctx context.Context, platform *storeModels.PlatformSummary, order *storeModels.LandingOrder, visitorID string) error
}

// OrderService validates and records landing-page orders. Price, quantity
// and the selection caps all come from the stored offer; client-sent numbers
// are never trusted.
type OrderService struct {
	products orderProductSource
	landings orderLandingSource
	orders   orderSink
	variants variantChecker
	stats    orderStatsSink
	leads    leadEmitter
	logger   *zap.Logger
}

type orderProductSource interface {
	GetByID(ctx context.Context, id uuid.UUID) (*storeModels.Product, error)
}

type orderLandingSource interface {
	GetByID(ctx context.Context, id uuid.UUID) (*storeModels.LandingPage, error)
}

func NewOrderService(
	products orderProductSource,
	landings orderLandingSource,
	orders orderSink,
	variants variantChecker,
	stats orderStatsSink,
	leads leadEmitter,
	logger *zap.Logger,
) *OrderService {
	return &OrderService{
		products: products,
		landings: landings,
		orders:   orders,
		variants: variants,
		stats:    stats,
		leads:    leads,
		logger:   logger,
	}
}

// Create places an order. The selected offer is re-resolved server-side and
// variant selections exceeding the offer quantity are rejected outright.
func (s *OrderService) Create(ctx context.Context, platform *storeModels.PlatformSummary, req *storeModels.CreateOrderRequest) (*storeModels.LandingOrder, error) {
	product, err := s.products.GetByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	if product.PlatformID != nil && *product.PlatformID != platform.ID {
		return nil, invalid("المنتج غير متوفر")
	}

	offer, ok := offers.ByID(offers.Normalize(product), req.OfferID)
	if !ok {
		return nil, invalid("العرض المحدد غير متوفر")
	}

	if err := s.validateSelections(ctx, product.ID, offer.Quantity, req); err != nil {
		return nil, err
	}

	landingPageID, err := s.resolveLandingPage(ctx, platform, req.LandingPageID)
	if err != nil {
		return nil, err
	}

	externalID := req.ExternalID
	if externalID == "" {
		externalID = utils.PixelExternalID(product.ID, time.Now())
	}

	order := &storeModels.LandingOrder{
		LandingPageID: landingPageID,
		ProductID:     product.ID,
		PlatformID:    platform.ID,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		Governorate:   req.Governorate,
		Address:       req.Address,
		Notes:         req.Notes,
		OfferID:       offer.ID,
		OfferLabel:    offer.Label,
		Quantity:      offer.Quantity,
		Total:         offer.Price,
		ColorIDs:      nonNil(req.ColorIDs),
		ShapeIDs:      nonNil(req.ShapeIDs),
		SizeIDs:       nonNil(req.SizeIDs),
		ExternalID:    externalID,
		Status:        shared.OrderPending,
	}

	created, err := s.orders.Create(ctx, order)
	if err != nil {
		return nil, err
	}

	if err := s.stats.IncrementOrderStats(ctx, platform.ID, created.Total); err != nil {
		s.logger.Error("failed to update platform order stats",
			zap.String("order_id", created.ID.String()), zap.Error(err))
	}

	if err := s.leads.EmitLead(ctx, platform, created, req.VisitorID); err != nil {
		s.logger.Error("failed to emit lead event",
			zap.String("order_id", created.ID.String()), zap.Error(err))
	}

	return created, nil
}

// resolveLandingPage verifies the attribution reference. A stale or foreign
// landing-page id is dropped rather than stored; the order itself stands.
func (s *OrderService) resolveLandingPage(ctx context.Context, platform *storeModels.PlatformSummary, id *uuid.UUID) (*uuid.UUID, error) {
	if id == nil {
		return nil, nil
	}

	lp, err := s.landings.GetByID(ctx, *id)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return nil, nil
	case err != nil:
		return nil, err
	case lp.PlatformID != platform.ID:
		return nil, nil
	}

	return id, nil
}

// validateSelections enforces the per-kind selection cap and rejects stale
// variant ids. The cap is the offer quantity; over-selection is an error,
// the selection is never trimmed silently.
func (s *OrderService) validateSelections(ctx context.Context, productID uuid.UUID, maxPerKind int, req *storeModels.CreateOrderRequest) error {
	kinds := []struct {
		kind  shared.VariantKind
		ids   []uuid.UUID
		label string
	}{
		{shared.VariantColor, req.ColorIDs, "الألوان"},
		{shared.VariantShape, req.ShapeIDs, "الأشكال"},
		{shared.VariantSize, req.SizeIDs, "القياسات"},
	}

	for _, k := range kinds {
		if len(k.ids) == 0 {
			continue
		}
		if len(k.ids) > maxPerKind {
			return invalid("لا يمكن اختيار أكثر من %d من %s لهذا العرض", maxPerKind, k.label)
		}

		count, err := s.variants.CountExisting(ctx, productID, k.kind, k.ids)
		if err != nil {
			return err
		}
		if count != len(k.ids) {
			return invalid("بعض الخيارات المحددة لم تعد متوفرة")
		}
	}

	return nil
}

func nonNil(ids []uuid.UUID) []uuid.UUID {
	if ids == nil {
		return []uuid.UUID{}
	}
	return ids
}
