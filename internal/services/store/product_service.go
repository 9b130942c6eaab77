package store

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hanootc/yasir-platform-sub002/internal/cache"
	"github.com/hanootc/yasir-platform-sub002/internal/images"
	storeModels "github.com/hanootc/yasir-platform-sub002/internal/models/store"
	storeRepo "github.com/hanootc/yasir-platform-sub002/internal/repository/store"
	"github.com/hanootc/yasir-platform-sub002/internal/storage"
	"github.com/hanootc/yasir-platform-sub002/internal/utils"
)

// ValidationError is a user-facing rejection. The message is shown to the
// merchant as-is, so it is written in Arabic.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// ProductService validates and persists products. Numeric form fields arrive
// as localized strings and are parsed here.
type ProductService struct {
	products     *storeRepo.ProductRepository
	redis        *cache.Client
	store        storage.Driver
	imageChannel string
	logger       *zap.Logger
}

func NewProductService(products *storeRepo.ProductRepository, redisClient *cache.Client, store storage.Driver, imageChannel string, logger *zap.Logger) *ProductService {
	return &ProductService{
		products:     products,
		redis:        redisClient,
		store:        store,
		imageChannel: imageChannel,
		logger:       logger,
	}
}

// Create validates the product form and inserts the product. A nil
// platformID creates a global (marketplace) product.
func (s *ProductService) Create(ctx context.Context, platformID *uuid.UUID, req *storeModels.CreateProductRequest) (*storeModels.Product, error) {
	price, err := utils.ParseDecimal(req.Price)
	if err != nil || price <= 0 {
		return nil, invalid("سعر المنتج غير صالح")
	}

	var cost *float64
	if req.Cost != nil && *req.Cost != "" {
		v, err := utils.ParseDecimal(*req.Cost)
		if err != nil || v < 0 {
			return nil, invalid("كلفة المنتج غير صالحة")
		}
		cost = &v
	}

	var stock *int
	if req.Stock != nil && *req.Stock != "" {
		v, err := utils.ParseInt(*req.Stock)
		if err != nil || v < 0 {
			return nil, invalid("كمية المخزون غير صالحة")
		}
		stock = &v
	}

	offers, err := parseOffers(req.PriceOffers)
	if err != nil {
		return nil, err
	}

	slug, err := s.resolveSlug(ctx, platformID, req.Name)
	if err != nil {
		return nil, err
	}

	product, err := s.products.Create(ctx, &storeRepo.NewProduct{
		PlatformID:       platformID,
		CategoryID:       req.CategoryID,
		Name:             req.Name,
		Slug:             slug,
		Description:      req.Description,
		Price:            price,
		Cost:             cost,
		Stock:            stock,
		SKU:              req.SKU,
		ImageURLs:        req.ImageURLs,
		AdditionalImages: req.AdditionalImages,
		PriceOffers:      offers,
	})
	if err != nil {
		return nil, err
	}

	if platformID != nil {
		if err := s.redis.InvalidateLanding(ctx, platformID.String()); err != nil {
			s.logger.Warn("failed to invalidate landing cache",
				zap.String("platform_id", platformID.String()), zap.Error(err))
		}
	}

	s.logger.Info("product created",
		zap.String("product_id", product.ID.String()),
		zap.String("slug", product.Slug),
	)
	return product, nil
}

// parseOffers validates the flexible offer rows. Prices are parsed from
// localized strings and exactly one row ends up default.
func parseOffers(inputs []storeModels.PriceOfferInput) ([]storeModels.PriceOffer, error) {
	if len(inputs) == 0 {
		return nil, nil
	}

	offers := make([]storeModels.PriceOffer, 0, len(inputs))
	defaultSeen := false
	for i, in := range inputs {
		if in.Label == "" {
			return nil, invalid("وصف العرض %d مطلوب", i+1)
		}
		if in.Quantity < 1 {
			return nil, invalid("عدد القطع في العرض %d غير صالح", i+1)
		}

		price, err := utils.ParseDecimal(in.Price)
		if err != nil || price <= 0 {
			return nil, invalid("سعر العرض %d غير صالح", i+1)
		}

		isDefault := in.IsDefault && !defaultSeen
		if isDefault {
			defaultSeen = true
		}

		offers = append(offers, storeModels.PriceOffer{
			ID:        fmt.Sprintf("offer-%d", i+1),
			Label:     in.Label,
			Price:     price,
			Quantity:  in.Quantity,
			IsDefault: isDefault,
		})
	}

	if !defaultSeen {
		offers[0].IsDefault = true
	}
	return offers, nil
}

// resolveSlug derives a URL slug from the name and disambiguates collisions
// within the platform scope.
func (s *ProductService) resolveSlug(ctx context.Context, platformID *uuid.UUID, name string) (string, error) {
	base := utils.NormalizeSlug(name)
	if base == "" {
		base = "product"
	}

	slug := base
	for attempt := 0; attempt < 5; attempt++ {
		exists, err := s.products.SlugExists(ctx, platformID, slug)
		if err != nil {
			return "", err
		}
		if !exists {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%s", base, utils.GenerateSlugSuffix())
	}

	return "", fmt.Errorf("failed to find a free slug for %q", name)
}

// Get loads a product for the admin detail view.
func (s *ProductService) Get(ctx context.Context, id uuid.UUID) (*storeModels.Product, error) {
	return s.products.GetByID(ctx, id)
}

// UploadImage stores one product image and queues the resize job. The form
// references the returned URL; the product row is written later on create.
func (s *ProductService) UploadImage(ctx context.Context, platformID *uuid.UUID, file io.Reader, filename string) (string, error) {
	storagePath := storage.ProductImagePath(platformID, filename)
	storedPath, publicURL, err := s.store.Upload(ctx, file, storagePath)
	if err != nil {
		return "", fmt.Errorf("failed to store product image: %w", err)
	}

	payload, err := json.Marshal(&images.Job{Kind: images.KindProductImage, Path: storedPath})
	if err == nil {
		err = s.redis.Publish(ctx, s.imageChannel, payload)
	}
	if err != nil {
		s.logger.Warn("failed to queue image job", zap.String("path", storedPath), zap.Error(err))
	}

	return publicURL, nil
}
