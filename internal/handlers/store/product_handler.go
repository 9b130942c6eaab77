package store

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/hanootc/yasir-platform-sub002/internal/models/shared"
	storeModels "github.com/hanootc/yasir-platform-sub002/internal/models/store"
	"github.com/hanootc/yasir-platform-sub002/internal/offers"
	storeRepo "github.com/hanootc/yasir-platform-sub002/internal/repository/store"
	storeServices "github.com/hanootc/yasir-platform-sub002/internal/services/store"
)

type ProductHandler struct {
	products     *storeServices.ProductService
	descriptions *storeServices.DescriptionService
	variants     *storeRepo.VariantRepository
}

func NewProductHandler(
	products *storeServices.ProductService,
	descriptions *storeServices.DescriptionService,
	variants *storeRepo.VariantRepository,
) *ProductHandler {
	return &ProductHandler{
		products:     products,
		descriptions: descriptions,
		variants:     variants,
	}
}

// CreateGlobal handles POST /api/products
func (h *ProductHandler) CreateGlobal(c *gin.Context) {
	h.create(c, nil)
}

// CreateForPlatform handles POST /api/platforms/:id/products
func (h *ProductHandler) CreateForPlatform(c *gin.Context) {
	platformID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid platform id"})
		return
	}
	h.create(c, &platformID)
}

func (h *ProductHandler) create(c *gin.Context, platformID *uuid.UUID) {
	var req storeModels.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	product, err := h.products.Create(c.Request.Context(), platformID, &req)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, product)
}

// GenerateDescription handles POST /api/products/generate-description
func (h *ProductHandler) GenerateDescription(c *gin.Context) {
	var req storeModels.GenerateDescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	description, err := h.descriptions.Generate(c.Request.Context(), req.Name)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"description": description})
}

const maxImageSize = 10 << 20 // 10 MB

// UploadImage handles POST /api/products/images (multipart). An optional
// platform_id form field scopes the upload.
func (h *ProductHandler) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image file required"})
		return
	}
	if fileHeader.Size > maxImageSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image file too large"})
		return
	}

	var platformID *uuid.UUID
	if raw := c.PostForm("platform_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid platform id"})
			return
		}
		platformID = &id
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read image", "details": err.Error()})
		return
	}
	defer file.Close()

	url, err := h.products.UploadImage(c.Request.Context(), platformID, file, fileHeader.Filename)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url})
}

// GetPublic handles GET /api/public/products/:id
func (h *ProductHandler) GetPublic(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	product, err := h.products.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"product": product,
		"offers":  offers.Normalize(product),
	})
}

// ListColors handles GET /api/products/:id/colors
func (h *ProductHandler) ListColors(c *gin.Context) {
	h.listVariants(c, shared.VariantColor)
}

// ListShapes handles GET /api/products/:id/shapes
func (h *ProductHandler) ListShapes(c *gin.Context) {
	h.listVariants(c, shared.VariantShape)
}

// ListSizes handles GET /api/products/:id/sizes
func (h *ProductHandler) ListSizes(c *gin.Context) {
	h.listVariants(c, shared.VariantSize)
}

func (h *ProductHandler) listVariants(c *gin.Context, kind shared.VariantKind) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	variants, err := h.variants.ListByKind(c.Request.Context(), productID, kind)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, variants)
}
