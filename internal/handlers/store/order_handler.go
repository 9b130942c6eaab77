package store

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	storeModels "github.com/hanootc/yasir-platform-sub002/internal/models/store"
	storeRepo "github.com/hanootc/yasir-platform-sub002/internal/repository/store"
	storeServices "github.com/hanootc/yasir-platform-sub002/internal/services/store"
)

type OrderHandler struct {
	orders     *storeServices.OrderService
	orderReads *storeRepo.OrderRepository
}

func NewOrderHandler(orders *storeServices.OrderService, orderReads *storeRepo.OrderRepository) *OrderHandler {
	return &OrderHandler{orders: orders, orderReads: orderReads}
}

// Create handles POST /api/landing-page-orders
func (h *OrderHandler) Create(c *gin.Context) {
	platform := platformFromContext(c)

	var req storeModels.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	order, err := h.orders.Create(c.Request.Context(), platform, &req)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, order)
}

// Get handles GET /api/landing-page-orders/:id (thank-you page lookup)
func (h *OrderHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}

	order, err := h.orderReads.GetByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}
