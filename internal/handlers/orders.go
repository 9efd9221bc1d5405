package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"train-booking-platform/internal/middleware"
	"train-booking-platform/internal/models"
	"train-booking-platform/internal/services"
)

// OrderHandler serves order submission and listing endpoints. All order
// endpoints are owner-scoped: a user only ever sees their own orders.
type OrderHandler struct {
	orderService *services.OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// Create handles POST /api/orders. The whole batch of ticket requests is
// committed atomically; a failure response identifies the failing request
// by its index in the submitted list.
func (h *OrderHandler) Create(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req models.OrderCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c)
		return
	}

	order, err := h.orderService.CreateOrder(user.ID, req.Tickets)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, order)
}

// List handles GET /api/orders with page/page_size pagination
func (h *OrderHandler) List(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(services.DefaultPageSize)))

	orders, total, err := h.orderService.ListOrders(user.ID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":   total,
		"results": orders,
	})
}

// Get handles GET /api/orders/:id
func (h *OrderHandler) Get(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	id, ok := pathID(c)
	if !ok {
		return
	}

	order, err := h.orderService.GetOrder(user.ID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}
