package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"train-booking-platform/internal/models"
	"train-booking-platform/internal/repositories"
)

// RouteHandler serves route catalog endpoints
type RouteHandler struct {
	routeRepo *repositories.RouteRepository
}

// NewRouteHandler creates a new route handler
func NewRouteHandler(routeRepo *repositories.RouteRepository) *RouteHandler {
	return &RouteHandler{routeRepo: routeRepo}
}

// List handles GET /api/routes with an optional ?source=<id,id,...> filter
func (h *RouteHandler) List(c *gin.Context) {
	var sourceIDs []int
	if param := c.Query("source"); param != "" {
		for _, part := range strings.Split(param, ",") {
			id, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil {
				respondBindError(c)
				return
			}
			sourceIDs = append(sourceIDs, id)
		}
	}

	routes, err := h.routeRepo.List(sourceIDs)
	if err != nil {
		respondError(c, err)
		return
	}

	if routes == nil {
		routes = []*models.RouteListItem{}
	}
	c.JSON(http.StatusOK, routes)
}

// Get handles GET /api/routes/:id
func (h *RouteHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	route, err := h.routeRepo.GetDetail(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, route)
}

// Create handles POST /api/routes
func (h *RouteHandler) Create(c *gin.Context) {
	var req models.RouteCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c)
		return
	}

	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	route, err := h.routeRepo.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, route)
}
