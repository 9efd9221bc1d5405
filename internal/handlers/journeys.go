package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"train-booking-platform/internal/models"
	"train-booking-platform/internal/services"
)

// JourneyHandler serves journey listing, detail and scheduling endpoints
type JourneyHandler struct {
	journeyService *services.JourneyService
}

// NewJourneyHandler creates a new journey handler
func NewJourneyHandler(journeyService *services.JourneyService) *JourneyHandler {
	return &JourneyHandler{journeyService: journeyService}
}

// List handles GET /api/journeys with optional filters:
// ?train=<id,id,...> ?departure_time=YYYY-MM-DD ?arrival_time=YYYY-MM-DD
func (h *JourneyHandler) List(c *gin.Context) {
	journeys, err := h.journeyService.ListJourneys(
		c.Query("train"),
		c.Query("departure_time"),
		c.Query("arrival_time"),
	)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, journeys)
}

// Get handles GET /api/journeys/:id
func (h *JourneyHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	journey, err := h.journeyService.GetJourney(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, journey)
}

// Create handles POST /api/journeys
func (h *JourneyHandler) Create(c *gin.Context) {
	var req models.JourneyCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c)
		return
	}

	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	journey, err := h.journeyService.CreateJourney(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, journey)
}
