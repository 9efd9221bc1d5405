package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"train-booking-platform/internal/models"
	"train-booking-platform/internal/repositories"
)

// StationHandler serves station catalog endpoints
type StationHandler struct {
	stationRepo *repositories.StationRepository
}

// NewStationHandler creates a new station handler
func NewStationHandler(stationRepo *repositories.StationRepository) *StationHandler {
	return &StationHandler{stationRepo: stationRepo}
}

// List handles GET /api/stations
func (h *StationHandler) List(c *gin.Context) {
	stations, err := h.stationRepo.List()
	if err != nil {
		respondError(c, err)
		return
	}

	if stations == nil {
		stations = []*models.Station{}
	}
	c.JSON(http.StatusOK, stations)
}

// Create handles POST /api/stations
func (h *StationHandler) Create(c *gin.Context) {
	var req models.StationCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c)
		return
	}

	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	station, err := h.stationRepo.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, station)
}
