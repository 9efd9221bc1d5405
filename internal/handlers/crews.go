package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"train-booking-platform/internal/models"
	"train-booking-platform/internal/repositories"
)

// CrewHandler serves crew catalog endpoints
type CrewHandler struct {
	crewRepo *repositories.CrewRepository
}

// NewCrewHandler creates a new crew handler
func NewCrewHandler(crewRepo *repositories.CrewRepository) *CrewHandler {
	return &CrewHandler{crewRepo: crewRepo}
}

// List handles GET /api/crews
func (h *CrewHandler) List(c *gin.Context) {
	crews, err := h.crewRepo.List()
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]models.CrewResponse, 0, len(crews))
	for _, crew := range crews {
		responses = append(responses, crew.Response())
	}
	c.JSON(http.StatusOK, responses)
}

// Create handles POST /api/crews
func (h *CrewHandler) Create(c *gin.Context) {
	var req models.CrewCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c)
		return
	}

	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	crew, err := h.crewRepo.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, crew.Response())
}
