package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"train-booking-platform/internal/models"
	"train-booking-platform/internal/repositories"
)

// TrainHandler serves train and train type catalog endpoints
type TrainHandler struct {
	trainRepo *repositories.TrainRepository
}

// NewTrainHandler creates a new train handler
func NewTrainHandler(trainRepo *repositories.TrainRepository) *TrainHandler {
	return &TrainHandler{trainRepo: trainRepo}
}

// ListTypes handles GET /api/train-types
func (h *TrainHandler) ListTypes(c *gin.Context) {
	types, err := h.trainRepo.ListTrainTypes()
	if err != nil {
		respondError(c, err)
		return
	}

	if types == nil {
		types = []*models.TrainType{}
	}
	c.JSON(http.StatusOK, types)
}

// CreateType handles POST /api/train-types
func (h *TrainHandler) CreateType(c *gin.Context) {
	var req models.TrainTypeCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c)
		return
	}

	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	trainType, err := h.trainRepo.CreateTrainType(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, trainType)
}

// List handles GET /api/trains
func (h *TrainHandler) List(c *gin.Context) {
	trains, err := h.trainRepo.List()
	if err != nil {
		respondError(c, err)
		return
	}

	if trains == nil {
		trains = []*models.TrainResponse{}
	}
	c.JSON(http.StatusOK, trains)
}

// Get handles GET /api/trains/:id
func (h *TrainHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	train, err := h.trainRepo.GetResponse(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, train)
}

// Create handles POST /api/trains
func (h *TrainHandler) Create(c *gin.Context) {
	var req models.TrainCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c)
		return
	}

	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	train, err := h.trainRepo.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, train)
}
