package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"train-booking-platform/internal/models"
)

// respondError maps domain errors onto HTTP responses. Order failures carry
// the index of the failing ticket request so the client can correct and
// resubmit that entry.
func respondError(c *gin.Context, err error) {
	var reqErr *models.TicketRequestError
	if errors.As(err, &reqErr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": reqErr.Err.Error(),
			"index": reqErr.Index,
		})
		return
	}

	var outOfRange *models.OutOfRangeError
	var seatTaken *models.SeatTakenError
	switch {
	case errors.As(err, &outOfRange),
		errors.As(err, &seatTaken),
		errors.Is(err, models.ErrInvalidInput),
		errors.Is(err, models.ErrEmptyOrder):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrDuplicateEntry):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case isNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrStorageUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": models.ErrStorageUnavailable.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func isNotFound(err error) bool {
	for _, target := range []error{
		models.ErrStationNotFound,
		models.ErrRouteNotFound,
		models.ErrCrewNotFound,
		models.ErrTrainTypeNotFound,
		models.ErrTrainNotFound,
		models.ErrJourneyNotFound,
		models.ErrOrderNotFound,
		models.ErrTicketNotFound,
		models.ErrUserNotFound,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// respondBindError reports a malformed request body (wrong types, missing
// required fields) before any domain validation runs
func respondBindError(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{"error": models.ErrInvalidInput.Error()})
}

// pathID parses the :id path parameter
func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		respondBindError(c)
		return 0, false
	}
	return id, true
}
