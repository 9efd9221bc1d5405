package services

import (
	"strconv"
	"strings"
	"time"

	"train-booking-platform/internal/models"
)

// JourneyRepository interface for journey data operations
type JourneyRepository interface {
	Create(req *models.JourneyCreateRequest) (*models.Journey, error)
	List(filters models.JourneyFilters) ([]*models.JourneyListItem, error)
	GetDetail(id int) (*models.JourneyDetail, error)
}

// JourneyService produces enriched journey views for listing and detail
// display. Occupancy metrics are computed from the current ticket set at
// query time; concurrent bookings may be in flight when a snapshot is taken.
type JourneyService struct {
	journeyRepo JourneyRepository
}

// NewJourneyService creates a new journey service
func NewJourneyService(journeyRepo JourneyRepository) *JourneyService {
	return &JourneyService{journeyRepo: journeyRepo}
}

// CreateJourney schedules a new journey
func (s *JourneyService) CreateJourney(req *models.JourneyCreateRequest) (*models.Journey, error) {
	return s.journeyRepo.Create(req)
}

// ListJourneys retrieves journeys matching the given query parameters.
// trainParam is a comma-separated list of train IDs; the date parameters
// match the calendar date (YYYY-MM-DD) of departure or arrival.
func (s *JourneyService) ListJourneys(trainParam, departureParam, arrivalParam string) ([]*models.JourneyListItem, error) {
	filters := models.JourneyFilters{}

	if trainParam != "" {
		ids, err := paramToInts(trainParam)
		if err != nil {
			return nil, models.ErrInvalidInput
		}
		filters.TrainIDs = ids
	}

	for _, p := range []struct {
		value  string
		target *string
	}{
		{departureParam, &filters.DepartureDate},
		{arrivalParam, &filters.ArrivalDate},
	} {
		if p.value == "" {
			continue
		}
		if _, err := time.Parse("2006-01-02", p.value); err != nil {
			return nil, models.ErrInvalidInput
		}
		*p.target = p.value
	}

	journeys, err := s.journeyRepo.List(filters)
	if err != nil {
		return nil, err
	}

	if journeys == nil {
		journeys = []*models.JourneyListItem{}
	}

	return journeys, nil
}

// GetJourney retrieves the detail view of a journey
func (s *JourneyService) GetJourney(id int) (*models.JourneyDetail, error) {
	return s.journeyRepo.GetDetail(id)
}

func paramToInts(param string) ([]int, error) {
	parts := strings.Split(param, ",")
	ids := make([]int, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
