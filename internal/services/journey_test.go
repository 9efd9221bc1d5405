package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"train-booking-platform/internal/models"
)

type fakeJourneyRepository struct {
	lastFilters models.JourneyFilters
	items       []*models.JourneyListItem
}

func (f *fakeJourneyRepository) Create(req *models.JourneyCreateRequest) (*models.Journey, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return &models.Journey{ID: 1, RouteID: req.RouteID, TrainID: req.TrainID}, nil
}

func (f *fakeJourneyRepository) List(filters models.JourneyFilters) ([]*models.JourneyListItem, error) {
	f.lastFilters = filters
	return f.items, nil
}

func (f *fakeJourneyRepository) GetDetail(id int) (*models.JourneyDetail, error) {
	return nil, models.ErrJourneyNotFound
}

func TestListJourneys_FilterParsing(t *testing.T) {
	repo := &fakeJourneyRepository{}
	svc := NewJourneyService(repo)

	_, err := svc.ListJourneys("3, 7,12", "2025-11-13", "")
	require.NoError(t, err)
	assert.Equal(t, []int{3, 7, 12}, repo.lastFilters.TrainIDs)
	assert.Equal(t, "2025-11-13", repo.lastFilters.DepartureDate)
	assert.Empty(t, repo.lastFilters.ArrivalDate)

	_, err = svc.ListJourneys("", "", "2025-11-14")
	require.NoError(t, err)
	assert.Empty(t, repo.lastFilters.TrainIDs)
	assert.Equal(t, "2025-11-14", repo.lastFilters.ArrivalDate)
}

func TestListJourneys_InvalidParams(t *testing.T) {
	svc := NewJourneyService(&fakeJourneyRepository{})

	tests := []struct {
		name      string
		train     string
		departure string
		arrival   string
	}{
		{name: "train not a number", train: "3,abc"},
		{name: "departure wrong format", departure: "13-11-2025"},
		{name: "departure not a date", departure: "tomorrow"},
		{name: "arrival wrong format", arrival: "2025/11/14"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ListJourneys(tt.train, tt.departure, tt.arrival)
			assert.ErrorIs(t, err, models.ErrInvalidInput)
		})
	}
}

func TestListJourneys_NeverReturnsNil(t *testing.T) {
	svc := NewJourneyService(&fakeJourneyRepository{})

	journeys, err := svc.ListJourneys("", "", "")
	require.NoError(t, err)
	assert.NotNil(t, journeys)
	assert.Empty(t, journeys)
}
