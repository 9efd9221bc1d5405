package models

import (
	"errors"
	"time"
)

// Journey represents a scheduled run of a train along a route within a time
// window. Ticket capacity is inherited from the train at allocation time, not
// copied here: if the train is swapped, capacity constraints shift immediately
// for future bookings.
type Journey struct {
	ID            int       `json:"id" db:"id"`
	RouteID       int       `json:"route" db:"route_id"`
	TrainID       int       `json:"train" db:"train_id"`
	DepartureTime time.Time `json:"departure_time" db:"departure_time"`
	ArrivalTime   time.Time `json:"arrival_time" db:"arrival_time"`
	CrewIDs       []int     `json:"crews,omitempty"`
}

// JourneyListItem is the list view of a journey with occupancy metrics
// computed from the current ticket set at query time.
type JourneyListItem struct {
	ID              int           `json:"id"`
	Train           TrainResponse `json:"train"`
	DepartureTime   time.Time     `json:"departure_time"`
	ArrivalTime     time.Time     `json:"arrival_time"`
	RouteDistance   int           `json:"route_distance"`
	Crews           []string      `json:"crews"`
	CountTakenSeats int           `json:"count_taken_seats"`
	CountTakenCargo int           `json:"count_taken_cargo"`
	SeatsAvailable  int           `json:"seats_available"`
	CargoAvailable  int           `json:"cargo_available"`
}

// JourneyDetail is the detail view of a journey with the route, crew and
// ticket sets embedded. TakenSeats and TakenCargo are multisets drawn from
// the committed tickets, ordered by (cargo, seat).
type JourneyDetail struct {
	ID            int            `json:"id"`
	Train         TrainResponse  `json:"train"`
	Route         RouteDetail    `json:"route"`
	DepartureTime time.Time      `json:"departure_time"`
	ArrivalTime   time.Time      `json:"arrival_time"`
	Crews         []CrewResponse `json:"crews"`
	Tickets       []Ticket       `json:"tickets"`
	TakenSeats    []int          `json:"taken_seats"`
	TakenCargo    []int          `json:"taken_cargo"`
}

// JourneyFilters narrows a journey listing. Departure and arrival filters
// match the calendar date, not the time of day.
type JourneyFilters struct {
	TrainIDs      []int
	DepartureDate string // YYYY-MM-DD
	ArrivalDate   string // YYYY-MM-DD
}

// JourneyCreateRequest represents the data needed to schedule a new journey
type JourneyCreateRequest struct {
	RouteID       int       `json:"route" binding:"required"`
	TrainID       int       `json:"train" binding:"required"`
	DepartureTime time.Time `json:"departure_time" binding:"required"`
	ArrivalTime   time.Time `json:"arrival_time" binding:"required"`
	CrewIDs       []int     `json:"crews"`
}

// Validate validates journey creation data. A journey with no crew is valid.
func (req *JourneyCreateRequest) Validate() error {
	if req.RouteID <= 0 {
		return errors.New("route is required")
	}

	if req.TrainID <= 0 {
		return errors.New("train is required")
	}

	if req.DepartureTime.IsZero() || req.ArrivalTime.IsZero() {
		return errors.New("departure and arrival times are required")
	}

	if !req.ArrivalTime.After(req.DepartureTime) {
		return errors.New("arrival time must be after departure time")
	}

	for _, id := range req.CrewIDs {
		if id <= 0 {
			return errors.New("invalid crew reference")
		}
	}

	return nil
}
