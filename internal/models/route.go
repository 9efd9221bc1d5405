package models

import "errors"

// Route connects a source station to a destination station. Source and
// destination may reference the same station.
type Route struct {
	ID            int `json:"id" db:"id"`
	SourceID      int `json:"source" db:"source_id"`
	DestinationID int `json:"destination" db:"destination_id"`
	Distance      int `json:"distance" db:"distance"`
}

// RouteListItem is the list view of a route with station names resolved.
type RouteListItem struct {
	ID          int    `json:"id"`
	Source      string `json:"source"`
	Destination string `json:"destination"`
	Distance    int    `json:"distance"`
}

// RouteDetail is the detail view of a route with full station records.
type RouteDetail struct {
	ID          int     `json:"id"`
	Source      Station `json:"source"`
	Destination Station `json:"destination"`
	Distance    int     `json:"distance"`
}

// RouteCreateRequest represents the data needed to create a new route
type RouteCreateRequest struct {
	SourceID      int `json:"source" binding:"required"`
	DestinationID int `json:"destination" binding:"required"`
	Distance      int `json:"distance" binding:"required"`
}

// Validate validates route creation data. Existing zero-distance routes
// remain bookable; the minimum applies to newly created routes only.
func (req *RouteCreateRequest) Validate() error {
	if req.SourceID <= 0 {
		return errors.New("source station is required")
	}

	if req.DestinationID <= 0 {
		return errors.New("destination station is required")
	}

	if req.Distance < 1 {
		return errors.New("distance must be at least 1")
	}

	return nil
}
