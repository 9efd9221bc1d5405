package models

import (
	"errors"
	"strings"
)

// Station represents a train station
type Station struct {
	ID        int     `json:"id" db:"id"`
	Name      string  `json:"name" db:"name"`
	Latitude  float64 `json:"latitude" db:"latitude"`
	Longitude float64 `json:"longitude" db:"longitude"`
}

// StationCreateRequest represents the data needed to create a new station
type StationCreateRequest struct {
	Name      string  `json:"name" binding:"required"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Validate validates station creation data
func (req *StationCreateRequest) Validate() error {
	if strings.TrimSpace(req.Name) == "" {
		return errors.New("station name is required")
	}

	if len(req.Name) > 255 {
		return errors.New("station name must be less than 255 characters")
	}

	if req.Latitude < -90 || req.Latitude > 90 {
		return errors.New("latitude must be between -90 and 90")
	}

	if req.Longitude < -180 || req.Longitude > 180 {
		return errors.New("longitude must be between -180 and 180")
	}

	return nil
}
