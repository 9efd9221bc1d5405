package models

import (
	"errors"
	"strings"
)

// TrainType represents a category of train
type TrainType struct {
	ID   int    `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// TrainTypeCreateRequest represents the data needed to create a new train type
type TrainTypeCreateRequest struct {
	Name string `json:"name" binding:"required"`
}

// Validate validates train type creation data
func (req *TrainTypeCreateRequest) Validate() error {
	if strings.TrimSpace(req.Name) == "" {
		return errors.New("train type name is required")
	}

	if len(req.Name) > 255 {
		return errors.New("train type name must be less than 255 characters")
	}

	return nil
}

// Train represents a physical train. CargoNum and PlacesInCargo define the
// capacity envelope for every journey the train is assigned to.
type Train struct {
	ID            int     `json:"id" db:"id"`
	Name          string  `json:"name" db:"name"`
	CargoNum      int     `json:"cargo_num" db:"cargo_num"`
	PlacesInCargo int     `json:"places_in_cargo" db:"places_in_cargo"`
	TrainTypeID   int     `json:"train_type_id" db:"train_type_id"`
	Image         *string `json:"image,omitempty" db:"image"`
}

// Capacity returns the total number of seats on the train
func (t *Train) Capacity() int {
	return t.CargoNum * t.PlacesInCargo
}

// ValidateSeat checks a (cargo, seat) pair against the physical layout of
// the train. Pure range validation; it knows nothing about which seats are
// already ticketed.
func (t *Train) ValidateSeat(cargo, seat int) error {
	if cargo < 1 || cargo > t.CargoNum {
		return &OutOfRangeError{Field: "cargo", Value: cargo, Bound: t.CargoNum}
	}

	if seat < 1 || seat > t.PlacesInCargo {
		return &OutOfRangeError{Field: "seat", Value: seat, Bound: t.PlacesInCargo}
	}

	return nil
}

// TrainResponse is the API view of a train with its type name and derived capacity.
type TrainResponse struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	CargoNum      int     `json:"cargo_num"`
	PlacesInCargo int     `json:"places_in_cargo"`
	TrainType     string  `json:"train_type"`
	Capacity      int     `json:"capacity"`
	Image         *string `json:"image,omitempty"`
}

// TrainCreateRequest represents the data needed to create a new train
type TrainCreateRequest struct {
	Name          string `json:"name" binding:"required"`
	CargoNum      int    `json:"cargo_num" binding:"required"`
	PlacesInCargo int    `json:"places_in_cargo" binding:"required"`
	TrainTypeID   int    `json:"train_type_id" binding:"required"`
}

// Validate validates train creation data
func (req *TrainCreateRequest) Validate() error {
	if strings.TrimSpace(req.Name) == "" {
		return errors.New("train name is required")
	}

	if req.CargoNum < 1 {
		return errors.New("cargo_num must be at least 1")
	}

	if req.PlacesInCargo < 1 {
		return errors.New("places_in_cargo must be at least 1")
	}

	if req.TrainTypeID <= 0 {
		return errors.New("train type is required")
	}

	return nil
}
