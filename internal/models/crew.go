package models

import (
	"errors"
	"strings"
)

// Crew represents a crew member assigned to journeys
type Crew struct {
	ID        int    `json:"id" db:"id"`
	FirstName string `json:"first_name" db:"first_name"`
	LastName  string `json:"last_name" db:"last_name"`
}

// FullName returns the crew member's full name
func (c *Crew) FullName() string {
	return c.FirstName + " " + c.LastName
}

// CrewResponse is the API view of a crew member including the computed full name.
type CrewResponse struct {
	ID        int    `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	FullName  string `json:"full_name"`
}

// Response builds the API view of a crew member
func (c *Crew) Response() CrewResponse {
	return CrewResponse{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		FullName:  c.FullName(),
	}
}

// CrewCreateRequest represents the data needed to create a new crew member
type CrewCreateRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
}

// Validate validates crew creation data
func (req *CrewCreateRequest) Validate() error {
	if strings.TrimSpace(req.FirstName) == "" {
		return errors.New("first name is required")
	}

	if strings.TrimSpace(req.LastName) == "" {
		return errors.New("last name is required")
	}

	if len(req.FirstName) > 255 || len(req.LastName) > 255 {
		return errors.New("name must be less than 255 characters")
	}

	return nil
}
