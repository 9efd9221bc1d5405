package models

import (
	"errors"
	"fmt"
)

// Common errors used throughout the application
var (
	ErrStationNotFound   = errors.New("station not found")
	ErrRouteNotFound     = errors.New("route not found")
	ErrCrewNotFound      = errors.New("crew member not found")
	ErrTrainTypeNotFound = errors.New("train type not found")
	ErrTrainNotFound     = errors.New("train not found")
	ErrJourneyNotFound   = errors.New("journey not found")
	ErrOrderNotFound     = errors.New("order not found")
	ErrTicketNotFound    = errors.New("ticket not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrUnauthorized      = errors.New("unauthorized access")
	ErrInvalidInput      = errors.New("invalid input")
	ErrDuplicateEntry    = errors.New("duplicate entry")

	// ErrEmptyOrder is returned when an order is submitted with no tickets.
	ErrEmptyOrder = errors.New("order must contain at least one ticket")

	// ErrStorageUnavailable signals a transient storage failure. The request
	// may be retried with backoff; it is never converted into a partial result.
	ErrStorageUnavailable = errors.New("storage temporarily unavailable")
)

// OutOfRangeError reports a cargo or seat number outside the physical
// layout of the train assigned to a journey.
type OutOfRangeError struct {
	Field string // "cargo" or "seat"
	Value int
	Bound int // valid range is [1, Bound]
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s number %d must be in available range [1, %d]", e.Field, e.Value, e.Bound)
}

// SeatTakenError reports that a (cargo, seat) pair is already ticketed on a
// journey. It can surface during pre-flight validation or, for a race lost
// against a concurrent order, when the storage layer rejects the commit.
type SeatTakenError struct {
	JourneyID int
	Cargo     int
	Seat      int
}

func (e *SeatTakenError) Error() string {
	return fmt.Sprintf("seat %d in cargo %d is already taken on journey %d", e.Seat, e.Cargo, e.JourneyID)
}

// TicketRequestError tags an allocation or storage error with the position
// of the failing ticket request in the submitted batch, so the client can
// correct that entry and resubmit.
type TicketRequestError struct {
	Index int
	Err   error
}

func (e *TicketRequestError) Error() string {
	return fmt.Sprintf("ticket request %d: %v", e.Index, e.Err)
}

func (e *TicketRequestError) Unwrap() error { return e.Err }
