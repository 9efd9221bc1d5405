package services

import (
	"train-booking-platform/internal/models"
)

// JourneyResolver resolves the train currently assigned to a journey
type JourneyResolver interface {
	GetTrainForJourney(journeyID int) (*models.Train, error)
}

// TicketChecker reads committed tickets for pre-flight seat checks
type TicketChecker interface {
	SeatTaken(journeyID, cargo, seat int) (bool, error)
}

// TicketAllocator validates a requested (cargo, seat) against a journey's
// train capacity and against currently-taken seats on that journey. It
// produces drafts and never persists: the pre-flight seat check here is
// advisory, and is re-verified by the storage-level unique constraint when
// the order transaction commits.
type TicketAllocator struct {
	journeys JourneyResolver
	tickets  TicketChecker
}

// NewTicketAllocator creates a new ticket allocator
func NewTicketAllocator(journeys JourneyResolver, tickets TicketChecker) *TicketAllocator {
	return &TicketAllocator{
		journeys: journeys,
		tickets:  tickets,
	}
}

// Allocate validates one requested seat and returns a draft ready for
// persistence. The journey's train is resolved at call time, never cached,
// so a train swap shifts capacity constraints immediately. Error precedence:
// invalid references, then capacity range, then the advisory taken check.
func (a *TicketAllocator) Allocate(journeyID, cargo, seat int) (*models.TicketDraft, error) {
	if journeyID <= 0 {
		return nil, models.ErrInvalidInput
	}

	train, err := a.journeys.GetTrainForJourney(journeyID)
	if err != nil {
		return nil, err
	}

	if err := train.ValidateSeat(cargo, seat); err != nil {
		return nil, err
	}

	taken, err := a.tickets.SeatTaken(journeyID, cargo, seat)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, &models.SeatTakenError{JourneyID: journeyID, Cargo: cargo, Seat: seat}
	}

	return &models.TicketDraft{JourneyID: journeyID, Cargo: cargo, Seat: seat}, nil
}
