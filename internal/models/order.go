package models

import "time"

// Order is an atomic purchase grouping one or more tickets under one user.
// Orders and their tickets are created together and never updated afterward.
type Order struct {
	ID        int       `json:"id" db:"id"`
	UserID    int       `json:"user_id" db:"user_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	Tickets   []Ticket  `json:"tickets"`
}

// Ticket is a claim on one (cargo, seat) pair for one journey. For a fixed
// journey the pair is unique across all tickets ever created for it.
type Ticket struct {
	ID        int `json:"id" db:"id"`
	JourneyID int `json:"journey" db:"journey_id"`
	OrderID   int `json:"order" db:"order_id"`
	Cargo     int `json:"cargo" db:"cargo"`
	Seat      int `json:"seat" db:"seat"`
}

// TicketRequest is one requested seat within an order submission. Cargo and
// seat are 1-indexed, so `required` also rejects missing or zero values.
type TicketRequest struct {
	JourneyID int `json:"journey_id" binding:"required"`
	Cargo     int `json:"cargo" binding:"required"`
	Seat      int `json:"seat" binding:"required"`
}

// TicketDraft is a validated ticket ready for persistence. Drafts are
// produced by the allocator and committed in a single transaction; they
// carry no identity until the storage layer assigns one.
type TicketDraft struct {
	JourneyID int
	Cargo     int
	Seat      int
}

// OrderCreateRequest represents an order submission
type OrderCreateRequest struct {
	Tickets []TicketRequest `json:"tickets" binding:"required"`
}
