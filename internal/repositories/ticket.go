package repositories

import (
	"database/sql"
	"fmt"

	"train-booking-platform/internal/models"
)

// TicketRepository handles read access to committed tickets. Tickets are
// only ever written through OrderRepository.CreateWithTickets.
type TicketRepository struct {
	db *sql.DB
}

// NewTicketRepository creates a new ticket repository
func NewTicketRepository(db *sql.DB) *TicketRepository {
	return &TicketRepository{db: db}
}

// SeatTaken reports whether a committed ticket already holds (cargo, seat)
// on the journey. This is the advisory pre-flight check: it is re-verified
// by the unique constraint when the order commits.
func (r *TicketRepository) SeatTaken(journeyID, cargo, seat int) (bool, error) {
	var exists bool
	err := r.db.QueryRow(
		`SELECT EXISTS(SELECT 1 FROM tickets WHERE journey_id = $1 AND cargo = $2 AND seat = $3)`,
		journeyID, cargo, seat,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check seat: %w", translateStorageErr(err))
	}

	return exists, nil
}

// GetByID retrieves a ticket by ID
func (r *TicketRepository) GetByID(id int) (*models.Ticket, error) {
	query := `SELECT id, journey_id, order_id, cargo, seat FROM tickets WHERE id = $1`

	ticket := &models.Ticket{}
	err := r.db.QueryRow(query, id).Scan(
		&ticket.ID,
		&ticket.JourneyID,
		&ticket.OrderID,
		&ticket.Cargo,
		&ticket.Seat,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrTicketNotFound
		}
		return nil, fmt.Errorf("failed to get ticket: %w", translateStorageErr(err))
	}

	return ticket, nil
}

// List retrieves all tickets ordered by (cargo, seat)
func (r *TicketRepository) List() ([]*models.Ticket, error) {
	rows, err := r.db.Query(`SELECT id, journey_id, order_id, cargo, seat FROM tickets ORDER BY cargo, seat`)
	if err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", translateStorageErr(err))
	}
	defer rows.Close()

	var tickets []*models.Ticket
	for rows.Next() {
		ticket := &models.Ticket{}
		if err := rows.Scan(&ticket.ID, &ticket.JourneyID, &ticket.OrderID, &ticket.Cargo, &ticket.Seat); err != nil {
			return nil, fmt.Errorf("failed to scan ticket: %w", err)
		}
		tickets = append(tickets, ticket)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tickets: %w", err)
	}

	return tickets, nil
}
