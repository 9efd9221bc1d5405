package repositories

import (
	"database/sql"
	"fmt"
	"sort"
	"time"

	"train-booking-platform/internal/models"
)

// OrderRepository handles order data operations. An order and its tickets
// form a single atomic unit: they are committed together or not at all.
type OrderRepository struct {
	db *sql.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// CreateWithTickets persists an order and its ticket drafts in one
// transaction. Tickets are inserted in input order; a unique-constraint
// rejection means a concurrent writer committed the same seat between
// pre-flight validation and this commit, and surfaces as a SeatTakenError
// tagged with the failing request's position. On success the returned
// order carries its tickets sorted ascending by (cargo, seat).
func (r *OrderRepository) CreateWithTickets(userID int, drafts []models.TicketDraft) (*models.Order, error) {
	if len(drafts) == 0 {
		return nil, models.ErrEmptyOrder
	}

	tx, err := r.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", translateStorageErr(err))
	}
	defer tx.Rollback()

	order := &models.Order{}
	err = tx.QueryRow(
		`INSERT INTO orders (user_id, created_at) VALUES ($1, $2) RETURNING id, user_id, created_at`,
		userID, time.Now().UTC(),
	).Scan(&order.ID, &order.UserID, &order.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", translateStorageErr(err))
	}

	for i, draft := range drafts {
		ticket := models.Ticket{}
		err = tx.QueryRow(
			`INSERT INTO tickets (journey_id, order_id, cargo, seat)
			 VALUES ($1, $2, $3, $4)
			 RETURNING id, journey_id, order_id, cargo, seat`,
			draft.JourneyID, order.ID, draft.Cargo, draft.Seat,
		).Scan(&ticket.ID, &ticket.JourneyID, &ticket.OrderID, &ticket.Cargo, &ticket.Seat)
		if err != nil {
			if isUniqueViolation(err) {
				return nil, &models.TicketRequestError{
					Index: i,
					Err: &models.SeatTakenError{
						JourneyID: draft.JourneyID,
						Cargo:     draft.Cargo,
						Seat:      draft.Seat,
					},
				}
			}
			return nil, fmt.Errorf("failed to create ticket: %w", translateStorageErr(err))
		}
		order.Tickets = append(order.Tickets, ticket)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit order creation: %w", translateStorageErr(err))
	}

	sort.Slice(order.Tickets, func(i, j int) bool {
		if order.Tickets[i].Cargo != order.Tickets[j].Cargo {
			return order.Tickets[i].Cargo < order.Tickets[j].Cargo
		}
		return order.Tickets[i].Seat < order.Tickets[j].Seat
	})

	return order, nil
}

// GetByID retrieves an order with its tickets
func (r *OrderRepository) GetByID(id int) (*models.Order, error) {
	order := &models.Order{}
	err := r.db.QueryRow(
		`SELECT id, user_id, created_at FROM orders WHERE id = $1`, id,
	).Scan(&order.ID, &order.UserID, &order.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", translateStorageErr(err))
	}

	tickets, err := r.orderTickets(order.ID)
	if err != nil {
		return nil, err
	}
	order.Tickets = tickets

	return order, nil
}

// GetByUser retrieves a page of a user's orders, newest first, with tickets
// embedded. Returns the page and the total number of the user's orders.
func (r *OrderRepository) GetByUser(userID, limit, offset int) ([]*models.Order, int, error) {
	var total int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM orders WHERE user_id = $1`, userID).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", translateStorageErr(err))
	}

	rows, err := r.db.Query(
		`SELECT id, user_id, created_at
		 FROM orders
		 WHERE user_id = $1
		 ORDER BY created_at DESC, id DESC
		 LIMIT $2 OFFSET $3`,
		userID, limit, offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list orders: %w", translateStorageErr(err))
	}
	defer rows.Close()

	var orders []*models.Order
	for rows.Next() {
		order := &models.Order{}
		if err := rows.Scan(&order.ID, &order.UserID, &order.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, order)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating orders: %w", err)
	}

	for _, order := range orders {
		tickets, err := r.orderTickets(order.ID)
		if err != nil {
			return nil, 0, err
		}
		order.Tickets = tickets
	}

	return orders, total, nil
}

func (r *OrderRepository) orderTickets(orderID int) ([]models.Ticket, error) {
	rows, err := r.db.Query(
		`SELECT id, journey_id, order_id, cargo, seat
		 FROM tickets
		 WHERE order_id = $1
		 ORDER BY cargo, seat`,
		orderID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get order tickets: %w", translateStorageErr(err))
	}
	defer rows.Close()

	tickets := []models.Ticket{}
	for rows.Next() {
		ticket := models.Ticket{}
		if err := rows.Scan(&ticket.ID, &ticket.JourneyID, &ticket.OrderID, &ticket.Cargo, &ticket.Seat); err != nil {
			return nil, fmt.Errorf("failed to scan ticket: %w", err)
		}
		tickets = append(tickets, ticket)
	}

	return tickets, rows.Err()
}
