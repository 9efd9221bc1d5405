package services

import (
	"errors"

	"train-booking-platform/internal/models"
)

// OrderRepository interface for order data operations
type OrderRepository interface {
	CreateWithTickets(userID int, drafts []models.TicketDraft) (*models.Order, error)
	GetByID(id int) (*models.Order, error)
	GetByUser(userID, limit, offset int) ([]*models.Order, int, error)
}

// OrderService accepts a batch of ticket requests for one order, validates
// each through the allocator, and commits the whole batch atomically. No
// partial order is ever persisted.
type OrderService struct {
	allocator *TicketAllocator
	orderRepo OrderRepository
}

// NewOrderService creates a new order service
func NewOrderService(allocator *TicketAllocator, orderRepo OrderRepository) *OrderService {
	return &OrderService{
		allocator: allocator,
		orderRepo: orderRepo,
	}
}

// CreateOrder validates every ticket request in input order and persists the
// order with its tickets in a single transaction. The first failing request
// aborts the whole batch, and its error is tagged with the batch position.
// On success the returned order's tickets are sorted by (cargo, seat).
func (s *OrderService) CreateOrder(userID int, requests []models.TicketRequest) (*models.Order, error) {
	if len(requests) == 0 {
		return nil, models.ErrEmptyOrder
	}

	drafts := make([]models.TicketDraft, len(requests))
	for i, req := range requests {
		draft, err := s.allocator.Allocate(req.JourneyID, req.Cargo, req.Seat)
		if err != nil {
			return nil, &models.TicketRequestError{Index: i, Err: err}
		}
		drafts[i] = *draft
	}

	// The repository re-tags commit-time seat conflicts with their batch
	// index, so losses against concurrent writers surface the same way as
	// pre-flight failures.
	order, err := s.orderRepo.CreateWithTickets(userID, drafts)
	if err != nil {
		return nil, err
	}

	return order, nil
}

// GetOrder retrieves an order owned by the given user
func (s *OrderService) GetOrder(userID, orderID int) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}

	// Orders are owner-scoped; leak no existence information to other users.
	if order.UserID != userID {
		return nil, models.ErrOrderNotFound
	}

	return order, nil
}

// ListOrders retrieves a page of the user's own orders
func (s *OrderService) ListOrders(userID, page, pageSize int) ([]*models.Order, int, error) {
	if page < 1 {
		page = 1
	}

	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	offset := (page - 1) * pageSize
	orders, total, err := s.orderRepo.GetByUser(userID, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}

	if orders == nil {
		orders = []*models.Order{}
	}

	return orders, total, nil
}

// Pagination bounds for order listings
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// IsRetryable reports whether an order creation failure is transient and
// safe to retry unchanged. Seat conflicts are not retryable as-is: the
// caller must pick a different seat.
func IsRetryable(err error) bool {
	return errors.Is(err, models.ErrStorageUnavailable)
}
