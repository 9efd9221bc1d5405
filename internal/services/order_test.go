package services

import (
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"train-booking-platform/internal/models"
)

type fakeOrderRepository struct {
	nextID  int
	orders  map[int]*models.Order
	lastErr error
}

func newFakeOrderRepository() *fakeOrderRepository {
	return &fakeOrderRepository{nextID: 1, orders: map[int]*models.Order{}}
}

func (f *fakeOrderRepository) CreateWithTickets(userID int, drafts []models.TicketDraft) (*models.Order, error) {
	if f.lastErr != nil {
		return nil, f.lastErr
	}

	order := &models.Order{ID: f.nextID, UserID: userID, CreatedAt: time.Now()}
	f.nextID++
	for i, draft := range drafts {
		order.Tickets = append(order.Tickets, models.Ticket{
			ID:        order.ID*100 + i,
			JourneyID: draft.JourneyID,
			OrderID:   order.ID,
			Cargo:     draft.Cargo,
			Seat:      draft.Seat,
		})
	}
	sort.Slice(order.Tickets, func(i, j int) bool {
		if order.Tickets[i].Cargo != order.Tickets[j].Cargo {
			return order.Tickets[i].Cargo < order.Tickets[j].Cargo
		}
		return order.Tickets[i].Seat < order.Tickets[j].Seat
	})
	f.orders[order.ID] = order
	return order, nil
}

func (f *fakeOrderRepository) GetByID(id int) (*models.Order, error) {
	order, ok := f.orders[id]
	if !ok {
		return nil, models.ErrOrderNotFound
	}
	return order, nil
}

func (f *fakeOrderRepository) GetByUser(userID, limit, offset int) ([]*models.Order, int, error) {
	var owned []*models.Order
	for _, order := range f.orders {
		if order.UserID == userID {
			owned = append(owned, order)
		}
	}
	sort.Slice(owned, func(i, j int) bool { return owned[i].ID < owned[j].ID })

	total := len(owned)
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return owned[offset:end], total, nil
}

func newTestOrderService(train *models.Train, repo *fakeOrderRepository) *OrderService {
	return NewOrderService(newTestAllocator(train, nil), repo)
}

func TestCreateOrder(t *testing.T) {
	repo := newFakeOrderRepository()
	svc := newTestOrderService(&models.Train{CargoNum: 3, PlacesInCargo: 10}, repo)

	order, err := svc.CreateOrder(7, []models.TicketRequest{
		{JourneyID: 1, Cargo: 2, Seat: 5},
		{JourneyID: 1, Cargo: 1, Seat: 1},
	})
	require.NoError(t, err)

	assert.Equal(t, 7, order.UserID)
	require.Len(t, order.Tickets, 2)
	assert.Equal(t, 1, order.Tickets[0].Cargo)
	assert.Equal(t, 2, order.Tickets[1].Cargo)
}

func TestCreateOrder_Empty(t *testing.T) {
	repo := newFakeOrderRepository()
	svc := newTestOrderService(&models.Train{CargoNum: 1, PlacesInCargo: 1}, repo)

	_, err := svc.CreateOrder(7, nil)
	assert.ErrorIs(t, err, models.ErrEmptyOrder)
	assert.Empty(t, repo.orders)
}

func TestCreateOrder_SecondRequestInvalid(t *testing.T) {
	repo := newFakeOrderRepository()
	svc := newTestOrderService(&models.Train{CargoNum: 2, PlacesInCargo: 4}, repo)

	_, err := svc.CreateOrder(7, []models.TicketRequest{
		{JourneyID: 1, Cargo: 1, Seat: 1},
		{JourneyID: 1, Cargo: 9, Seat: 1},
	})
	require.Error(t, err)

	var reqErr *models.TicketRequestError
	require.True(t, errors.As(err, &reqErr))
	assert.Equal(t, 1, reqErr.Index)

	var outOfRange *models.OutOfRangeError
	assert.True(t, errors.As(err, &outOfRange))

	// Nothing reaches storage when any request fails validation.
	assert.Empty(t, repo.orders)
}

func TestCreateOrder_StorageFailurePassesThrough(t *testing.T) {
	repo := newFakeOrderRepository()
	repo.lastErr = models.ErrStorageUnavailable
	svc := newTestOrderService(&models.Train{CargoNum: 1, PlacesInCargo: 2}, repo)

	_, err := svc.CreateOrder(7, []models.TicketRequest{{JourneyID: 1, Cargo: 1, Seat: 1}})
	assert.ErrorIs(t, err, models.ErrStorageUnavailable)
	assert.True(t, IsRetryable(err))
}

func TestGetOrder_OwnerScoped(t *testing.T) {
	repo := newFakeOrderRepository()
	svc := newTestOrderService(&models.Train{CargoNum: 1, PlacesInCargo: 5}, repo)

	order, err := svc.CreateOrder(7, []models.TicketRequest{{JourneyID: 1, Cargo: 1, Seat: 1}})
	require.NoError(t, err)

	got, err := svc.GetOrder(7, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)

	// Another user sees not-found, not forbidden.
	_, err = svc.GetOrder(8, order.ID)
	assert.ErrorIs(t, err, models.ErrOrderNotFound)
}

func TestListOrders_Pagination(t *testing.T) {
	repo := newFakeOrderRepository()
	svc := newTestOrderService(&models.Train{CargoNum: 1, PlacesInCargo: 30}, repo)

	for seat := 1; seat <= 3; seat++ {
		_, err := svc.CreateOrder(7, []models.TicketRequest{{JourneyID: 1, Cargo: 1, Seat: seat}})
		require.NoError(t, err)
	}

	orders, total, err := svc.ListOrders(7, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Len(t, orders, 2)

	orders, total, err = svc.ListOrders(7, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Len(t, orders, 1)

	// Out-of-range page values fall back to defaults.
	orders, _, err = svc.ListOrders(7, 0, -5)
	require.NoError(t, err)
	assert.Len(t, orders, 3)

	orders, _, err = svc.ListOrders(9, 1, 10)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, IsRetryable(models.ErrStorageUnavailable))
	assert.False(t, IsRetryable(&models.SeatTakenError{JourneyID: 1, Cargo: 1, Seat: 1}))
	assert.False(t, IsRetryable(models.ErrEmptyOrder))
}
