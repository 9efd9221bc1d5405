package repositories

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"train-booking-platform/internal/models"
)

func TestOrderRepository_CreateWithTickets(t *testing.T) {
	db := setupTestDB(t)
	journeyID := createTestJourney(t, db, 3, 10)
	user := createTestUser(t, db, "buyer@example.com")
	repo := NewOrderRepository(db)

	order, err := repo.CreateWithTickets(user.ID, []models.TicketDraft{
		{JourneyID: journeyID, Cargo: 2, Seat: 5},
		{JourneyID: journeyID, Cargo: 1, Seat: 1},
	})
	require.NoError(t, err)

	assert.Equal(t, user.ID, order.UserID)
	assert.False(t, order.CreatedAt.IsZero())

	// Tickets come back sorted by (cargo, seat) regardless of input order.
	require.Len(t, order.Tickets, 2)
	assert.Equal(t, 1, order.Tickets[0].Cargo)
	assert.Equal(t, 1, order.Tickets[0].Seat)
	assert.Equal(t, 2, order.Tickets[1].Cargo)
	assert.Equal(t, 5, order.Tickets[1].Seat)
	for _, ticket := range order.Tickets {
		assert.Equal(t, order.ID, ticket.OrderID)
		assert.Equal(t, journeyID, ticket.JourneyID)
	}
}

func TestOrderRepository_CreateWithTickets_EmptyDrafts(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "buyer@example.com")

	_, err := NewOrderRepository(db).CreateWithTickets(user.ID, nil)
	assert.ErrorIs(t, err, models.ErrEmptyOrder)
}

func TestOrderRepository_CreateWithTickets_SeatConflictRollsBack(t *testing.T) {
	db := setupTestDB(t)
	journeyID := createTestJourney(t, db, 2, 4)
	user := createTestUser(t, db, "buyer@example.com")
	repo := NewOrderRepository(db)

	_, err := repo.CreateWithTickets(user.ID, []models.TicketDraft{
		{JourneyID: journeyID, Cargo: 1, Seat: 1},
	})
	require.NoError(t, err)

	// Second batch: first draft is fine, second collides with the committed
	// seat. The whole batch must roll back and the error must carry index 1.
	_, err = repo.CreateWithTickets(user.ID, []models.TicketDraft{
		{JourneyID: journeyID, Cargo: 2, Seat: 2},
		{JourneyID: journeyID, Cargo: 1, Seat: 1},
	})
	require.Error(t, err)

	var reqErr *models.TicketRequestError
	require.True(t, errors.As(err, &reqErr))
	assert.Equal(t, 1, reqErr.Index)

	var seatTaken *models.SeatTakenError
	require.True(t, errors.As(err, &seatTaken))
	assert.Equal(t, 1, seatTaken.Cargo)
	assert.Equal(t, 1, seatTaken.Seat)

	var orderCount, ticketCount int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM orders`).Scan(&orderCount))
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM tickets`).Scan(&ticketCount))
	assert.Equal(t, 1, orderCount, "failed order must not be persisted")
	assert.Equal(t, 1, ticketCount, "no ticket of the failed batch may survive")
}

func TestOrderRepository_ConcurrentSeatClaim(t *testing.T) {
	db := setupTestDB(t)
	journeyID := createTestJourney(t, db, 1, 1)
	first := createTestUser(t, db, "first@example.com")
	second := createTestUser(t, db, "second@example.com")
	repo := NewOrderRepository(db)

	results := make([]error, 2)
	var wg sync.WaitGroup
	for i, userID := range []int{first.ID, second.ID} {
		wg.Add(1)
		go func(slot, uid int) {
			defer wg.Done()
			_, results[slot] = repo.CreateWithTickets(uid, []models.TicketDraft{
				{JourneyID: journeyID, Cargo: 1, Seat: 1},
			})
		}(i, userID)
	}
	wg.Wait()

	var successes, seatConflicts int
	for _, err := range results {
		if err == nil {
			successes++
			continue
		}
		var seatTaken *models.SeatTakenError
		if errors.As(err, &seatTaken) {
			seatConflicts++
		}
	}

	assert.Equal(t, 1, successes, "exactly one concurrent claim must win")
	assert.Equal(t, 1, seatConflicts, "the losing claim must surface as seat taken")

	var ticketCount int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM tickets WHERE journey_id = $1`, journeyID).Scan(&ticketCount))
	assert.Equal(t, 1, ticketCount)
}

func TestOrderRepository_GetByUser(t *testing.T) {
	db := setupTestDB(t)
	journeyID := createTestJourney(t, db, 3, 30)
	owner := createTestUser(t, db, "owner@example.com")
	other := createTestUser(t, db, "other@example.com")
	repo := NewOrderRepository(db)

	for seat := 1; seat <= 3; seat++ {
		_, err := repo.CreateWithTickets(owner.ID, []models.TicketDraft{
			{JourneyID: journeyID, Cargo: 1, Seat: seat},
		})
		require.NoError(t, err)
	}
	_, err := repo.CreateWithTickets(other.ID, []models.TicketDraft{
		{JourneyID: journeyID, Cargo: 2, Seat: 1},
	})
	require.NoError(t, err)

	orders, total, err := repo.GetByUser(owner.ID, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, orders, 2)
	for _, order := range orders {
		assert.Equal(t, owner.ID, order.UserID)
		assert.Len(t, order.Tickets, 1)
	}

	// Second page holds the remaining order.
	orders, total, err = repo.GetByUser(owner.ID, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Len(t, orders, 1)
}

func TestOrderRepository_GetByID(t *testing.T) {
	db := setupTestDB(t)
	journeyID := createTestJourney(t, db, 2, 2)
	user := createTestUser(t, db, "buyer@example.com")
	repo := NewOrderRepository(db)

	created, err := repo.CreateWithTickets(user.ID, []models.TicketDraft{
		{JourneyID: journeyID, Cargo: 1, Seat: 2},
	})
	require.NoError(t, err)

	got, err := repo.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	require.Len(t, got.Tickets, 1)
	assert.Equal(t, 2, got.Tickets[0].Seat)

	_, err = repo.GetByID(9999)
	assert.ErrorIs(t, err, models.ErrOrderNotFound)
}
