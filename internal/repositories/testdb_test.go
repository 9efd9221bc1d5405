package repositories

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"train-booking-platform/internal/database"
	"train-booking-platform/internal/models"
)

// setupTestDB opens a throwaway file-backed database with the full schema
// applied. A file (rather than :memory:) keeps the database shared across
// the pool's connections, which the concurrency tests depend on.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.NewConnection(database.Config{
		Path: filepath.Join(t.TempDir(), "test.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.RunMigrations())
	return db.DB
}

func createTestUser(t *testing.T, db *sql.DB, email string) *models.User {
	t.Helper()

	user, err := NewUserRepository(db).Create(email, "Test", "User", "$argon2id$v=19$m=65536,t=3,p=2$c2FsdA$aGFzaA", false)
	require.NoError(t, err)
	return user
}

// createTestJourney seeds the catalog chain (stations, route, train type,
// train, journey) and returns the journey ID.
func createTestJourney(t *testing.T, db *sql.DB, cargoNum, placesInCargo int) int {
	t.Helper()

	stationRepo := NewStationRepository(db)
	source, err := stationRepo.Create(&models.StationCreateRequest{Name: "Central", Latitude: 50.45, Longitude: 30.52})
	require.NoError(t, err)
	destination, err := stationRepo.Create(&models.StationCreateRequest{Name: "Harbor", Latitude: 46.48, Longitude: 30.72})
	require.NoError(t, err)

	route, err := NewRouteRepository(db).Create(&models.RouteCreateRequest{
		SourceID:      source.ID,
		DestinationID: destination.ID,
		Distance:      440,
	})
	require.NoError(t, err)

	trainRepo := NewTrainRepository(db)
	trainType, err := trainRepo.CreateTrainType(&models.TrainTypeCreateRequest{Name: "Express"})
	require.NoError(t, err)

	train, err := trainRepo.Create(&models.TrainCreateRequest{
		Name:          "Night Express",
		CargoNum:      cargoNum,
		PlacesInCargo: placesInCargo,
		TrainTypeID:   trainType.ID,
	})
	require.NoError(t, err)

	departure := time.Date(2025, 11, 13, 8, 0, 0, 0, time.UTC)
	journey, err := NewJourneyRepository(db).Create(&models.JourneyCreateRequest{
		RouteID:       route.ID,
		TrainID:       train.ID,
		DepartureTime: departure,
		ArrivalTime:   departure.Add(6 * time.Hour),
	})
	require.NoError(t, err)

	return journey.ID
}
