package handlers

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"train-booking-platform/internal/database"
	"train-booking-platform/internal/middleware"
	"train-booking-platform/internal/repositories"
	"train-booking-platform/internal/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// testServer runs the full HTTP stack against a throwaway database,
// wired the same way the server binary wires it.
type testServer struct {
	t      *testing.T
	router *gin.Engine
	db     *sql.DB
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	db, err := database.NewConnection(database.Config{
		Path: filepath.Join(t.TempDir(), "test.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.RunMigrations())

	userRepo := repositories.NewUserRepository(db.DB)
	stationRepo := repositories.NewStationRepository(db.DB)
	routeRepo := repositories.NewRouteRepository(db.DB)
	crewRepo := repositories.NewCrewRepository(db.DB)
	trainRepo := repositories.NewTrainRepository(db.DB)
	journeyRepo := repositories.NewJourneyRepository(db.DB)
	ticketRepo := repositories.NewTicketRepository(db.DB)
	orderRepo := repositories.NewOrderRepository(db.DB)

	authService := services.NewAuthService(userRepo, "test-secret", time.Hour)
	journeyService := services.NewJourneyService(journeyRepo)
	allocator := services.NewTicketAllocator(journeyRepo, ticketRepo)
	orderService := services.NewOrderService(allocator, orderRepo)

	router := NewRouter(&Handlers{
		Auth:     NewAuthHandler(authService),
		Stations: NewStationHandler(stationRepo),
		Routes:   NewRouteHandler(routeRepo),
		Crews:    NewCrewHandler(crewRepo),
		Trains:   NewTrainHandler(trainRepo),
		Journeys: NewJourneyHandler(journeyService),
		Orders:   NewOrderHandler(orderService),
		Tickets:  NewTicketHandler(ticketRepo),
	}, middleware.NewAuthMiddleware(authService))

	return &testServer{t: t, router: router, db: db.DB}
}

func (s *testServer) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	s.t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(s.t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) decode(rec *httptest.ResponseRecorder, target interface{}) {
	s.t.Helper()
	require.NoError(s.t, json.Unmarshal(rec.Body.Bytes(), target))
}

// registerAndLogin creates a regular account and returns its bearer token.
func (s *testServer) registerAndLogin(email string) string {
	s.t.Helper()

	rec := s.do(http.MethodPost, "/api/users/register", "", gin.H{
		"email":      email,
		"password":   "super secret",
		"first_name": "Test",
		"last_name":  "User",
	})
	require.Equal(s.t, http.StatusCreated, rec.Code, rec.Body.String())

	return s.login(email)
}

func (s *testServer) login(email string) string {
	s.t.Helper()

	rec := s.do(http.MethodPost, "/api/users/login", "", gin.H{
		"email":    email,
		"password": "super secret",
	})
	require.Equal(s.t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	s.decode(rec, &resp)
	require.NotEmpty(s.t, resp.Token)
	return resp.Token
}

// adminToken creates an account, grants it admin directly in storage and
// returns its bearer token. Registration itself never grants admin.
func (s *testServer) adminToken(email string) string {
	s.t.Helper()

	token := s.registerAndLogin(email)
	_, err := s.db.Exec(`UPDATE users SET is_admin = 1 WHERE email = $1`, email)
	require.NoError(s.t, err)
	return token
}

// seedJourney builds the catalog chain through the API and returns the
// journey ID.
func (s *testServer) seedJourney(adminToken string, cargoNum, placesInCargo int) int {
	s.t.Helper()

	source := s.createResource(adminToken, "/api/stations", gin.H{
		"name": "Central", "latitude": 50.45, "longitude": 30.52,
	})
	destination := s.createResource(adminToken, "/api/stations", gin.H{
		"name": "Harbor", "latitude": 46.48, "longitude": 30.72,
	})
	route := s.createResource(adminToken, "/api/routes", gin.H{
		"source": source, "destination": destination, "distance": 440,
	})
	trainType := s.createResource(adminToken, "/api/train-types", gin.H{
		"name": "Express",
	})
	train := s.createResource(adminToken, "/api/trains", gin.H{
		"name":            "Night Express",
		"cargo_num":       cargoNum,
		"places_in_cargo": placesInCargo,
		"train_type_id":   trainType,
	})

	departure := time.Date(2025, 11, 13, 8, 0, 0, 0, time.UTC)
	return s.createResource(adminToken, "/api/journeys", gin.H{
		"route":          route,
		"train":          train,
		"departure_time": departure,
		"arrival_time":   departure.Add(6 * time.Hour),
	})
}

func (s *testServer) createResource(token, path string, body gin.H) int {
	s.t.Helper()

	rec := s.do(http.MethodPost, path, token, body)
	require.Equal(s.t, http.StatusCreated, rec.Code, "POST %s: %s", path, rec.Body.String())

	var resp struct {
		ID int `json:"id"`
	}
	s.decode(rec, &resp)
	require.NotZero(s.t, resp.ID)
	return resp.ID
}
