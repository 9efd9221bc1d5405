package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"train-booking-platform/internal/config"
	"train-booking-platform/internal/database"
	"train-booking-platform/internal/handlers"
	"train-booking-platform/internal/middleware"
	"train-booking-platform/internal/repositories"
	"train-booking-platform/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewConnection(database.Config{Path: cfg.Database.Path})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}
	log.Println("Database ready")

	// Repositories
	userRepo := repositories.NewUserRepository(db.DB)
	stationRepo := repositories.NewStationRepository(db.DB)
	routeRepo := repositories.NewRouteRepository(db.DB)
	crewRepo := repositories.NewCrewRepository(db.DB)
	trainRepo := repositories.NewTrainRepository(db.DB)
	journeyRepo := repositories.NewJourneyRepository(db.DB)
	ticketRepo := repositories.NewTicketRepository(db.DB)
	orderRepo := repositories.NewOrderRepository(db.DB)

	// Services
	authService := services.NewAuthService(userRepo, cfg.JWT.Secret, time.Duration(cfg.JWT.TTLHours)*time.Hour)
	journeyService := services.NewJourneyService(journeyRepo)
	allocator := services.NewTicketAllocator(journeyRepo, ticketRepo)
	orderService := services.NewOrderService(allocator, orderRepo)

	// HTTP layer
	authMiddleware := middleware.NewAuthMiddleware(authService)
	router := handlers.NewRouter(&handlers.Handlers{
		Auth:     handlers.NewAuthHandler(authService),
		Stations: handlers.NewStationHandler(stationRepo),
		Routes:   handlers.NewRouteHandler(routeRepo),
		Crews:    handlers.NewCrewHandler(crewRepo),
		Trains:   handlers.NewTrainHandler(trainRepo),
		Journeys: handlers.NewJourneyHandler(journeyService),
		Orders:   handlers.NewOrderHandler(orderService),
		Tickets:  handlers.NewTicketHandler(ticketRepo),
	}, authMiddleware)

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	log.Printf("Server listening on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatal("Server failed:", err)
	}
}
