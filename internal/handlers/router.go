package handlers

import (
	"github.com/gin-gonic/gin"

	"train-booking-platform/internal/middleware"
)

// Handlers groups every HTTP handler the API exposes
type Handlers struct {
	Auth     *AuthHandler
	Stations *StationHandler
	Routes   *RouteHandler
	Crews    *CrewHandler
	Trains   *TrainHandler
	Journeys *JourneyHandler
	Orders   *OrderHandler
	Tickets  *TicketHandler
}

// NewRouter wires all routes. Catalog records are readable by any
// authenticated user and writable by administrators only; orders require
// authentication and are owner-scoped.
func NewRouter(h *Handlers, auth *middleware.AuthMiddleware) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORS())

	api := router.Group("/api")

	api.POST("/users/register", h.Auth.Register)
	api.POST("/users/login", h.Auth.Login)
	api.GET("/users/me", auth.RequireAuth(), h.Auth.Me)

	catalog := api.Group("", auth.RequireAuth(), auth.AdminOrReadOnly())
	{
		catalog.GET("/stations", h.Stations.List)
		catalog.POST("/stations", h.Stations.Create)

		catalog.GET("/routes", h.Routes.List)
		catalog.GET("/routes/:id", h.Routes.Get)
		catalog.POST("/routes", h.Routes.Create)

		catalog.GET("/crews", h.Crews.List)
		catalog.POST("/crews", h.Crews.Create)

		catalog.GET("/train-types", h.Trains.ListTypes)
		catalog.POST("/train-types", h.Trains.CreateType)

		catalog.GET("/trains", h.Trains.List)
		catalog.GET("/trains/:id", h.Trains.Get)
		catalog.POST("/trains", h.Trains.Create)

		catalog.GET("/journeys", h.Journeys.List)
		catalog.GET("/journeys/:id", h.Journeys.Get)
		catalog.POST("/journeys", h.Journeys.Create)

		catalog.GET("/tickets", h.Tickets.List)
		catalog.GET("/tickets/:id", h.Tickets.Get)
	}

	orders := api.Group("/orders", auth.RequireAuth())
	{
		orders.POST("", h.Orders.Create)
		orders.GET("", h.Orders.List)
		orders.GET("/:id", h.Orders.Get)
	}

	return router
}
