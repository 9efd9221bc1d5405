package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"train-booking-platform/internal/models"
	"train-booking-platform/internal/repositories"
)

// TicketHandler serves read-only ticket listing endpoints
type TicketHandler struct {
	ticketRepo *repositories.TicketRepository
}

// NewTicketHandler creates a new ticket handler
func NewTicketHandler(ticketRepo *repositories.TicketRepository) *TicketHandler {
	return &TicketHandler{ticketRepo: ticketRepo}
}

// List handles GET /api/tickets
func (h *TicketHandler) List(c *gin.Context) {
	tickets, err := h.ticketRepo.List()
	if err != nil {
		respondError(c, err)
		return
	}

	if tickets == nil {
		tickets = []*models.Ticket{}
	}
	c.JSON(http.StatusOK, tickets)
}

// Get handles GET /api/tickets/:id
func (h *TicketHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	ticket, err := h.ticketRepo.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ticket)
}
