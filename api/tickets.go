package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/Mehra2004/airline-booking/internal/domain"
	"github.com/Mehra2004/airline-booking/internal/service/booking"
	"github.com/gin-gonic/gin"
)

type TicketHandler struct {
	service booking.BookingUseCase
}

type bookTicketRequest struct {
	PassengerID int64  `json:"passenger_id" binding:"required"`
	FlightID    int64  `json:"flight_id" binding:"required"`
	SeatNo      string `json:"seat_no" binding:"required"`
}

type bookTicketResponse struct {
	TicketID       int64  `json:"ticket_id"`
	FlightID       int64  `json:"flight_id"`
	SeatNo         string `json:"seat_no"`
	Status         string `json:"status"`
	RemainingSeats int    `json:"remaining_seats"`
	Message        string `json:"message"`
}

func NewTicketHandler(service booking.BookingUseCase) *TicketHandler {
	return &TicketHandler{service: service}
}

func (h *TicketHandler) Register(router *gin.RouterGroup) {
	router.POST("", h.book)
	router.DELETE("/:id", h.cancel)
}

func (h *TicketHandler) RegisterAdmin(router *gin.RouterGroup) {
	router.GET("", h.listAll)
	router.DELETE("/:id", h.delete)
}

func (h *TicketHandler) book(c *gin.Context) {
	var req bookTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Seat numbers are stored uppercase so "12a" and "12A" collide.
	seatNo := strings.ToUpper(strings.TrimSpace(req.SeatNo))

	ticket, remaining, err := h.service.BookFlight(c.Request.Context(), booking.BookFlightInput{
		PassengerID: req.PassengerID,
		FlightID:    req.FlightID,
		SeatNo:      seatNo,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, bookTicketResponse{
		TicketID:       ticket.ID,
		FlightID:       ticket.FlightID,
		SeatNo:         ticket.SeatNo,
		Status:         string(ticket.Status),
		RemainingSeats: remaining,
		Message:        fmt.Sprintf("Booking successful! %d seats remaining. Please complete payment to confirm.", remaining),
	})
}

func (h *TicketHandler) cancel(c *gin.Context) {
	ticketID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ticket id"})
		return
	}
	passengerID, err := strconv.ParseInt(c.Query("passenger_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "passenger_id is required"})
		return
	}

	outcome, err := h.service.CancelTicket(c.Request.Context(), ticketID, passengerID)
	if err != nil {
		respondError(c, err)
		return
	}

	switch outcome {
	case domain.CancelNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": "ticket not found"})
	case domain.CancelAlreadyCancelled:
		c.JSON(http.StatusConflict, gin.H{"error": "ticket already cancelled"})
	default:
		c.JSON(http.StatusOK, gin.H{"ticket_id": ticketID, "status": string(domain.TicketStatusCancelled)})
	}
}

func (h *TicketHandler) listAll(c *gin.Context) {
	tickets, err := h.service.AllTickets(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tickets)
}

func (h *TicketHandler) delete(c *gin.Context) {
	ticketID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ticket id"})
		return
	}
	rows, err := h.service.DeleteTicket(c.Request.Context(), ticketID)
	if err != nil {
		respondError(c, err)
		return
	}
	if rows == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "ticket not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": rows})
}
