package api

import (
	"net/http"
	"strconv"

	"github.com/Mehra2004/airline-booking/internal/service/auth"
	"github.com/Mehra2004/airline-booking/internal/service/booking"
	"github.com/Mehra2004/airline-booking/internal/service/payment"
	"github.com/gin-gonic/gin"
)

// PassengerHandler serves the passenger-scoped views (their tickets, their
// payments) and the administrative passenger list/delete.
type PassengerHandler struct {
	auth     auth.AuthUseCase
	bookings booking.BookingUseCase
	payments payment.PaymentUseCase
}

func NewPassengerHandler(authSvc auth.AuthUseCase, bookings booking.BookingUseCase, payments payment.PaymentUseCase) *PassengerHandler {
	return &PassengerHandler{auth: authSvc, bookings: bookings, payments: payments}
}

func (h *PassengerHandler) Register(router *gin.RouterGroup) {
	router.GET("/:id/tickets", h.tickets)
	router.GET("/:id/payments", h.paymentHistory)
}

func (h *PassengerHandler) RegisterAdmin(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.DELETE("/:email", h.delete)
}

func (h *PassengerHandler) tickets(c *gin.Context) {
	passengerID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid passenger id"})
		return
	}
	tickets, err := h.bookings.PassengerTickets(c.Request.Context(), passengerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tickets)
}

func (h *PassengerHandler) paymentHistory(c *gin.Context) {
	passengerID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid passenger id"})
		return
	}
	payments, err := h.payments.PassengerPayments(c.Request.Context(), passengerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

func (h *PassengerHandler) list(c *gin.Context) {
	passengers, err := h.auth.ListPassengers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, passengers)
}

func (h *PassengerHandler) delete(c *gin.Context) {
	email := c.Param("email")
	if err := h.auth.DeletePassenger(c.Request.Context(), email); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": email})
}
