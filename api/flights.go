package api

import (
	"net/http"
	"strconv"

	"github.com/Mehra2004/airline-booking/internal/service/catalog"
	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	service catalog.CatalogUseCase
}

func NewFlightHandler(service catalog.CatalogUseCase) *FlightHandler {
	return &FlightHandler{service: service}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.GET("/:id/availability", h.availability)
}

func (h *FlightHandler) list(c *gin.Context) {
	flights, err := h.service.ListFlights(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, flights)
}

func (h *FlightHandler) availability(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	av, err := h.service.Availability(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"flight_id":       id,
		"seat_capacity":   av.SeatCapacity,
		"booked_seats":    av.BookedSeats,
		"remaining_seats": av.RemainingSeats(),
	})
}
