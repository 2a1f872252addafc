package api

import (
	"errors"
	"net/http"

	"github.com/Mehra2004/airline-booking/internal/domain"
	"github.com/gin-gonic/gin"
)

// respondError maps domain failures to HTTP statuses. Unrecognized errors
// are storage faults: they get a generic body so internals never leak.
func respondError(c *gin.Context, err error) {
	var flightFull *domain.FlightFullError
	var fareMismatch *domain.FareMismatchError
	var cleanup *domain.CredentialCleanupError

	switch {
	case errors.Is(err, domain.ErrFlightNotFound),
		errors.Is(err, domain.ErrTicketNotFound),
		errors.Is(err, domain.ErrPassengerNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	case errors.Is(err, domain.ErrNotTicketOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})

	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})

	case errors.Is(err, domain.ErrSeatTaken),
		errors.Is(err, domain.ErrSeatLocked),
		errors.Is(err, domain.ErrTicketCancelled),
		errors.Is(err, domain.ErrAlreadyConfirmed),
		errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})

	case errors.As(err, &flightFull):
		c.JSON(http.StatusConflict, gin.H{
			"error":         flightFull.Error(),
			"seat_capacity": flightFull.Capacity,
			"booked_seats":  flightFull.Booked,
		})

	case errors.As(err, &fareMismatch):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":    fareMismatch.Error(),
			"expected": fareMismatch.Expected,
			"given":    fareMismatch.Given,
		})

	case errors.Is(err, domain.ErrInvalidPaymentMethod):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	case errors.As(err, &cleanup):
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":        "passenger deleted but credential cleanup failed",
			"passenger_id": cleanup.PassengerID,
		})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
