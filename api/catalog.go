package api

import (
	"net/http"
	"time"

	"github.com/Mehra2004/airline-booking/internal/domain"
	"github.com/Mehra2004/airline-booking/internal/service/catalog"
	"github.com/gin-gonic/gin"
)

// CatalogHandler is the administrative surface for aircraft, airport and
// flight records. Flights are immutable once created: add and delete only.
type CatalogHandler struct {
	service catalog.CatalogUseCase
}

type addAircraftRequest struct {
	Model        string `json:"model" binding:"required"`
	Manufacturer string `json:"manufacturer" binding:"required"`
	SeatCapacity int    `json:"seat_capacity" binding:"required,gt=0"`
}

type addAirportRequest struct {
	Code    string `json:"code" binding:"required"`
	Name    string `json:"name" binding:"required"`
	City    string `json:"city"`
	Country string `json:"country"`
}

type addFlightRequest struct {
	FlightNumber         string    `json:"flight_number" binding:"required"`
	OriginAirportID      int64     `json:"origin_airport_id" binding:"required"`
	DestinationAirportID int64     `json:"destination_airport_id" binding:"required"`
	DepartureTime        time.Time `json:"departure_time" binding:"required"`
	ArrivalTime          time.Time `json:"arrival_time" binding:"required"`
	AircraftID           int64     `json:"aircraft_id" binding:"required"`
	Fare                 float64   `json:"fare" binding:"required,gt=0"`
}

func NewCatalogHandler(service catalog.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{service: service}
}

func (h *CatalogHandler) RegisterAdmin(router *gin.RouterGroup) {
	router.GET("/aircrafts", h.listAircrafts)
	router.POST("/aircrafts", h.addAircraft)
	router.DELETE("/aircrafts/:model", h.deleteAircraft)

	router.GET("/airports", h.listAirports)
	router.POST("/airports", h.addAirport)
	router.DELETE("/airports/:code", h.deleteAirport)

	router.POST("/flights", h.addFlight)
	router.DELETE("/flights/:number", h.deleteFlight)
}

func (h *CatalogHandler) listAircrafts(c *gin.Context) {
	aircrafts, err := h.service.ListAircrafts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, aircrafts)
}

func (h *CatalogHandler) addAircraft(c *gin.Context) {
	var req addAircraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	aircraft := &domain.Aircraft{Model: req.Model, Manufacturer: req.Manufacturer, SeatCapacity: req.SeatCapacity}
	if err := h.service.AddAircraft(c.Request.Context(), aircraft); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, aircraft)
}

func (h *CatalogHandler) deleteAircraft(c *gin.Context) {
	rows, err := h.service.DeleteAircraft(c.Request.Context(), c.Param("model"))
	if err != nil {
		respondError(c, err)
		return
	}
	if rows == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "aircraft not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": rows})
}

func (h *CatalogHandler) listAirports(c *gin.Context) {
	airports, err := h.service.ListAirports(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, airports)
}

func (h *CatalogHandler) addAirport(c *gin.Context) {
	var req addAirportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	airport := &domain.Airport{Code: req.Code, Name: req.Name, City: req.City, Country: req.Country}
	if err := h.service.AddAirport(c.Request.Context(), airport); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, airport)
}

func (h *CatalogHandler) deleteAirport(c *gin.Context) {
	rows, err := h.service.DeleteAirport(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondError(c, err)
		return
	}
	if rows == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "airport not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": rows})
}

func (h *CatalogHandler) addFlight(c *gin.Context) {
	var req addFlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	flight := &domain.Flight{
		FlightNumber:         req.FlightNumber,
		OriginAirportID:      req.OriginAirportID,
		DestinationAirportID: req.DestinationAirportID,
		DepartureTime:        req.DepartureTime,
		ArrivalTime:          req.ArrivalTime,
		AircraftID:           req.AircraftID,
		Fare:                 req.Fare,
	}
	if err := h.service.AddFlight(c.Request.Context(), flight); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"flight_id": flight.ID})
}

func (h *CatalogHandler) deleteFlight(c *gin.Context) {
	rows, err := h.service.DeleteFlight(c.Request.Context(), c.Param("number"))
	if err != nil {
		respondError(c, err)
		return
	}
	if rows == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "flight not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": rows})
}
