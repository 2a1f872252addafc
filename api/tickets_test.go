package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Mehra2004/airline-booking/internal/domain"
	"github.com/Mehra2004/airline-booking/internal/service/booking"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockBookingUseCase is a mock implementation of booking.BookingUseCase
type MockBookingUseCase struct {
	mock.Mock
}

func (m *MockBookingUseCase) BookFlight(ctx context.Context, input booking.BookFlightInput) (*domain.Ticket, int, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).(*domain.Ticket), args.Int(1), args.Error(2)
}

func (m *MockBookingUseCase) CancelTicket(ctx context.Context, ticketID, passengerID int64) (domain.CancelOutcome, error) {
	args := m.Called(ctx, ticketID, passengerID)
	return args.Get(0).(domain.CancelOutcome), args.Error(1)
}

func (m *MockBookingUseCase) PassengerTickets(ctx context.Context, passengerID int64) ([]domain.TicketInfo, error) {
	args := m.Called(ctx, passengerID)
	return args.Get(0).([]domain.TicketInfo), args.Error(1)
}

func (m *MockBookingUseCase) AllTickets(ctx context.Context) ([]domain.TicketRecord, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.TicketRecord), args.Error(1)
}

func (m *MockBookingUseCase) DeleteTicket(ctx context.Context, ticketID int64) (int64, error) {
	args := m.Called(ctx, ticketID)
	return args.Get(0).(int64), args.Error(1)
}

func TestTicketHandler_book(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewTicketHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body, _ := json.Marshal(bookTicketRequest{PassengerID: 7, FlightID: 1, SeatNo: "1a"})
	c.Request = httptest.NewRequest("POST", "/tickets", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	// Handler must have normalized "1a" to "1A" before calling the service.
	input := booking.BookFlightInput{PassengerID: 7, FlightID: 1, SeatNo: "1A"}
	ticket := &domain.Ticket{ID: 42, PassengerID: 7, FlightID: 1, SeatNo: "1A", Status: domain.TicketStatusPending}
	mockService.On("BookFlight", c.Request.Context(), input).Return(ticket, 1, nil)

	handler.book(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response bookTicketResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), response.TicketID)
	assert.Equal(t, "1A", response.SeatNo)
	assert.Equal(t, string(domain.TicketStatusPending), response.Status)
	assert.Equal(t, 1, response.RemainingSeats)
	assert.Contains(t, response.Message, "1 seats remaining")

	mockService.AssertExpectations(t)
}

func TestTicketHandler_book_flightFull(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewTicketHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body, _ := json.Marshal(bookTicketRequest{PassengerID: 7, FlightID: 1, SeatNo: "1C"})
	c.Request = httptest.NewRequest("POST", "/tickets", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	mockService.On("BookFlight", c.Request.Context(), mock.Anything).
		Return(nil, 0, &domain.FlightFullError{Capacity: 2, Booked: 2})

	handler.book(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "capacity 2")
	assert.Contains(t, w.Body.String(), "booked 2")
}

func TestTicketHandler_book_seatTaken(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewTicketHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body, _ := json.Marshal(bookTicketRequest{PassengerID: 7, FlightID: 1, SeatNo: "1A"})
	c.Request = httptest.NewRequest("POST", "/tickets", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	mockService.On("BookFlight", c.Request.Context(), mock.Anything).Return(nil, 0, domain.ErrSeatTaken)

	handler.book(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "already booked")
}

func TestTicketHandler_book_storageFaultIsGeneric(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewTicketHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body, _ := json.Marshal(bookTicketRequest{PassengerID: 7, FlightID: 1, SeatNo: "1A"})
	c.Request = httptest.NewRequest("POST", "/tickets", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	mockService.On("BookFlight", c.Request.Context(), mock.Anything).
		Return(nil, 0, assert.AnError)

	handler.book(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), assert.AnError.Error())
	assert.Contains(t, w.Body.String(), "internal error")
}

func TestTicketHandler_cancel(t *testing.T) {
	tests := []struct {
		name       string
		outcome    domain.CancelOutcome
		wantStatus int
	}{
		{"cancelled", domain.CancelOK, http.StatusOK},
		{"not found", domain.CancelNotFound, http.StatusNotFound},
		{"already cancelled", domain.CancelAlreadyCancelled, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockBookingUseCase{}
			handler := NewTicketHandler(mockService)

			gin.SetMode(gin.TestMode)
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			c.Params = gin.Params{{Key: "id", Value: "5"}}
			c.Request = httptest.NewRequest("DELETE", "/tickets/5?passenger_id=7", nil)

			mockService.On("CancelTicket", c.Request.Context(), int64(5), int64(7)).Return(tt.outcome, nil)

			handler.cancel(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}

// The group root must serve POST /api/v1/tickets directly, not via a
// trailing-slash redirect.
func TestTicketHandler_routeWithoutTrailingSlash(t *testing.T) {
	mockService := &MockBookingUseCase{}
	ticket := &domain.Ticket{ID: 42, PassengerID: 7, FlightID: 1, SeatNo: "1A", Status: domain.TicketStatusPending}
	mockService.On("BookFlight", mock.Anything, mock.Anything).Return(ticket, 1, nil)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewTicketHandler(mockService).Register(router.Group("/api/v1/tickets"))

	body, _ := json.Marshal(bookTicketRequest{PassengerID: 7, FlightID: 1, SeatNo: "1A"})
	req := httptest.NewRequest("POST", "/api/v1/tickets", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestTicketHandler_cancel_missingPassenger(t *testing.T) {
	handler := NewTicketHandler(&MockBookingUseCase{})

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "id", Value: "5"}}
	c.Request = httptest.NewRequest("DELETE", "/tickets/5", nil)

	handler.cancel(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
