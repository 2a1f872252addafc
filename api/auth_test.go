package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Mehra2004/airline-booking/internal/domain"
	"github.com/Mehra2004/airline-booking/internal/service/auth"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockAuthUseCase is a mock implementation of auth.AuthUseCase
type MockAuthUseCase struct {
	mock.Mock
}

func (m *MockAuthUseCase) VerifyAdmin(ctx context.Context, username, password string) (bool, error) {
	args := m.Called(ctx, username, password)
	return args.Bool(0), args.Error(1)
}

func (m *MockAuthUseCase) RegisterPassenger(ctx context.Context, input auth.RegisterInput) (int64, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAuthUseCase) VerifyUser(ctx context.Context, email, password string) (int64, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAuthUseCase) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockAuthUseCase) ListPassengers(ctx context.Context) ([]domain.Passenger, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Passenger), args.Error(1)
}

func (m *MockAuthUseCase) DeletePassenger(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func TestAuthHandler_register(t *testing.T) {
	mockService := &MockAuthUseCase{}
	handler := NewAuthHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body, _ := json.Marshal(registerRequest{
		FullName: "Asha Rao",
		Email:    "asha@example.com",
		Password: "secret",
	})
	c.Request = httptest.NewRequest("POST", "/auth/register", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	input := auth.RegisterInput{FullName: "Asha Rao", Email: "asha@example.com", Password: "secret"}
	mockService.On("RegisterPassenger", c.Request.Context(), input).Return(int64(7), nil)

	handler.register(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"passenger_id":7`)
	mockService.AssertExpectations(t)
}

func TestAuthHandler_register_duplicateEmail(t *testing.T) {
	mockService := &MockAuthUseCase{}
	handler := NewAuthHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body, _ := json.Marshal(registerRequest{
		FullName: "Asha Rao",
		Email:    "asha@example.com",
		Password: "secret",
	})
	c.Request = httptest.NewRequest("POST", "/auth/register", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	mockService.On("RegisterPassenger", c.Request.Context(), mock.Anything).
		Return(int64(0), domain.ErrEmailTaken)

	handler.register(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "already registered")
}

func TestAuthHandler_register_invalidEmail(t *testing.T) {
	handler := NewAuthHandler(&MockAuthUseCase{})

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body, _ := json.Marshal(registerRequest{
		FullName: "Asha Rao",
		Email:    "not-an-email",
		Password: "secret",
	})
	c.Request = httptest.NewRequest("POST", "/auth/register", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.register(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_login(t *testing.T) {
	mockService := &MockAuthUseCase{}
	handler := NewAuthHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body, _ := json.Marshal(loginRequest{Email: "asha@example.com", Password: "secret"})
	c.Request = httptest.NewRequest("POST", "/auth/login", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	mockService.On("VerifyUser", c.Request.Context(), "asha@example.com", "secret").Return(int64(7), nil)

	handler.login(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"passenger_id":7`)
}

func TestAuthHandler_login_badPassword(t *testing.T) {
	mockService := &MockAuthUseCase{}
	handler := NewAuthHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body, _ := json.Marshal(loginRequest{Email: "asha@example.com", Password: "wrong"})
	c.Request = httptest.NewRequest("POST", "/auth/login", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	mockService.On("VerifyUser", c.Request.Context(), "asha@example.com", "wrong").
		Return(int64(0), domain.ErrInvalidCredentials)

	handler.login(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_adminLogin(t *testing.T) {
	tests := []struct {
		name       string
		ok         bool
		wantStatus int
	}{
		{"accepted", true, http.StatusOK},
		{"rejected", false, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockAuthUseCase{}
			handler := NewAuthHandler(mockService)

			gin.SetMode(gin.TestMode)
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			body, _ := json.Marshal(adminLoginRequest{Username: "admin", Password: "pw"})
			c.Request = httptest.NewRequest("POST", "/auth/admin/login", bytes.NewReader(body))
			c.Request.Header.Set("Content-Type", "application/json")

			mockService.On("VerifyAdmin", c.Request.Context(), "admin", "pw").Return(tt.ok, nil)

			handler.adminLogin(c)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
