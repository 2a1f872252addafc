package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/Mehra2004/airline-booking/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) AddAircraft(ctx context.Context, a *domain.Aircraft) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockCatalogRepository) DeleteAircraftByModel(ctx context.Context, model string) (int64, error) {
	args := m.Called(ctx, model)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCatalogRepository) ListAircrafts(ctx context.Context) ([]domain.Aircraft, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Aircraft), args.Error(1)
}

func (m *MockCatalogRepository) AddAirport(ctx context.Context, a *domain.Airport) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockCatalogRepository) DeleteAirportByCode(ctx context.Context, code string) (int64, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCatalogRepository) ListAirports(ctx context.Context) ([]domain.Airport, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Airport), args.Error(1)
}

func (m *MockCatalogRepository) AddFlight(ctx context.Context, f *domain.Flight) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockCatalogRepository) DeleteFlightByNumber(ctx context.Context, flightNumber string) (int64, error) {
	args := m.Called(ctx, flightNumber)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCatalogRepository) ListFlights(ctx context.Context) ([]domain.FlightInfo, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.FlightInfo), args.Error(1)
}

func (m *MockCatalogRepository) Availability(ctx context.Context, flightID int64) (*domain.FlightAvailability, error) {
	args := m.Called(ctx, flightID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FlightAvailability), args.Error(1)
}

type MockFlightCache struct {
	mock.Mock
}

func (m *MockFlightCache) GetFlights(ctx context.Context) ([]domain.FlightInfo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FlightInfo), args.Error(1)
}

func (m *MockFlightCache) SetFlights(ctx context.Context, flights []domain.FlightInfo) error {
	args := m.Called(ctx, flights)
	return args.Error(0)
}

func (m *MockFlightCache) InvalidateFlights(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func TestCatalogService_ListFlights_CacheHit(t *testing.T) {
	repo := &MockCatalogRepository{}
	cache := &MockFlightCache{}

	cached := []domain.FlightInfo{{FlightID: 1, FlightNumber: "AI101"}}
	cache.On("GetFlights", mock.Anything).Return(cached, nil)

	service := NewCatalogService(repo, cache, zap.NewNop())

	flights, err := service.ListFlights(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, cached, flights)
	repo.AssertNotCalled(t, "ListFlights", mock.Anything)
}

func TestCatalogService_ListFlights_CacheMiss(t *testing.T) {
	repo := &MockCatalogRepository{}
	cache := &MockFlightCache{}

	fresh := []domain.FlightInfo{{FlightID: 2, FlightNumber: "AI202", SeatCapacity: 180, BookedSeats: 12}}
	cache.On("GetFlights", mock.Anything).Return(nil, nil)
	repo.On("ListFlights", mock.Anything).Return(fresh, nil)
	cache.On("SetFlights", mock.Anything, fresh).Return(nil)

	service := NewCatalogService(repo, cache, zap.NewNop())

	flights, err := service.ListFlights(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, fresh, flights)
	cache.AssertExpectations(t)
}

func TestCatalogService_ListFlights_NoCache(t *testing.T) {
	repo := &MockCatalogRepository{}
	fresh := []domain.FlightInfo{{FlightID: 3}}
	repo.On("ListFlights", mock.Anything).Return(fresh, nil)

	service := NewCatalogService(repo, nil, zap.NewNop())

	flights, err := service.ListFlights(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, fresh, flights)
}

func TestCatalogService_Availability_NotFound(t *testing.T) {
	repo := &MockCatalogRepository{}
	repo.On("Availability", mock.Anything, int64(99)).Return(nil, domain.ErrFlightNotFound)

	service := NewCatalogService(repo, nil, zap.NewNop())

	_, err := service.Availability(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrFlightNotFound)
}

func TestCatalogService_AddFlight_InvalidatesCache(t *testing.T) {
	repo := &MockCatalogRepository{}
	cache := &MockFlightCache{}

	repo.On("AddFlight", mock.Anything, mock.Anything).Return(nil)
	cache.On("InvalidateFlights", mock.Anything).Return(nil)

	service := NewCatalogService(repo, cache, zap.NewNop())

	err := service.AddFlight(context.Background(), &domain.Flight{FlightNumber: "AI303"})
	assert.NoError(t, err)
	cache.AssertExpectations(t)
}

func TestCatalogService_DeleteFlight_NoRowsNoInvalidate(t *testing.T) {
	repo := &MockCatalogRepository{}
	cache := &MockFlightCache{}

	repo.On("DeleteFlightByNumber", mock.Anything, "AI404").Return(int64(0), nil)

	service := NewCatalogService(repo, cache, zap.NewNop())

	rows, err := service.DeleteFlight(context.Background(), "AI404")
	assert.NoError(t, err)
	assert.Equal(t, int64(0), rows)
	cache.AssertNotCalled(t, "InvalidateFlights", mock.Anything)
}

func TestCatalogService_AddAircraft_RepoFault(t *testing.T) {
	repo := &MockCatalogRepository{}
	repo.On("AddAircraft", mock.Anything, mock.Anything).Return(errors.New("constraint violation"))

	service := NewCatalogService(repo, nil, zap.NewNop())

	err := service.AddAircraft(context.Background(), &domain.Aircraft{Model: "A320"})
	assert.Error(t, err)
}
