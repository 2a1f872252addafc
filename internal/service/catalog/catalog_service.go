package catalog

import (
	"context"

	"github.com/Mehra2004/airline-booking/internal/domain"
	"github.com/Mehra2004/airline-booking/internal/repository"
	"go.uber.org/zap"
)

type CatalogUseCase interface {
	ListFlights(ctx context.Context) ([]domain.FlightInfo, error)
	Availability(ctx context.Context, flightID int64) (*domain.FlightAvailability, error)
	AddFlight(ctx context.Context, f *domain.Flight) error
	DeleteFlight(ctx context.Context, flightNumber string) (int64, error)

	ListAircrafts(ctx context.Context) ([]domain.Aircraft, error)
	AddAircraft(ctx context.Context, a *domain.Aircraft) error
	DeleteAircraft(ctx context.Context, model string) (int64, error)

	ListAirports(ctx context.Context) ([]domain.Airport, error)
	AddAirport(ctx context.Context, a *domain.Airport) error
	DeleteAirport(ctx context.Context, code string) (int64, error)
}

// FlightCache is the cache-aside layer for the flight listing. Availability
// reads never go through it: booked counts must be fresh.
type FlightCache interface {
	GetFlights(ctx context.Context) ([]domain.FlightInfo, error)
	SetFlights(ctx context.Context, flights []domain.FlightInfo) error
	InvalidateFlights(ctx context.Context) error
}

type CatalogService struct {
	repo  repository.CatalogRepository
	cache FlightCache
	log   *zap.Logger
}

func NewCatalogService(repo repository.CatalogRepository, cache FlightCache, log *zap.Logger) *CatalogService {
	return &CatalogService{repo: repo, cache: cache, log: log.With(zap.String("service", "catalog"))}
}

func (s *CatalogService) ListFlights(ctx context.Context) ([]domain.FlightInfo, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetFlights(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	flights, err := s.repo.ListFlights(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.SetFlights(ctx, flights); err != nil {
			s.log.Warn("cache flights failed", zap.Error(err))
		}
	}
	return flights, nil
}

func (s *CatalogService) Availability(ctx context.Context, flightID int64) (*domain.FlightAvailability, error) {
	return s.repo.Availability(ctx, flightID)
}

func (s *CatalogService) AddFlight(ctx context.Context, f *domain.Flight) error {
	if err := s.repo.AddFlight(ctx, f); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *CatalogService) DeleteFlight(ctx context.Context, flightNumber string) (int64, error) {
	rows, err := s.repo.DeleteFlightByNumber(ctx, flightNumber)
	if err != nil {
		return 0, err
	}
	if rows > 0 {
		s.invalidate(ctx)
	}
	return rows, nil
}

func (s *CatalogService) ListAircrafts(ctx context.Context) ([]domain.Aircraft, error) {
	return s.repo.ListAircrafts(ctx)
}

func (s *CatalogService) AddAircraft(ctx context.Context, a *domain.Aircraft) error {
	return s.repo.AddAircraft(ctx, a)
}

func (s *CatalogService) DeleteAircraft(ctx context.Context, model string) (int64, error) {
	return s.repo.DeleteAircraftByModel(ctx, model)
}

func (s *CatalogService) ListAirports(ctx context.Context) ([]domain.Airport, error) {
	return s.repo.ListAirports(ctx)
}

func (s *CatalogService) AddAirport(ctx context.Context, a *domain.Airport) error {
	return s.repo.AddAirport(ctx, a)
}

func (s *CatalogService) DeleteAirport(ctx context.Context, code string) (int64, error) {
	return s.repo.DeleteAirportByCode(ctx, code)
}

func (s *CatalogService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateFlights(ctx); err != nil {
		s.log.Warn("invalidate flights cache failed", zap.Error(err))
	}
}

var _ CatalogUseCase = (*CatalogService)(nil)
