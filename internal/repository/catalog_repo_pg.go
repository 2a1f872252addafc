package repository

import (
	"context"
	"errors"

	"github.com/Mehra2004/airline-booking/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CatalogRepository interface {
	AddAircraft(ctx context.Context, a *domain.Aircraft) error
	DeleteAircraftByModel(ctx context.Context, model string) (int64, error)
	ListAircrafts(ctx context.Context) ([]domain.Aircraft, error)

	AddAirport(ctx context.Context, a *domain.Airport) error
	DeleteAirportByCode(ctx context.Context, code string) (int64, error)
	ListAirports(ctx context.Context) ([]domain.Airport, error)

	AddFlight(ctx context.Context, f *domain.Flight) error
	DeleteFlightByNumber(ctx context.Context, flightNumber string) (int64, error)
	ListFlights(ctx context.Context) ([]domain.FlightInfo, error)
	Availability(ctx context.Context, flightID int64) (*domain.FlightAvailability, error)
}

type PGCatalogRepository struct {
	db *pgxpool.Pool
}

func NewCatalogRepository(db *pgxpool.Pool) CatalogRepository {
	return &PGCatalogRepository{db: db}
}

func (r *PGCatalogRepository) AddAircraft(ctx context.Context, a *domain.Aircraft) error {
	return r.db.QueryRow(ctx, `INSERT INTO aircrafts (model, manufacturer, seat_capacity) VALUES ($1, $2, $3) RETURNING aircraft_id`,
		a.Model, a.Manufacturer, a.SeatCapacity).Scan(&a.ID)
}

func (r *PGCatalogRepository) DeleteAircraftByModel(ctx context.Context, model string) (int64, error) {
	res, err := r.db.Exec(ctx, `DELETE FROM aircrafts WHERE model=$1`, model)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected(), nil
}

func (r *PGCatalogRepository) ListAircrafts(ctx context.Context) ([]domain.Aircraft, error) {
	rows, err := r.db.Query(ctx, `SELECT aircraft_id, model, manufacturer, seat_capacity FROM aircrafts ORDER BY aircraft_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	aircrafts := make([]domain.Aircraft, 0)
	for rows.Next() {
		var a domain.Aircraft
		if err := rows.Scan(&a.ID, &a.Model, &a.Manufacturer, &a.SeatCapacity); err != nil {
			return nil, err
		}
		aircrafts = append(aircrafts, a)
	}
	return aircrafts, rows.Err()
}

func (r *PGCatalogRepository) AddAirport(ctx context.Context, a *domain.Airport) error {
	return r.db.QueryRow(ctx, `INSERT INTO airports (code, name, city, country) VALUES ($1, $2, $3, $4) RETURNING airport_id`,
		a.Code, a.Name, a.City, a.Country).Scan(&a.ID)
}

func (r *PGCatalogRepository) DeleteAirportByCode(ctx context.Context, code string) (int64, error) {
	res, err := r.db.Exec(ctx, `DELETE FROM airports WHERE code=$1`, code)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected(), nil
}

func (r *PGCatalogRepository) ListAirports(ctx context.Context) ([]domain.Airport, error) {
	rows, err := r.db.Query(ctx, `SELECT airport_id, code, name, city, country FROM airports ORDER BY airport_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	airports := make([]domain.Airport, 0)
	for rows.Next() {
		var a domain.Airport
		if err := rows.Scan(&a.ID, &a.Code, &a.Name, &a.City, &a.Country); err != nil {
			return nil, err
		}
		airports = append(airports, a)
	}
	return airports, rows.Err()
}

func (r *PGCatalogRepository) AddFlight(ctx context.Context, f *domain.Flight) error {
	return r.db.QueryRow(ctx, `INSERT INTO flights (flight_number, origin_airport_id, destination_airport_id, departure_time, arrival_time, aircraft_id, fare)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING flight_id`,
		f.FlightNumber, f.OriginAirportID, f.DestinationAirportID, f.DepartureTime, f.ArrivalTime, f.AircraftID, f.Fare).Scan(&f.ID)
}

func (r *PGCatalogRepository) DeleteFlightByNumber(ctx context.Context, flightNumber string) (int64, error) {
	res, err := r.db.Exec(ctx, `DELETE FROM flights WHERE flight_number=$1`, flightNumber)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected(), nil
}

func (r *PGCatalogRepository) ListFlights(ctx context.Context) ([]domain.FlightInfo, error) {
	rows, err := r.db.Query(ctx, `
		SELECT f.flight_id, f.flight_number,
		       COALESCE(o.name, '') AS origin, COALESCE(d.name, '') AS destination,
		       f.departure_time, f.arrival_time,
		       COALESCE(a.model, '') AS aircraft,
		       COALESCE(a.seat_capacity, 0),
		       COALESCE((SELECT COUNT(*) FROM tickets t WHERE t.flight_id = f.flight_id AND t.status <> 'cancelled'), 0) AS booked_seats,
		       f.fare
		FROM flights f
		LEFT JOIN airports o ON f.origin_airport_id = o.airport_id
		LEFT JOIN airports d ON f.destination_airport_id = d.airport_id
		LEFT JOIN aircrafts a ON f.aircraft_id = a.aircraft_id
		ORDER BY f.flight_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	flights := make([]domain.FlightInfo, 0)
	for rows.Next() {
		var f domain.FlightInfo
		if err := rows.Scan(&f.FlightID, &f.FlightNumber, &f.Origin, &f.Destination, &f.DepartureTime, &f.ArrivalTime, &f.Aircraft, &f.SeatCapacity, &f.BookedSeats, &f.Fare); err != nil {
			return nil, err
		}
		flights = append(flights, f)
	}
	return flights, rows.Err()
}

func (r *PGCatalogRepository) Availability(ctx context.Context, flightID int64) (*domain.FlightAvailability, error) {
	row := r.db.QueryRow(ctx, `
		SELECT a.seat_capacity,
		       COALESCE((SELECT COUNT(*) FROM tickets t WHERE t.flight_id = f.flight_id AND t.status <> 'cancelled'), 0) AS booked_seats
		FROM flights f
		JOIN aircrafts a ON f.aircraft_id = a.aircraft_id
		WHERE f.flight_id = $1`, flightID)

	var av domain.FlightAvailability
	if err := row.Scan(&av.SeatCapacity, &av.BookedSeats); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrFlightNotFound
		}
		return nil, err
	}
	return &av, nil
}

var _ CatalogRepository = (*PGCatalogRepository)(nil)
