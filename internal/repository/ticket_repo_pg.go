package repository

import (
	"context"
	"errors"

	"github.com/Mehra2004/airline-booking/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

type TicketRepository interface {
	// CreatePending inserts a pending ticket after a capacity check and
	// returns the number of seats left after the booking.
	CreatePending(ctx context.Context, ticket *domain.Ticket) (int, error)
	Status(ctx context.Context, ticketID, passengerID int64) (domain.TicketStatus, error)
	MarkCancelled(ctx context.Context, ticketID, passengerID int64) (int64, error)
	ForPayment(ctx context.Context, ticketID int64) (*domain.PaymentCheck, error)
	ListByPassenger(ctx context.Context, passengerID int64) ([]domain.TicketInfo, error)
	ListAll(ctx context.Context) ([]domain.TicketRecord, error)
	DeleteByID(ctx context.Context, ticketID int64) (int64, error)
}

type PGTicketRepository struct {
	db *pgxpool.Pool
}

func NewTicketRepository(db *pgxpool.Pool) TicketRepository {
	return &PGTicketRepository{db: db}
}

// CreatePending runs the capacity check and the insert in one serializable
// transaction so two bookings cannot both pass the check on the last seat.
// The (flight_id, seat_no) uniqueness constraint stays as the backstop for
// duplicate seats and is mapped to ErrSeatTaken.
func (r *PGTicketRepository) CreatePending(ctx context.Context, ticket *domain.Ticket) (int, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	var capacity, booked int
	err = tx.QueryRow(ctx, `
		SELECT a.seat_capacity,
		       COALESCE((SELECT COUNT(*) FROM tickets t WHERE t.flight_id = f.flight_id AND t.status <> 'cancelled'), 0) AS booked_seats
		FROM flights f
		JOIN aircrafts a ON f.aircraft_id = a.aircraft_id
		WHERE f.flight_id = $1`, ticket.FlightID).Scan(&capacity, &booked)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrFlightNotFound
		}
		return 0, err
	}

	if booked >= capacity {
		return 0, &domain.FlightFullError{Capacity: capacity, Booked: booked}
	}

	ticket.Status = domain.TicketStatusPending
	if err := tx.QueryRow(ctx, `INSERT INTO tickets (passanger_id, flight_id, seat_no, status)
		VALUES ($1, $2, $3, $4)
		RETURNING ticket_id`, ticket.PassengerID, ticket.FlightID, ticket.SeatNo, ticket.Status).
		Scan(&ticket.ID); err != nil {
		return 0, mapSeatConflict(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, mapSeatConflict(err)
	}
	return capacity - booked - 1, nil
}

func (r *PGTicketRepository) Status(ctx context.Context, ticketID, passengerID int64) (domain.TicketStatus, error) {
	row := r.db.QueryRow(ctx, `SELECT status FROM tickets WHERE ticket_id=$1 AND passanger_id=$2`, ticketID, passengerID)
	var status domain.TicketStatus
	if err := row.Scan(&status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", domain.ErrTicketNotFound
		}
		return "", err
	}
	return status, nil
}

func (r *PGTicketRepository) MarkCancelled(ctx context.Context, ticketID, passengerID int64) (int64, error) {
	res, err := r.db.Exec(ctx, `UPDATE tickets SET status=$1 WHERE ticket_id=$2 AND passanger_id=$3`,
		domain.TicketStatusCancelled, ticketID, passengerID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected(), nil
}

func (r *PGTicketRepository) ForPayment(ctx context.Context, ticketID int64) (*domain.PaymentCheck, error) {
	row := r.db.QueryRow(ctx, `
		SELECT t.status, t.passanger_id, f.fare
		FROM tickets t
		JOIN flights f ON t.flight_id = f.flight_id
		WHERE t.ticket_id = $1`, ticketID)

	var chk domain.PaymentCheck
	if err := row.Scan(&chk.Status, &chk.PassengerID, &chk.Fare); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTicketNotFound
		}
		return nil, err
	}
	return &chk, nil
}

func (r *PGTicketRepository) ListByPassenger(ctx context.Context, passengerID int64) ([]domain.TicketInfo, error) {
	rows, err := r.db.Query(ctx, `
		SELECT t.ticket_id, f.flight_number,
		       COALESCE(o.name, '') AS origin, COALESCE(d.name, '') AS destination,
		       f.departure_time, f.arrival_time, t.seat_no, t.status
		FROM tickets t
		JOIN flights f ON t.flight_id = f.flight_id
		LEFT JOIN airports o ON f.origin_airport_id = o.airport_id
		LEFT JOIN airports d ON f.destination_airport_id = d.airport_id
		WHERE t.passanger_id = $1
		ORDER BY t.ticket_id`, passengerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tickets := make([]domain.TicketInfo, 0)
	for rows.Next() {
		var t domain.TicketInfo
		if err := rows.Scan(&t.TicketID, &t.FlightNumber, &t.Origin, &t.Destination, &t.DepartureTime, &t.ArrivalTime, &t.SeatNo, &t.Status); err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}
	return tickets, rows.Err()
}

func (r *PGTicketRepository) ListAll(ctx context.Context) ([]domain.TicketRecord, error) {
	rows, err := r.db.Query(ctx, `
		SELECT t.ticket_id, t.passanger_id, p.email, f.flight_number,
		       COALESCE(o.name, '') AS origin, COALESCE(d.name, '') AS destination,
		       f.departure_time, t.seat_no, t.status
		FROM tickets t
		JOIN passangers p ON t.passanger_id = p.passanger_id
		JOIN flights f ON t.flight_id = f.flight_id
		LEFT JOIN airports o ON f.origin_airport_id = o.airport_id
		LEFT JOIN airports d ON f.destination_airport_id = d.airport_id
		ORDER BY t.ticket_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tickets := make([]domain.TicketRecord, 0)
	for rows.Next() {
		var t domain.TicketRecord
		if err := rows.Scan(&t.TicketID, &t.PassengerID, &t.PassengerEmail, &t.FlightNumber, &t.Origin, &t.Destination, &t.DepartureTime, &t.SeatNo, &t.Status); err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}
	return tickets, rows.Err()
}

func (r *PGTicketRepository) DeleteByID(ctx context.Context, ticketID int64) (int64, error) {
	res, err := r.db.Exec(ctx, `DELETE FROM tickets WHERE ticket_id=$1`, ticketID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected(), nil
}

func mapSeatConflict(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation && pgErr.ConstraintName == "tickets_flight_seat_unique" {
		return domain.ErrSeatTaken
	}
	return err
}

var _ TicketRepository = (*PGTicketRepository)(nil)
