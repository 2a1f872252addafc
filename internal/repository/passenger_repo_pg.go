package repository

import (
	"context"
	"errors"

	"github.com/Mehra2004/airline-booking/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PassengerRepository interface {
	Add(ctx context.Context, p *domain.Passenger) error
	List(ctx context.Context) ([]domain.Passenger, error)
	IDByEmail(ctx context.Context, email string) (int64, error)
	Delete(ctx context.Context, passengerID int64) (int64, error)
}

type PGPassengerRepository struct {
	db *pgxpool.Pool
}

func NewPassengerRepository(db *pgxpool.Pool) PassengerRepository {
	return &PGPassengerRepository{db: db}
}

func (r *PGPassengerRepository) Add(ctx context.Context, p *domain.Passenger) error {
	err := r.db.QueryRow(ctx, `INSERT INTO passangers (full_name, email, phone, nationality)
		VALUES ($1, $2, $3, $4)
		RETURNING passanger_id`, p.FullName, p.Email, p.Phone, p.Nationality).Scan(&p.ID)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return domain.ErrEmailTaken
	}
	return err
}

func (r *PGPassengerRepository) List(ctx context.Context) ([]domain.Passenger, error) {
	rows, err := r.db.Query(ctx, `SELECT passanger_id, full_name, email, phone, nationality FROM passangers ORDER BY passanger_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	passengers := make([]domain.Passenger, 0)
	for rows.Next() {
		var p domain.Passenger
		if err := rows.Scan(&p.ID, &p.FullName, &p.Email, &p.Phone, &p.Nationality); err != nil {
			return nil, err
		}
		passengers = append(passengers, p)
	}
	return passengers, rows.Err()
}

func (r *PGPassengerRepository) IDByEmail(ctx context.Context, email string) (int64, error) {
	var id int64
	if err := r.db.QueryRow(ctx, `SELECT passanger_id FROM passangers WHERE email=$1`, email).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrPassengerNotFound
		}
		return 0, err
	}
	return id, nil
}

func (r *PGPassengerRepository) Delete(ctx context.Context, passengerID int64) (int64, error) {
	res, err := r.db.Exec(ctx, `DELETE FROM passangers WHERE passanger_id=$1`, passengerID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected(), nil
}

var _ PassengerRepository = (*PGPassengerRepository)(nil)
