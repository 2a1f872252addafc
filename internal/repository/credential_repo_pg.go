package repository

import (
	"context"
	"errors"

	"github.com/Mehra2004/airline-booking/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CredentialRepository talks to the isolated auth database, not the airline
// one. It never touches catalog or booking tables.
type CredentialRepository interface {
	AdminHash(ctx context.Context, username string) (string, error)
	Register(ctx context.Context, passengerID int64, email, passwordHash string) error
	UserByEmail(ctx context.Context, email string) (int64, string, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	Delete(ctx context.Context, passengerID int64) error
}

type PGCredentialRepository struct {
	db *pgxpool.Pool
}

func NewCredentialRepository(db *pgxpool.Pool) CredentialRepository {
	return &PGCredentialRepository{db: db}
}

func (r *PGCredentialRepository) AdminHash(ctx context.Context, username string) (string, error) {
	var hash string
	if err := r.db.QueryRow(ctx, `SELECT password_hash FROM admin_user WHERE username=$1`, username).Scan(&hash); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}
	return hash, nil
}

func (r *PGCredentialRepository) Register(ctx context.Context, passengerID int64, email, passwordHash string) error {
	_, err := r.db.Exec(ctx, `INSERT INTO user_credentials (passanger_id, email, password_hash) VALUES ($1, $2, $3)`,
		passengerID, email, passwordHash)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return domain.ErrEmailTaken
	}
	return err
}

func (r *PGCredentialRepository) UserByEmail(ctx context.Context, email string) (int64, string, error) {
	var (
		passengerID int64
		hash        string
	)
	err := r.db.QueryRow(ctx, `SELECT passanger_id, password_hash FROM user_credentials WHERE email=$1`, email).
		Scan(&passengerID, &hash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, "", domain.ErrInvalidCredentials
		}
		return 0, "", err
	}
	return passengerID, hash, nil
}

func (r *PGCredentialRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var one int
	err := r.db.QueryRow(ctx, `SELECT 1 FROM user_credentials WHERE email=$1`, email).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *PGCredentialRepository) Delete(ctx context.Context, passengerID int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM user_credentials WHERE passanger_id=$1`, passengerID)
	return err
}

var _ CredentialRepository = (*PGCredentialRepository)(nil)
