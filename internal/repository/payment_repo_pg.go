package repository

import (
	"context"

	"github.com/Mehra2004/airline-booking/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PaymentRepository interface {
	// Record inserts the payment row and confirms the ticket in one
	// transaction; both writes commit together or not at all.
	Record(ctx context.Context, payment *domain.Payment) error
	ListByPassenger(ctx context.Context, passengerID int64) ([]domain.PaymentRecord, error)
	ListAll(ctx context.Context) ([]domain.PaymentRecord, error)
	DeleteByID(ctx context.Context, paymentID int64) (int64, error)
}

type PGPaymentRepository struct {
	db *pgxpool.Pool
}

func NewPaymentRepository(db *pgxpool.Pool) PaymentRepository {
	return &PGPaymentRepository{db: db}
}

func (r *PGPaymentRepository) Record(ctx context.Context, payment *domain.Payment) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := tx.QueryRow(ctx, `INSERT INTO payments (ticket_id, amount, method, status, reference, payment_time)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING payment_id`,
		payment.TicketID, payment.Amount, payment.Method, payment.Status, payment.Reference, payment.PaymentTime).
		Scan(&payment.ID); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `UPDATE tickets SET status=$1 WHERE ticket_id=$2`,
		domain.TicketStatusConfirmed, payment.TicketID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *PGPaymentRepository) ListByPassenger(ctx context.Context, passengerID int64) ([]domain.PaymentRecord, error) {
	rows, err := r.db.Query(ctx, `
		SELECT p.payment_id, p.ticket_id, t.passanger_id, ps.email, p.amount, p.method, p.status, p.payment_time
		FROM payments p
		JOIN tickets t ON p.ticket_id = t.ticket_id
		JOIN passangers ps ON t.passanger_id = ps.passanger_id
		WHERE t.passanger_id = $1
		ORDER BY p.payment_time DESC`, passengerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPayments(rows)
}

func (r *PGPaymentRepository) ListAll(ctx context.Context) ([]domain.PaymentRecord, error) {
	rows, err := r.db.Query(ctx, `
		SELECT p.payment_id, p.ticket_id, t.passanger_id, ps.email, p.amount, p.method, p.status, p.payment_time
		FROM payments p
		JOIN tickets t ON p.ticket_id = t.ticket_id
		JOIN passangers ps ON t.passanger_id = ps.passanger_id
		ORDER BY p.payment_id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPayments(rows)
}

func (r *PGPaymentRepository) DeleteByID(ctx context.Context, paymentID int64) (int64, error) {
	res, err := r.db.Exec(ctx, `DELETE FROM payments WHERE payment_id=$1`, paymentID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected(), nil
}

func scanPayments(rows pgx.Rows) ([]domain.PaymentRecord, error) {
	payments := make([]domain.PaymentRecord, 0)
	for rows.Next() {
		var p domain.PaymentRecord
		if err := rows.Scan(&p.PaymentID, &p.TicketID, &p.PassengerID, &p.PassengerEmail, &p.Amount, &p.Method, &p.Status, &p.PaymentTime); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

var _ PaymentRepository = (*PGPaymentRepository)(nil)
