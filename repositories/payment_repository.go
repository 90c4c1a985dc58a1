package repositories

import (
	"context"
	"errors"
	"time"

	"restaurant-backend/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PaymentRepository struct {
	db *pgxpool.Pool
}

func NewPaymentRepository(db *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO payments (order_id, payment_method, amount, paid_at)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, paid_at`,
		payment.OrderID, payment.PaymentMethod, payment.Amount, time.Now(),
	).Scan(&payment.ID, &payment.PaidAt)
	if err != nil {
		return &models.PersistenceError{Op: "insert payment", Err: err}
	}

	return nil
}

func (r *PaymentRepository) FindByID(ctx context.Context, id int) (*models.Payment, error) {
	payment := &models.Payment{}
	err := r.db.QueryRow(ctx,
		`SELECT id, order_id, payment_method, amount, paid_at
		 FROM payments WHERE id = $1`, id,
	).Scan(&payment.ID, &payment.OrderID, &payment.PaymentMethod,
		&payment.Amount, &payment.PaidAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, &models.PersistenceError{Op: "query payment", Err: err}
	}

	return payment, nil
}

func (r *PaymentRepository) FindByOrder(ctx context.Context, orderID int) ([]models.Payment, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, order_id, payment_method, amount, paid_at
		 FROM payments
		 WHERE order_id = $1
		 ORDER BY id`, orderID)
	if err != nil {
		return nil, &models.PersistenceError{Op: "query payments", Err: err}
	}
	defer rows.Close()

	payments := []models.Payment{}
	for rows.Next() {
		var payment models.Payment
		if err := rows.Scan(&payment.ID, &payment.OrderID, &payment.PaymentMethod,
			&payment.Amount, &payment.PaidAt); err != nil {
			return nil, &models.PersistenceError{Op: "scan payment row", Err: err}
		}
		payments = append(payments, payment)
	}
	if err := rows.Err(); err != nil {
		return nil, &models.PersistenceError{Op: "iterate payment rows", Err: err}
	}

	return payments, nil
}

func (r *PaymentRepository) Update(ctx context.Context, payment *models.Payment) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE payments SET payment_method = $1, amount = $2 WHERE id = $3`,
		payment.PaymentMethod, payment.Amount, payment.ID)
	if err != nil {
		return &models.PersistenceError{Op: "update payment", Err: err}
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}

	return nil
}

func (r *PaymentRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM payments WHERE id = $1`, id)
	if err != nil {
		return &models.PersistenceError{Op: "delete payment", Err: err}
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}

	return nil
}
