package repositories

import (
	"context"
	"errors"
	"time"

	"restaurant-backend/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SalesRepository struct {
	db *pgxpool.Pool
}

func NewSalesRepository(db *pgxpool.Pool) *SalesRepository {
	return &SalesRepository{db: db}
}

func (r *SalesRepository) Create(ctx context.Context, sale *models.Sale) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO sales (total_sales, cash_sales, card_sales, transfer_sales, sales_date, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at`,
		sale.TotalSales, sale.CashSales, sale.CardSales, sale.TransferSales,
		sale.SalesDate, time.Now(),
	).Scan(&sale.ID, &sale.CreatedAt)
	if err != nil {
		return &models.PersistenceError{Op: "insert sale", Err: err}
	}

	return nil
}

func (r *SalesRepository) FindAll(ctx context.Context) ([]models.Sale, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, total_sales, cash_sales, card_sales, transfer_sales, sales_date, created_at
		 FROM sales
		 ORDER BY sales_date DESC`)
	if err != nil {
		return nil, &models.PersistenceError{Op: "query sales", Err: err}
	}
	defer rows.Close()

	sales := []models.Sale{}
	for rows.Next() {
		var sale models.Sale
		if err := rows.Scan(&sale.ID, &sale.TotalSales, &sale.CashSales,
			&sale.CardSales, &sale.TransferSales, &sale.SalesDate, &sale.CreatedAt); err != nil {
			return nil, &models.PersistenceError{Op: "scan sale row", Err: err}
		}
		sales = append(sales, sale)
	}
	if err := rows.Err(); err != nil {
		return nil, &models.PersistenceError{Op: "iterate sale rows", Err: err}
	}

	return sales, nil
}

func (r *SalesRepository) FindByID(ctx context.Context, id int) (*models.Sale, error) {
	sale := &models.Sale{}
	err := r.db.QueryRow(ctx,
		`SELECT id, total_sales, cash_sales, card_sales, transfer_sales, sales_date, created_at
		 FROM sales WHERE id = $1`, id,
	).Scan(&sale.ID, &sale.TotalSales, &sale.CashSales,
		&sale.CardSales, &sale.TransferSales, &sale.SalesDate, &sale.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, &models.PersistenceError{Op: "query sale", Err: err}
	}

	return sale, nil
}

func (r *SalesRepository) Update(ctx context.Context, sale *models.Sale) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE sales
		 SET total_sales = $1, cash_sales = $2, card_sales = $3, transfer_sales = $4, sales_date = $5
		 WHERE id = $6`,
		sale.TotalSales, sale.CashSales, sale.CardSales, sale.TransferSales,
		sale.SalesDate, sale.ID)
	if err != nil {
		return &models.PersistenceError{Op: "update sale", Err: err}
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}

	return nil
}

func (r *SalesRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return &models.PersistenceError{Op: "delete sale", Err: err}
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}

	return nil
}
