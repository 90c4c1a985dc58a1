package repositories

import (
	"context"
	"errors"
	"time"

	"restaurant-backend/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OrderItemRepository struct {
	db *pgxpool.Pool
}

func NewOrderItemRepository(db *pgxpool.Pool) *OrderItemRepository {
	return &OrderItemRepository{db: db}
}

// recomputeOrderTotal keeps the parent header consistent with its lines.
// Must run inside the same transaction as the line mutation.
func recomputeOrderTotal(ctx context.Context, tx pgx.Tx, orderID int) error {
	_, err := tx.Exec(ctx,
		`UPDATE orders
		 SET total = (SELECT COALESCE(SUM(subtotal), 0) FROM order_items WHERE order_id = $1)
		 WHERE id = $1`, orderID)
	return err
}

func (r *OrderItemRepository) Create(ctx context.Context, item *models.OrderItem) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return &models.PersistenceError{Op: "begin create order item transaction", Err: err}
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO order_items (order_id, menu_item_id, quantity, subtotal, created_at)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		item.OrderID, item.MenuItemID, item.Quantity, item.Subtotal, time.Now(),
	).Scan(&item.ID, &item.CreatedAt)
	if err != nil {
		return &models.PersistenceError{Op: "insert order item", Err: err}
	}

	if err = recomputeOrderTotal(ctx, tx, item.OrderID); err != nil {
		return &models.PersistenceError{Op: "recompute order total", Err: err}
	}

	if err = tx.Commit(ctx); err != nil {
		return &models.PersistenceError{Op: "commit create order item transaction", Err: err}
	}

	return nil
}

func (r *OrderItemRepository) FindByID(ctx context.Context, id int) (*models.OrderItem, error) {
	item := &models.OrderItem{}
	err := r.db.QueryRow(ctx,
		`SELECT id, order_id, menu_item_id, quantity, subtotal, created_at
		 FROM order_items WHERE id = $1`, id,
	).Scan(&item.ID, &item.OrderID, &item.MenuItemID,
		&item.Quantity, &item.Subtotal, &item.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, &models.PersistenceError{Op: "query order item", Err: err}
	}

	return item, nil
}

func (r *OrderItemRepository) FindByOrder(ctx context.Context, orderID int) ([]models.OrderItem, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, order_id, menu_item_id, quantity, subtotal, created_at
		 FROM order_items
		 WHERE order_id = $1
		 ORDER BY id`, orderID)
	if err != nil {
		return nil, &models.PersistenceError{Op: "query order items", Err: err}
	}
	defer rows.Close()

	items := []models.OrderItem{}
	for rows.Next() {
		var item models.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.MenuItemID,
			&item.Quantity, &item.Subtotal, &item.CreatedAt); err != nil {
			return nil, &models.PersistenceError{Op: "scan order item row", Err: err}
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, &models.PersistenceError{Op: "iterate order item rows", Err: err}
	}

	return items, nil
}

func (r *OrderItemRepository) Update(ctx context.Context, item *models.OrderItem) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return &models.PersistenceError{Op: "begin update order item transaction", Err: err}
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx,
		`UPDATE order_items
		 SET menu_item_id = $1, quantity = $2, subtotal = $3
		 WHERE id = $4`,
		item.MenuItemID, item.Quantity, item.Subtotal, item.ID)
	if err != nil {
		return &models.PersistenceError{Op: "update order item", Err: err}
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}

	if err = recomputeOrderTotal(ctx, tx, item.OrderID); err != nil {
		return &models.PersistenceError{Op: "recompute order total", Err: err}
	}

	if err = tx.Commit(ctx); err != nil {
		return &models.PersistenceError{Op: "commit update order item transaction", Err: err}
	}

	return nil
}

func (r *OrderItemRepository) Delete(ctx context.Context, item *models.OrderItem) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return &models.PersistenceError{Op: "begin delete order item transaction", Err: err}
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `DELETE FROM order_items WHERE id = $1`, item.ID)
	if err != nil {
		return &models.PersistenceError{Op: "delete order item", Err: err}
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}

	if err = recomputeOrderTotal(ctx, tx, item.OrderID); err != nil {
		return &models.PersistenceError{Op: "recompute order total", Err: err}
	}

	if err = tx.Commit(ctx); err != nil {
		return &models.PersistenceError{Op: "commit delete order item transaction", Err: err}
	}

	return nil
}
