package repositories

import (
	"context"
	"errors"
	"time"

	"restaurant-backend/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OrderRepository struct {
	db *pgxpool.Pool
}

func NewOrderRepository(db *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{db: db}
}

// Create inserts the order header and all of its lines in a single
// transaction. On any failure the transaction is rolled back and no rows
// remain.
func (r *OrderRepository) Create(ctx context.Context, order *models.Order) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return &models.PersistenceError{Op: "begin create order transaction", Err: err}
	}
	defer tx.Rollback(ctx)

	now := time.Now()

	err = tx.QueryRow(ctx,
		`INSERT INTO orders (user_id, employee_id, total, status, created_at)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		order.UserID, order.EmployeeID, order.Total, order.Status, now,
	).Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		return &models.PersistenceError{Op: "insert order", Err: err}
	}

	for i := range order.Items {
		item := &order.Items[i]
		err = tx.QueryRow(ctx,
			`INSERT INTO order_items (order_id, menu_item_id, quantity, subtotal, created_at)
			 VALUES ($1, $2, $3, $4, $5)
			 RETURNING id, created_at`,
			order.ID, item.MenuItemID, item.Quantity, item.Subtotal, now,
		).Scan(&item.ID, &item.CreatedAt)
		if err != nil {
			return &models.PersistenceError{Op: "insert order item", Err: err}
		}
		item.OrderID = order.ID
	}

	if err = tx.Commit(ctx); err != nil {
		return &models.PersistenceError{Op: "commit create order transaction", Err: err}
	}

	return nil
}

func (r *OrderRepository) FindAll(ctx context.Context) ([]models.Order, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, employee_id, total, status, created_at
		 FROM orders
		 ORDER BY created_at DESC`)
	if err != nil {
		return nil, &models.PersistenceError{Op: "query orders", Err: err}
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		var order models.Order
		if err := rows.Scan(&order.ID, &order.UserID, &order.EmployeeID,
			&order.Total, &order.Status, &order.CreatedAt); err != nil {
			return nil, &models.PersistenceError{Op: "scan order row", Err: err}
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, &models.PersistenceError{Op: "iterate order rows", Err: err}
	}

	return orders, nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id int) (*models.Order, error) {
	order := &models.Order{}
	err := r.db.QueryRow(ctx,
		`SELECT id, user_id, employee_id, total, status, created_at
		 FROM orders WHERE id = $1`, id,
	).Scan(&order.ID, &order.UserID, &order.EmployeeID,
		&order.Total, &order.Status, &order.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, &models.PersistenceError{Op: "query order", Err: err}
	}

	return order, nil
}

// FindDetails returns the header together with its lines, oldest line first.
func (r *OrderRepository) FindDetails(ctx context.Context, id int) (*models.Order, error) {
	order, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, order_id, menu_item_id, quantity, subtotal, created_at
		 FROM order_items
		 WHERE order_id = $1
		 ORDER BY id`, id)
	if err != nil {
		return nil, &models.PersistenceError{Op: "query order items", Err: err}
	}
	defer rows.Close()

	order.Items = []models.OrderItem{}
	for rows.Next() {
		var item models.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.MenuItemID,
			&item.Quantity, &item.Subtotal, &item.CreatedAt); err != nil {
			return nil, &models.PersistenceError{Op: "scan order item row", Err: err}
		}
		order.Items = append(order.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, &models.PersistenceError{Op: "iterate order item rows", Err: err}
	}

	return order, nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, id int, status string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE orders SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return &models.PersistenceError{Op: "update order status", Err: err}
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}

	return nil
}

// Delete removes the order's lines, then the header, as one atomic unit.
func (r *OrderRepository) Delete(ctx context.Context, id int) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return &models.PersistenceError{Op: "begin delete order transaction", Err: err}
	}
	defer tx.Rollback(ctx)

	if _, err = tx.Exec(ctx, `DELETE FROM order_items WHERE order_id = $1`, id); err != nil {
		return &models.PersistenceError{Op: "delete order items", Err: err}
	}

	tag, err := tx.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return &models.PersistenceError{Op: "delete order", Err: err}
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}

	if err = tx.Commit(ctx); err != nil {
		return &models.PersistenceError{Op: "commit delete order transaction", Err: err}
	}

	return nil
}
