package repositories

import (
	"context"
	"errors"
	"time"

	"restaurant-backend/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type MenuRepository struct {
	db *pgxpool.Pool
}

func NewMenuRepository(db *pgxpool.Pool) *MenuRepository {
	return &MenuRepository{db: db}
}

func (r *MenuRepository) Create(ctx context.Context, item *models.MenuItem) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO menu_items (name, description, price, available, created_at)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		item.Name, item.Description, item.Price, item.Available, time.Now(),
	).Scan(&item.ID, &item.CreatedAt)
	if err != nil {
		return &models.PersistenceError{Op: "insert menu item", Err: err}
	}

	return nil
}

func (r *MenuRepository) FindAll(ctx context.Context) ([]models.MenuItem, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, description, price, available, created_at
		 FROM menu_items
		 ORDER BY id`)
	if err != nil {
		return nil, &models.PersistenceError{Op: "query menu items", Err: err}
	}
	defer rows.Close()

	items := []models.MenuItem{}
	for rows.Next() {
		var item models.MenuItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Description,
			&item.Price, &item.Available, &item.CreatedAt); err != nil {
			return nil, &models.PersistenceError{Op: "scan menu item row", Err: err}
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, &models.PersistenceError{Op: "iterate menu item rows", Err: err}
	}

	return items, nil
}

func (r *MenuRepository) FindByID(ctx context.Context, id int) (*models.MenuItem, error) {
	item := &models.MenuItem{}
	err := r.db.QueryRow(ctx,
		`SELECT id, name, description, price, available, created_at
		 FROM menu_items WHERE id = $1`, id,
	).Scan(&item.ID, &item.Name, &item.Description,
		&item.Price, &item.Available, &item.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, &models.PersistenceError{Op: "query menu item", Err: err}
	}

	return item, nil
}

// FindPricesByIDs returns the canonical price for each requested menu item id.
// Ids missing from the result were not found in the catalog.
func (r *MenuRepository) FindPricesByIDs(ctx context.Context, ids []int) (map[int]decimal.Decimal, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, price FROM menu_items WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, &models.PersistenceError{Op: "query menu prices", Err: err}
	}
	defer rows.Close()

	prices := make(map[int]decimal.Decimal, len(ids))
	for rows.Next() {
		var id int
		var price decimal.Decimal
		if err := rows.Scan(&id, &price); err != nil {
			return nil, &models.PersistenceError{Op: "scan menu price row", Err: err}
		}
		prices[id] = price
	}
	if err := rows.Err(); err != nil {
		return nil, &models.PersistenceError{Op: "iterate menu price rows", Err: err}
	}

	return prices, nil
}

func (r *MenuRepository) Update(ctx context.Context, item *models.MenuItem) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE menu_items
		 SET name = $1, description = $2, price = $3, available = $4
		 WHERE id = $5`,
		item.Name, item.Description, item.Price, item.Available, item.ID)
	if err != nil {
		return &models.PersistenceError{Op: "update menu item", Err: err}
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}

	return nil
}

func (r *MenuRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM menu_items WHERE id = $1`, id)
	if err != nil {
		return &models.PersistenceError{Op: "delete menu item", Err: err}
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}

	return nil
}
