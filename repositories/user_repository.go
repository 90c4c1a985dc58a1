package repositories

import (
	"context"
	"errors"
	"time"

	"restaurant-backend/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a user with a caller-supplied id. Ids are assigned by the
// chat channel, not generated here.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO users (id, name, phone, created_at)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at`,
		user.ID, user.Name, user.Phone, time.Now(),
	).Scan(&user.CreatedAt)
	if err != nil {
		return &models.PersistenceError{Op: "insert user", Err: err}
	}

	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int) (*models.User, error) {
	user := &models.User{}
	err := r.db.QueryRow(ctx,
		`SELECT id, name, phone, created_at FROM users WHERE id = $1`, id,
	).Scan(&user.ID, &user.Name, &user.Phone, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, &models.PersistenceError{Op: "query user", Err: err}
	}

	return user, nil
}

func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE users SET name = $1, phone = $2 WHERE id = $3`,
		user.Name, user.Phone, user.ID)
	if err != nil {
		return &models.PersistenceError{Op: "update user", Err: err}
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}

	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return &models.PersistenceError{Op: "delete user", Err: err}
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}

	return nil
}
