package repositories

import (
	"context"
	"errors"
	"time"

	"restaurant-backend/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type EmployeeRepository struct {
	db *pgxpool.Pool
}

func NewEmployeeRepository(db *pgxpool.Pool) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) Create(ctx context.Context, employee *models.Employee) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO employees (name, role, phone, status, password, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at`,
		employee.Name, employee.Role, employee.Phone, employee.Status,
		employee.Password, time.Now(),
	).Scan(&employee.ID, &employee.CreatedAt)
	if err != nil {
		return &models.PersistenceError{Op: "insert employee", Err: err}
	}

	return nil
}

func (r *EmployeeRepository) FindAll(ctx context.Context) ([]models.Employee, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, role, phone, status, created_at
		 FROM employees
		 ORDER BY id`)
	if err != nil {
		return nil, &models.PersistenceError{Op: "query employees", Err: err}
	}
	defer rows.Close()

	employees := []models.Employee{}
	for rows.Next() {
		var employee models.Employee
		if err := rows.Scan(&employee.ID, &employee.Name, &employee.Role,
			&employee.Phone, &employee.Status, &employee.CreatedAt); err != nil {
			return nil, &models.PersistenceError{Op: "scan employee row", Err: err}
		}
		employees = append(employees, employee)
	}
	if err := rows.Err(); err != nil {
		return nil, &models.PersistenceError{Op: "iterate employee rows", Err: err}
	}

	return employees, nil
}

func (r *EmployeeRepository) FindByID(ctx context.Context, id int) (*models.Employee, error) {
	employee := &models.Employee{}
	err := r.db.QueryRow(ctx,
		`SELECT id, name, role, phone, status, created_at
		 FROM employees WHERE id = $1`, id,
	).Scan(&employee.ID, &employee.Name, &employee.Role,
		&employee.Phone, &employee.Status, &employee.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, &models.PersistenceError{Op: "query employee", Err: err}
	}

	return employee, nil
}

func (r *EmployeeRepository) FindByPhone(ctx context.Context, phone string) (*models.Employee, error) {
	employee := &models.Employee{}
	err := r.db.QueryRow(ctx,
		`SELECT id, name, role, phone, status, COALESCE(password, ''), created_at
		 FROM employees WHERE phone = $1`, phone,
	).Scan(&employee.ID, &employee.Name, &employee.Role, &employee.Phone,
		&employee.Status, &employee.Password, &employee.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, &models.PersistenceError{Op: "query employee by phone", Err: err}
	}

	return employee, nil
}

func (r *EmployeeRepository) Update(ctx context.Context, employee *models.Employee) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE employees SET name = $1, role = $2, phone = $3, status = $4
		 WHERE id = $5`,
		employee.Name, employee.Role, employee.Phone, employee.Status, employee.ID)
	if err != nil {
		return &models.PersistenceError{Op: "update employee", Err: err}
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}

	return nil
}

// CountOrders reports how many orders reference the employee; deletion is
// refused while any do.
func (r *EmployeeRepository) CountOrders(ctx context.Context, employeeID int) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM orders WHERE employee_id = $1`, employeeID,
	).Scan(&count)
	if err != nil {
		return 0, &models.PersistenceError{Op: "count employee orders", Err: err}
	}

	return count, nil
}

func (r *EmployeeRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return &models.PersistenceError{Op: "delete employee", Err: err}
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}

	return nil
}
