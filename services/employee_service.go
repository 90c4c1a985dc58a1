package services

import (
	"context"

	"restaurant-backend/models"
	"restaurant-backend/repositories"
)

type EmployeeService struct {
	employeeRepo *repositories.EmployeeRepository
}

func NewEmployeeService(employeeRepo *repositories.EmployeeRepository) *EmployeeService {
	return &EmployeeService{employeeRepo: employeeRepo}
}

func (s *EmployeeService) List(ctx context.Context) ([]models.Employee, error) {
	return s.employeeRepo.FindAll(ctx)
}

func (s *EmployeeService) Get(ctx context.Context, id int) (*models.Employee, error) {
	return s.employeeRepo.FindByID(ctx, id)
}

func (s *EmployeeService) Create(ctx context.Context, req models.CreateEmployeeRequest) (*models.Employee, error) {
	status := true
	if req.Status != nil {
		status = *req.Status
	}

	employee := &models.Employee{
		Name:   req.Name,
		Role:   req.Role,
		Phone:  req.Phone,
		Status: status,
	}

	if err := s.employeeRepo.Create(ctx, employee); err != nil {
		return nil, err
	}

	return employee, nil
}

func (s *EmployeeService) Update(ctx context.Context, id int, req models.UpdateEmployeeRequest) (*models.Employee, error) {
	employee, err := s.employeeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		employee.Name = *req.Name
	}
	if req.Role != nil {
		employee.Role = *req.Role
	}
	if req.Phone != nil {
		employee.Phone = *req.Phone
	}
	if req.Status != nil {
		employee.Status = *req.Status
	}

	if err := s.employeeRepo.Update(ctx, employee); err != nil {
		return nil, err
	}

	return employee, nil
}

// Delete refuses to remove an employee who is still referenced by orders.
func (s *EmployeeService) Delete(ctx context.Context, id int) error {
	if _, err := s.employeeRepo.FindByID(ctx, id); err != nil {
		return err
	}

	count, err := s.employeeRepo.CountOrders(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return models.ValidationError{
			Field:   "employee_id",
			Message: "cannot delete employee: orders reference this employee",
		}
	}

	return s.employeeRepo.Delete(ctx, id)
}
