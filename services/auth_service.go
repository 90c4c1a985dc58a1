package services

import (
	"context"

	"restaurant-backend/models"
	"restaurant-backend/repositories"
	"restaurant-backend/utils"
)

type AuthService struct {
	employeeRepo *repositories.EmployeeRepository
}

// errInvalidCredentials does not reveal whether the phone exists.
var errInvalidCredentials = models.ValidationError{Field: "credentials", Message: "invalid phone or password"}

func NewAuthService(employeeRepo *repositories.EmployeeRepository) *AuthService {
	return &AuthService{employeeRepo: employeeRepo}
}

func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.LoginResponse, error) {
	existing, err := s.employeeRepo.FindByPhone(ctx, req.Phone)
	if err != nil && err != models.ErrNotFound {
		return nil, err
	}
	if existing != nil {
		return nil, models.ValidationError{Field: "phone", Message: "phone already registered"}
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	employee := &models.Employee{
		Name:     req.Name,
		Role:     req.Role,
		Phone:    req.Phone,
		Status:   true,
		Password: hashedPassword,
	}

	if err := s.employeeRepo.Create(ctx, employee); err != nil {
		return nil, err
	}

	token, err := utils.GenerateToken(employee.ID, employee.Phone, employee.Role)
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{
		Token:    token,
		Employee: *employee,
	}, nil
}

func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	employee, err := s.employeeRepo.FindByPhone(ctx, req.Phone)
	if err != nil {
		return nil, errInvalidCredentials
	}

	valid, err := utils.VerifyPassword(employee.Password, req.Password)
	if err != nil || !valid {
		return nil, errInvalidCredentials
	}

	token, err := utils.GenerateToken(employee.ID, employee.Phone, employee.Role)
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{
		Token:    token,
		Employee: *employee,
	}, nil
}
