package services

import (
	"context"

	"restaurant-backend/models"
	"restaurant-backend/repositories"
)

type PaymentService struct {
	paymentRepo *repositories.PaymentRepository
	orderRepo   *repositories.OrderRepository
}

func NewPaymentService(paymentRepo *repositories.PaymentRepository, orderRepo *repositories.OrderRepository) *PaymentService {
	return &PaymentService{paymentRepo: paymentRepo, orderRepo: orderRepo}
}

func (s *PaymentService) Create(ctx context.Context, req models.CreatePaymentRequest) (*models.Payment, error) {
	if req.Amount.IsNegative() {
		return nil, models.ValidationError{Field: "amount", Message: "amount must not be negative"}
	}

	if _, err := s.orderRepo.FindByID(ctx, req.OrderID); err != nil {
		return nil, err
	}

	payment := &models.Payment{
		OrderID:       req.OrderID,
		PaymentMethod: req.PaymentMethod,
		Amount:        req.Amount,
	}

	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	return payment, nil
}

func (s *PaymentService) Get(ctx context.Context, id int) (*models.Payment, error) {
	payment, err := s.paymentRepo.FindByID(ctx, id)
	if err != nil {
		if err == models.ErrNotFound {
			return nil, nil
		}
		return nil, err
	}

	return payment, nil
}

func (s *PaymentService) ListByOrder(ctx context.Context, orderID int) ([]models.Payment, error) {
	return s.paymentRepo.FindByOrder(ctx, orderID)
}

func (s *PaymentService) Update(ctx context.Context, id int, req models.UpdatePaymentRequest) (*models.Payment, error) {
	payment, err := s.paymentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.PaymentMethod != nil {
		payment.PaymentMethod = *req.PaymentMethod
	}
	if req.Amount != nil {
		if req.Amount.IsNegative() {
			return nil, models.ValidationError{Field: "amount", Message: "amount must not be negative"}
		}
		payment.Amount = *req.Amount
	}

	if err := s.paymentRepo.Update(ctx, payment); err != nil {
		return nil, err
	}

	return payment, nil
}

func (s *PaymentService) Delete(ctx context.Context, id int) error {
	if _, err := s.paymentRepo.FindByID(ctx, id); err != nil {
		return err
	}

	return s.paymentRepo.Delete(ctx, id)
}
