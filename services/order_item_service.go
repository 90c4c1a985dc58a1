package services

import (
	"context"

	"restaurant-backend/models"

	"github.com/shopspring/decimal"
)

type OrderItemStore interface {
	Create(ctx context.Context, item *models.OrderItem) error
	FindByID(ctx context.Context, id int) (*models.OrderItem, error)
	FindByOrder(ctx context.Context, orderID int) ([]models.OrderItem, error)
	Update(ctx context.Context, item *models.OrderItem) error
	Delete(ctx context.Context, item *models.OrderItem) error
}

type OrderItemService struct {
	items OrderItemStore
}

func NewOrderItemService(items OrderItemStore) *OrderItemService {
	return &OrderItemService{items: items}
}

func (s *OrderItemService) Create(ctx context.Context, req models.CreateOrderItemRequest) (*models.OrderItem, error) {
	if req.Quantity < 1 {
		return nil, models.ValidationError{Field: "quantity", Message: "quantity must be at least 1"}
	}
	if req.Price.IsNegative() {
		return nil, models.ValidationError{Field: "price", Message: "price must not be negative"}
	}

	item := &models.OrderItem{
		OrderID:    req.OrderID,
		MenuItemID: req.MenuItemID,
		Quantity:   req.Quantity,
		Subtotal:   req.Price.Mul(decimal.NewFromInt(int64(req.Quantity))),
	}

	if err := s.items.Create(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

func (s *OrderItemService) Get(ctx context.Context, id int) (*models.OrderItem, error) {
	item, err := s.items.FindByID(ctx, id)
	if err != nil {
		if err == models.ErrNotFound {
			return nil, nil
		}
		return nil, err
	}

	return item, nil
}

func (s *OrderItemService) ListByOrder(ctx context.Context, orderID int) ([]models.OrderItem, error) {
	return s.items.FindByOrder(ctx, orderID)
}

// Update adjusts a line and recomputes its subtotal. When the quantity
// changes without an explicit price, the frozen unit price is derived from
// the existing subtotal so the line keeps its creation-time pricing.
func (s *OrderItemService) Update(ctx context.Context, id int, req models.UpdateOrderItemRequest) (*models.OrderItem, error) {
	item, err := s.items.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	unitPrice := item.Subtotal.Div(decimal.NewFromInt(int64(item.Quantity)))

	if req.Price != nil {
		if req.Price.IsNegative() {
			return nil, models.ValidationError{Field: "price", Message: "price must not be negative"}
		}
		unitPrice = *req.Price
	}

	if req.Quantity != nil {
		if *req.Quantity < 1 {
			return nil, models.ValidationError{Field: "quantity", Message: "quantity must be at least 1"}
		}
		item.Quantity = *req.Quantity
	}

	if req.MenuItemID != nil {
		item.MenuItemID = *req.MenuItemID
	}

	item.Subtotal = unitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))

	if err := s.items.Update(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

func (s *OrderItemService) Delete(ctx context.Context, id int) error {
	item, err := s.items.FindByID(ctx, id)
	if err != nil {
		return err
	}

	return s.items.Delete(ctx, item)
}
