package services

import (
	"context"
	"fmt"

	"restaurant-backend/models"

	"github.com/shopspring/decimal"
)

// OrderStore is the persistence boundary for orders. The pgx-backed
// implementation lives in the repositories package.
type OrderStore interface {
	Create(ctx context.Context, order *models.Order) error
	FindAll(ctx context.Context) ([]models.Order, error)
	FindByID(ctx context.Context, id int) (*models.Order, error)
	FindDetails(ctx context.Context, id int) (*models.Order, error)
	UpdateStatus(ctx context.Context, id int, status string) error
	Delete(ctx context.Context, id int) error
}

// MenuPriceStore resolves canonical catalog prices for order lines.
type MenuPriceStore interface {
	FindPricesByIDs(ctx context.Context, ids []int) (map[int]decimal.Decimal, error)
}

type OrderService struct {
	orders OrderStore
	menu   MenuPriceStore
}

func NewOrderService(orders OrderStore, menu MenuPriceStore) *OrderService {
	return &OrderService{orders: orders, menu: menu}
}

// Create validates the request, prices every line against the menu catalog,
// and persists the header plus all lines atomically. The returned id is the
// generated order id.
//
// A client-supplied unit price is only accepted when it matches the catalog
// price exactly; a missing price falls back to the catalog.
func (s *OrderService) Create(ctx context.Context, req models.CreateOrderRequest) (int, error) {
	if req.UserID == 0 {
		return 0, models.ValidationError{Field: "user_id", Message: "user id is required"}
	}
	if len(req.Items) == 0 {
		return 0, models.ValidationError{Field: "items", Message: "at least one item is required"}
	}

	ids := make([]int, 0, len(req.Items))
	seen := make(map[int]bool, len(req.Items))
	for i, item := range req.Items {
		if item.MenuItemID <= 0 {
			return 0, models.ValidationError{
				Field:   fmt.Sprintf("items[%d].menu_item_id", i),
				Message: "menu item id is required",
			}
		}
		if !seen[item.MenuItemID] {
			seen[item.MenuItemID] = true
			ids = append(ids, item.MenuItemID)
		}
	}

	prices, err := s.menu.FindPricesByIDs(ctx, ids)
	if err != nil {
		return 0, err
	}

	total := decimal.Zero
	lines := make([]models.OrderItem, 0, len(req.Items))

	for i, item := range req.Items {
		quantity := 1
		if item.Quantity != nil {
			quantity = *item.Quantity
		}
		if quantity < 1 {
			return 0, models.ValidationError{
				Field:   fmt.Sprintf("items[%d].quantity", i),
				Message: "quantity must be at least 1",
			}
		}

		price, ok := prices[item.MenuItemID]
		if !ok {
			return 0, models.ValidationError{
				Field:   fmt.Sprintf("items[%d].menu_item_id", i),
				Message: "menu item not found",
			}
		}

		if item.Price != nil {
			if item.Price.IsNegative() {
				return 0, models.ValidationError{
					Field:   fmt.Sprintf("items[%d].price", i),
					Message: "price must not be negative",
				}
			}
			if !item.Price.Equal(price) {
				return 0, models.ValidationError{
					Field:   fmt.Sprintf("items[%d].price", i),
					Message: fmt.Sprintf("price %s does not match the menu price %s", item.Price, price),
				}
			}
		}

		subtotal := price.Mul(decimal.NewFromInt(int64(quantity)))
		total = total.Add(subtotal)

		lines = append(lines, models.OrderItem{
			MenuItemID: item.MenuItemID,
			Quantity:   quantity,
			Subtotal:   subtotal,
		})
	}

	order := &models.Order{
		UserID:     req.UserID,
		EmployeeID: req.EmployeeID,
		Total:      total,
		Status:     models.StatusPending,
		Items:      lines,
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return 0, err
	}

	return order.ID, nil
}

func (s *OrderService) List(ctx context.Context) ([]models.Order, error) {
	return s.orders.FindAll(ctx)
}

// Details returns nil without error when the order does not exist.
func (s *OrderService) Details(ctx context.Context, id int) (*models.Order, error) {
	order, err := s.orders.FindDetails(ctx, id)
	if err != nil {
		if err == models.ErrNotFound {
			return nil, nil
		}
		return nil, err
	}

	return order, nil
}

func (s *OrderService) UpdateStatus(ctx context.Context, id int, status string) (*models.Order, error) {
	if !models.IsValidStatus(status) {
		return nil, models.ValidationError{
			Field:   "status",
			Message: fmt.Sprintf("unknown status %q", status),
		}
	}

	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !models.CanTransition(order.Status, status) {
		return nil, models.ValidationError{
			Field:   "status",
			Message: fmt.Sprintf("cannot transition from %q to %q", order.Status, status),
		}
	}

	if err := s.orders.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	order.Status = status
	return order, nil
}

func (s *OrderService) Delete(ctx context.Context, id int) error {
	if _, err := s.orders.FindByID(ctx, id); err != nil {
		return err
	}

	return s.orders.Delete(ctx, id)
}
