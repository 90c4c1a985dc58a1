package services

import (
	"context"
	"errors"
	"testing"

	"restaurant-backend/models"

	"github.com/shopspring/decimal"
)

type fakeOrderItemStore struct {
	items   map[int]*models.OrderItem
	updated *models.OrderItem
	deleted *models.OrderItem
}

func newFakeOrderItemStore() *fakeOrderItemStore {
	return &fakeOrderItemStore{items: make(map[int]*models.OrderItem)}
}

func (f *fakeOrderItemStore) Create(ctx context.Context, item *models.OrderItem) error {
	item.ID = 11
	f.items[item.ID] = item
	return nil
}

func (f *fakeOrderItemStore) FindByID(ctx context.Context, id int) (*models.OrderItem, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	copied := *item
	return &copied, nil
}

func (f *fakeOrderItemStore) FindByOrder(ctx context.Context, orderID int) ([]models.OrderItem, error) {
	out := []models.OrderItem{}
	for _, item := range f.items {
		if item.OrderID == orderID {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (f *fakeOrderItemStore) Update(ctx context.Context, item *models.OrderItem) error {
	f.updated = item
	f.items[item.ID] = item
	return nil
}

func (f *fakeOrderItemStore) Delete(ctx context.Context, item *models.OrderItem) error {
	f.deleted = item
	delete(f.items, item.ID)
	return nil
}

func TestOrderItemServiceCreate(t *testing.T) {
	t.Run("computes the subtotal", func(t *testing.T) {
		store := newFakeOrderItemStore()
		svc := NewOrderItemService(store)

		item, err := svc.Create(context.Background(), models.CreateOrderItemRequest{
			OrderID:    3,
			MenuItemID: 1,
			Quantity:   3,
			Price:      decimal.RequireFromString("25.50"),
		})
		if err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
		if want := decimal.RequireFromString("76.50"); !item.Subtotal.Equal(want) {
			t.Errorf("subtotal = %s, want %s", item.Subtotal, want)
		}
	})

	t.Run("rejects quantity below 1", func(t *testing.T) {
		svc := NewOrderItemService(newFakeOrderItemStore())

		_, err := svc.Create(context.Background(), models.CreateOrderItemRequest{
			OrderID:    3,
			MenuItemID: 1,
			Quantity:   0,
			Price:      decimal.RequireFromString("25.50"),
		})
		var validationErr models.ValidationError
		if !errors.As(err, &validationErr) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("rejects a negative price", func(t *testing.T) {
		svc := NewOrderItemService(newFakeOrderItemStore())

		_, err := svc.Create(context.Background(), models.CreateOrderItemRequest{
			OrderID:    3,
			MenuItemID: 1,
			Quantity:   1,
			Price:      decimal.RequireFromString("-1"),
		})
		var validationErr models.ValidationError
		if !errors.As(err, &validationErr) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})
}

func TestOrderItemServiceUpdate(t *testing.T) {
	t.Run("keeps the frozen unit price when only quantity changes", func(t *testing.T) {
		store := newFakeOrderItemStore()
		store.items[11] = &models.OrderItem{
			ID:         11,
			OrderID:    3,
			MenuItemID: 1,
			Quantity:   2,
			Subtotal:   decimal.RequireFromString("300.00"),
		}
		svc := NewOrderItemService(store)

		qty := 3
		item, err := svc.Update(context.Background(), 11, models.UpdateOrderItemRequest{Quantity: &qty})
		if err != nil {
			t.Fatalf("Update returned error: %v", err)
		}
		if want := decimal.RequireFromString("450"); !item.Subtotal.Equal(want) {
			t.Errorf("subtotal = %s, want %s", item.Subtotal, want)
		}
	})

	t.Run("uses an explicit price when given", func(t *testing.T) {
		store := newFakeOrderItemStore()
		store.items[11] = &models.OrderItem{
			ID:         11,
			OrderID:    3,
			MenuItemID: 1,
			Quantity:   2,
			Subtotal:   decimal.RequireFromString("300.00"),
		}
		svc := NewOrderItemService(store)

		price := decimal.RequireFromString("10.00")
		item, err := svc.Update(context.Background(), 11, models.UpdateOrderItemRequest{Price: &price})
		if err != nil {
			t.Fatalf("Update returned error: %v", err)
		}
		if want := decimal.RequireFromString("20.00"); !item.Subtotal.Equal(want) {
			t.Errorf("subtotal = %s, want %s", item.Subtotal, want)
		}
	})

	t.Run("returns not found for a missing line", func(t *testing.T) {
		svc := NewOrderItemService(newFakeOrderItemStore())

		qty := 3
		_, err := svc.Update(context.Background(), 404, models.UpdateOrderItemRequest{Quantity: &qty})
		if !errors.Is(err, models.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestOrderItemServiceGet(t *testing.T) {
	t.Run("returns nil for a missing line", func(t *testing.T) {
		svc := NewOrderItemService(newFakeOrderItemStore())

		item, err := svc.Get(context.Background(), 404)
		if err != nil {
			t.Fatalf("Get returned error: %v", err)
		}
		if item != nil {
			t.Errorf("expected nil item, got %+v", item)
		}
	})
}
