package services

import (
	"context"
	"errors"
	"testing"

	"restaurant-backend/models"

	"github.com/shopspring/decimal"
)

type fakeOrderStore struct {
	created   *models.Order
	createErr error
	orders    map[int]*models.Order
	statuses  map[int]string
	deleted   []int
}

func newFakeOrderStore() *fakeOrderStore {
	return &fakeOrderStore{
		orders:   make(map[int]*models.Order),
		statuses: make(map[int]string),
	}
}

func (f *fakeOrderStore) Create(ctx context.Context, order *models.Order) error {
	if f.createErr != nil {
		return f.createErr
	}
	order.ID = 42
	f.created = order
	return nil
}

func (f *fakeOrderStore) FindAll(ctx context.Context) ([]models.Order, error) {
	out := make([]models.Order, 0, len(f.orders))
	for _, o := range f.orders {
		out = append(out, *o)
	}
	return out, nil
}

func (f *fakeOrderStore) FindByID(ctx context.Context, id int) (*models.Order, error) {
	order, ok := f.orders[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	copied := *order
	return &copied, nil
}

func (f *fakeOrderStore) FindDetails(ctx context.Context, id int) (*models.Order, error) {
	return f.FindByID(ctx, id)
}

func (f *fakeOrderStore) UpdateStatus(ctx context.Context, id int, status string) error {
	if _, ok := f.orders[id]; !ok {
		return models.ErrNotFound
	}
	f.statuses[id] = status
	f.orders[id].Status = status
	return nil
}

func (f *fakeOrderStore) Delete(ctx context.Context, id int) error {
	if _, ok := f.orders[id]; !ok {
		return models.ErrNotFound
	}
	delete(f.orders, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeMenuStore struct {
	prices map[int]decimal.Decimal
	err    error
}

func (f *fakeMenuStore) FindPricesByIDs(ctx context.Context, ids []int) (map[int]decimal.Decimal, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make(map[int]decimal.Decimal)
	for _, id := range ids {
		if price, ok := f.prices[id]; ok {
			out[id] = price
		}
	}
	return out, nil
}

func TestOrderServiceCreate(t *testing.T) {
	menu := &fakeMenuStore{prices: map[int]decimal.Decimal{
		1: decimal.RequireFromString("150.00"),
		2: decimal.RequireFromString("60.00"),
	}}

	t.Run("prices lines from the catalog and derives the total", func(t *testing.T) {
		store := newFakeOrderStore()
		svc := NewOrderService(store, menu)

		qty2 := 2
		id, err := svc.Create(context.Background(), models.CreateOrderRequest{
			UserID: 7,
			Items: []models.OrderItemRequest{
				{MenuItemID: 1, Quantity: &qty2},
				{MenuItemID: 2},
			},
		})
		if err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
		if id != 42 {
			t.Errorf("expected order id 42, got %d", id)
		}

		order := store.created
		if order == nil {
			t.Fatal("order was not persisted")
		}
		if want := decimal.RequireFromString("360.00"); !order.Total.Equal(want) {
			t.Errorf("total = %s, want %s", order.Total, want)
		}
		if order.Status != models.StatusPending {
			t.Errorf("status = %q, want %q", order.Status, models.StatusPending)
		}
		if len(order.Items) != 2 {
			t.Fatalf("expected 2 lines, got %d", len(order.Items))
		}
		if want := decimal.RequireFromString("300.00"); !order.Items[0].Subtotal.Equal(want) {
			t.Errorf("line 0 subtotal = %s, want %s", order.Items[0].Subtotal, want)
		}
		if order.Items[1].Quantity != 1 {
			t.Errorf("missing quantity should default to 1, got %d", order.Items[1].Quantity)
		}
		if want := decimal.RequireFromString("60.00"); !order.Items[1].Subtotal.Equal(want) {
			t.Errorf("line 1 subtotal = %s, want %s", order.Items[1].Subtotal, want)
		}
	})

	t.Run("accepts a client price that matches the catalog", func(t *testing.T) {
		store := newFakeOrderStore()
		svc := NewOrderService(store, menu)

		price := decimal.RequireFromString("150.00")
		_, err := svc.Create(context.Background(), models.CreateOrderRequest{
			UserID: 7,
			Items:  []models.OrderItemRequest{{MenuItemID: 1, Price: &price}},
		})
		if err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
	})

	t.Run("rejects a client price that differs from the catalog", func(t *testing.T) {
		store := newFakeOrderStore()
		svc := NewOrderService(store, menu)

		price := decimal.RequireFromString("1.00")
		_, err := svc.Create(context.Background(), models.CreateOrderRequest{
			UserID: 7,
			Items:  []models.OrderItemRequest{{MenuItemID: 1, Price: &price}},
		})
		var validationErr models.ValidationError
		if !errors.As(err, &validationErr) {
			t.Fatalf("expected validation error, got %v", err)
		}
		if store.created != nil {
			t.Error("nothing should be persisted on a rejected order")
		}
	})

	t.Run("rejects a negative client price", func(t *testing.T) {
		store := newFakeOrderStore()
		svc := NewOrderService(store, menu)

		price := decimal.RequireFromString("-5.00")
		_, err := svc.Create(context.Background(), models.CreateOrderRequest{
			UserID: 7,
			Items:  []models.OrderItemRequest{{MenuItemID: 1, Price: &price}},
		})
		var validationErr models.ValidationError
		if !errors.As(err, &validationErr) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("rejects missing user id", func(t *testing.T) {
		svc := NewOrderService(newFakeOrderStore(), menu)

		_, err := svc.Create(context.Background(), models.CreateOrderRequest{
			Items: []models.OrderItemRequest{{MenuItemID: 1}},
		})
		var validationErr models.ValidationError
		if !errors.As(err, &validationErr) {
			t.Fatalf("expected validation error, got %v", err)
		}
		if validationErr.Field != "user_id" {
			t.Errorf("field = %q, want user_id", validationErr.Field)
		}
	})

	t.Run("rejects empty items", func(t *testing.T) {
		svc := NewOrderService(newFakeOrderStore(), menu)

		_, err := svc.Create(context.Background(), models.CreateOrderRequest{UserID: 7})
		var validationErr models.ValidationError
		if !errors.As(err, &validationErr) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("rejects quantity below 1", func(t *testing.T) {
		svc := NewOrderService(newFakeOrderStore(), menu)

		zero := 0
		_, err := svc.Create(context.Background(), models.CreateOrderRequest{
			UserID: 7,
			Items:  []models.OrderItemRequest{{MenuItemID: 1, Quantity: &zero}},
		})
		var validationErr models.ValidationError
		if !errors.As(err, &validationErr) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("rejects unknown menu item", func(t *testing.T) {
		store := newFakeOrderStore()
		svc := NewOrderService(store, menu)

		_, err := svc.Create(context.Background(), models.CreateOrderRequest{
			UserID: 7,
			Items:  []models.OrderItemRequest{{MenuItemID: 999}},
		})
		var validationErr models.ValidationError
		if !errors.As(err, &validationErr) {
			t.Fatalf("expected validation error, got %v", err)
		}
		if store.created != nil {
			t.Error("nothing should be persisted for an unknown menu item")
		}
	})

	t.Run("propagates store errors", func(t *testing.T) {
		store := newFakeOrderStore()
		store.createErr = errors.New("connection reset")
		svc := NewOrderService(store, menu)

		_, err := svc.Create(context.Background(), models.CreateOrderRequest{
			UserID: 7,
			Items:  []models.OrderItemRequest{{MenuItemID: 1}},
		})
		if err == nil || err.Error() != "connection reset" {
			t.Fatalf("expected store error, got %v", err)
		}
	})
}

func TestOrderServiceUpdateStatus(t *testing.T) {
	menu := &fakeMenuStore{prices: map[int]decimal.Decimal{}}

	t.Run("allows pending to completed", func(t *testing.T) {
		store := newFakeOrderStore()
		store.orders[5] = &models.Order{ID: 5, Status: models.StatusPending}
		svc := NewOrderService(store, menu)

		order, err := svc.UpdateStatus(context.Background(), 5, models.StatusCompleted)
		if err != nil {
			t.Fatalf("UpdateStatus returned error: %v", err)
		}
		if order.Status != models.StatusCompleted {
			t.Errorf("status = %q, want completed", order.Status)
		}
		if store.statuses[5] != models.StatusCompleted {
			t.Error("status was not persisted")
		}
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		store := newFakeOrderStore()
		store.orders[5] = &models.Order{ID: 5, Status: models.StatusPending}
		svc := NewOrderService(store, menu)

		_, err := svc.UpdateStatus(context.Background(), 5, "shipped")
		var validationErr models.ValidationError
		if !errors.As(err, &validationErr) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("rejects transitions out of a terminal state", func(t *testing.T) {
		store := newFakeOrderStore()
		store.orders[5] = &models.Order{ID: 5, Status: models.StatusCompleted}
		svc := NewOrderService(store, menu)

		_, err := svc.UpdateStatus(context.Background(), 5, models.StatusCancelled)
		var validationErr models.ValidationError
		if !errors.As(err, &validationErr) {
			t.Fatalf("expected validation error, got %v", err)
		}
		if _, persisted := store.statuses[5]; persisted {
			t.Error("rejected transition must not be persisted")
		}
	})

	t.Run("returns not found for a missing order", func(t *testing.T) {
		svc := NewOrderService(newFakeOrderStore(), menu)

		_, err := svc.UpdateStatus(context.Background(), 404, models.StatusCompleted)
		if !errors.Is(err, models.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestOrderServiceDetails(t *testing.T) {
	menu := &fakeMenuStore{prices: map[int]decimal.Decimal{}}

	t.Run("returns nil for a missing order", func(t *testing.T) {
		svc := NewOrderService(newFakeOrderStore(), menu)

		order, err := svc.Details(context.Background(), 404)
		if err != nil {
			t.Fatalf("Details returned error: %v", err)
		}
		if order != nil {
			t.Errorf("expected nil order, got %+v", order)
		}
	})
}

func TestOrderServiceDelete(t *testing.T) {
	menu := &fakeMenuStore{prices: map[int]decimal.Decimal{}}

	t.Run("deletes an existing order", func(t *testing.T) {
		store := newFakeOrderStore()
		store.orders[5] = &models.Order{ID: 5, Status: models.StatusPending}
		svc := NewOrderService(store, menu)

		if err := svc.Delete(context.Background(), 5); err != nil {
			t.Fatalf("Delete returned error: %v", err)
		}
		if len(store.deleted) != 1 || store.deleted[0] != 5 {
			t.Errorf("expected order 5 deleted, got %v", store.deleted)
		}
	})

	t.Run("returns not found for a missing order", func(t *testing.T) {
		svc := NewOrderService(newFakeOrderStore(), menu)

		if err := svc.Delete(context.Background(), 404); !errors.Is(err, models.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}
