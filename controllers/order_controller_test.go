package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"restaurant-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type stubOrderService struct {
	createID  int
	createErr error
	orders    []models.Order
	details   *models.Order
	updated   *models.Order
	updateErr error
	deleteErr error
}

func (s *stubOrderService) Create(ctx context.Context, req models.CreateOrderRequest) (int, error) {
	return s.createID, s.createErr
}

func (s *stubOrderService) List(ctx context.Context) ([]models.Order, error) {
	return s.orders, nil
}

func (s *stubOrderService) Details(ctx context.Context, id int) (*models.Order, error) {
	return s.details, nil
}

func (s *stubOrderService) UpdateStatus(ctx context.Context, id int, status string) (*models.Order, error) {
	return s.updated, s.updateErr
}

func (s *stubOrderService) Delete(ctx context.Context, id int) error {
	return s.deleteErr
}

func newOrderRouter(svc OrderService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctrl := NewOrderController(svc)

	router := gin.New()
	router.POST("/order/create", ctrl.CreateOrder)
	router.GET("/order/", ctrl.GetAllOrders)
	router.PUT("/order/:id", ctrl.UpdateOrderStatus)
	router.GET("/order/:id", ctrl.GetOrderDetails)
	router.DELETE("/order/:id", ctrl.DeleteOrder)
	return router
}

func TestCreateOrder(t *testing.T) {
	t.Run("returns 201 with the new order id", func(t *testing.T) {
		router := newOrderRouter(&stubOrderService{createID: 42})

		body := `{"user_id": 7, "items": [{"menu_item_id": 1, "quantity": 2}]}`
		req := httptest.NewRequest(http.MethodPost, "/order/create", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusCreated {
			t.Fatalf("status = %d, want 201; body: %s", rec.Code, rec.Body.String())
		}

		var resp map[string]interface{}
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid JSON response: %v", err)
		}
		if resp["order_id"].(float64) != 42 {
			t.Errorf("order_id = %v, want 42", resp["order_id"])
		}
	})

	t.Run("returns 400 on a validation error", func(t *testing.T) {
		router := newOrderRouter(&stubOrderService{
			createErr: models.ValidationError{Field: "items", Message: "at least one item is required"},
		})

		req := httptest.NewRequest(http.MethodPost, "/order/create", strings.NewReader(`{"user_id": 7}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400; body: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("returns 400 on malformed JSON", func(t *testing.T) {
		router := newOrderRouter(&stubOrderService{})

		req := httptest.NewRequest(http.MethodPost, "/order/create", strings.NewReader(`{`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
	})
}

func TestGetAllOrders(t *testing.T) {
	router := newOrderRouter(&stubOrderService{
		orders: []models.Order{
			{ID: 2, UserID: 7, Total: decimal.RequireFromString("360.00"), Status: models.StatusPending},
			{ID: 1, UserID: 7, Total: decimal.RequireFromString("12.00"), Status: models.StatusCompleted},
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/order/", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var orders []models.Order
	if err := json.Unmarshal(rec.Body.Bytes(), &orders); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if len(orders) != 2 {
		t.Errorf("expected 2 orders, got %d", len(orders))
	}
}

func TestGetOrderDetails(t *testing.T) {
	t.Run("returns the order with its items", func(t *testing.T) {
		router := newOrderRouter(&stubOrderService{
			details: &models.Order{
				ID:     42,
				UserID: 7,
				Total:  decimal.RequireFromString("360.00"),
				Status: models.StatusPending,
				Items: []models.OrderItem{
					{ID: 1, OrderID: 42, MenuItemID: 1, Quantity: 2, Subtotal: decimal.RequireFromString("300.00")},
				},
			},
		})

		req := httptest.NewRequest(http.MethodGet, "/order/42", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}

		var order models.Order
		if err := json.Unmarshal(rec.Body.Bytes(), &order); err != nil {
			t.Fatalf("invalid JSON response: %v", err)
		}
		if order.ID != 42 || len(order.Items) != 1 {
			t.Errorf("unexpected order payload: %+v", order)
		}
	})

	t.Run("returns 404 for a missing order", func(t *testing.T) {
		router := newOrderRouter(&stubOrderService{})

		req := httptest.NewRequest(http.MethodGet, "/order/404", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", rec.Code)
		}
	})

	t.Run("returns 400 for a non-numeric id", func(t *testing.T) {
		router := newOrderRouter(&stubOrderService{})

		req := httptest.NewRequest(http.MethodGet, "/order/abc", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
	})
}

func TestUpdateOrderStatus(t *testing.T) {
	t.Run("returns the new status", func(t *testing.T) {
		router := newOrderRouter(&stubOrderService{
			updated: &models.Order{ID: 42, Status: models.StatusCompleted},
		})

		body := `{"status": "completed"}`
		req := httptest.NewRequest(http.MethodPut, "/order/42", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
		}

		var resp map[string]interface{}
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid JSON response: %v", err)
		}
		if resp["new_status"] != "completed" {
			t.Errorf("new_status = %v, want completed", resp["new_status"])
		}
	})

	t.Run("returns 400 on an invalid transition", func(t *testing.T) {
		router := newOrderRouter(&stubOrderService{
			updateErr: models.ValidationError{Field: "status", Message: `cannot transition from "completed" to "cancelled"`},
		})

		body := `{"status": "cancelled"}`
		req := httptest.NewRequest(http.MethodPut, "/order/42", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400; body: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("returns 404 for a missing order", func(t *testing.T) {
		router := newOrderRouter(&stubOrderService{updateErr: models.ErrNotFound})

		body := `{"status": "completed"}`
		req := httptest.NewRequest(http.MethodPut, "/order/404", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", rec.Code)
		}
	})
}

func TestDeleteOrder(t *testing.T) {
	t.Run("returns 200 on success", func(t *testing.T) {
		router := newOrderRouter(&stubOrderService{})

		req := httptest.NewRequest(http.MethodDelete, "/order/42", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
	})

	t.Run("returns 404 for a missing order", func(t *testing.T) {
		router := newOrderRouter(&stubOrderService{deleteErr: models.ErrNotFound})

		req := httptest.NewRequest(http.MethodDelete, "/order/404", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", rec.Code)
		}
	})
}
