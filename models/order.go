package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// statusTransitions is the closed transition graph for orders. Both terminal
// states have no outgoing edges.
var statusTransitions = map[string][]string{
	StatusPending:   {StatusCompleted, StatusCancelled},
	StatusCompleted: {},
	StatusCancelled: {},
}

func IsValidStatus(status string) bool {
	_, ok := statusTransitions[status]
	return ok
}

func CanTransition(from, to string) bool {
	for _, allowed := range statusTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

type Order struct {
	ID         int             `json:"id"`
	UserID     int             `json:"user_id"`
	EmployeeID *int            `json:"employee_id"`
	Total      decimal.Decimal `json:"total"`
	Status     string          `json:"status"`
	Items      []OrderItem     `json:"items,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

type OrderItem struct {
	ID         int             `json:"id"`
	OrderID    int             `json:"order_id"`
	MenuItemID int             `json:"menu_item_id"`
	Quantity   int             `json:"quantity"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	CreatedAt  time.Time       `json:"created_at"`
}
