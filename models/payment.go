package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Payment struct {
	ID            int             `json:"id"`
	OrderID       int             `json:"order_id"`
	PaymentMethod string          `json:"payment_method"`
	Amount        decimal.Decimal `json:"amount"`
	PaidAt        time.Time       `json:"paid_at"`
}
