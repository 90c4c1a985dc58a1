package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type MenuItem struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Available   bool            `json:"available"`
	CreatedAt   time.Time       `json:"created_at"`
}
