package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Sale struct {
	ID            int             `json:"id"`
	TotalSales    decimal.Decimal `json:"total_sales"`
	CashSales     decimal.Decimal `json:"cash_sales"`
	CardSales     decimal.Decimal `json:"card_sales"`
	TransferSales decimal.Decimal `json:"transfer_sales"`
	SalesDate     time.Time       `json:"sales_date"`
	CreatedAt     time.Time       `json:"created_at"`
}
