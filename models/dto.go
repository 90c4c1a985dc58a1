package models

import "github.com/shopspring/decimal"

type OrderItemRequest struct {
	MenuItemID int              `json:"menu_item_id"`
	Quantity   *int             `json:"quantity"`
	Price      *decimal.Decimal `json:"price"`
}

type CreateOrderRequest struct {
	UserID     int                `json:"user_id"`
	EmployeeID *int               `json:"employee_id"`
	Items      []OrderItemRequest `json:"items"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

type CreateOrderItemRequest struct {
	OrderID    int             `json:"order_id" binding:"required"`
	MenuItemID int             `json:"menu_item_id" binding:"required"`
	Quantity   int             `json:"quantity" binding:"required"`
	Price      decimal.Decimal `json:"price"`
}

type UpdateOrderItemRequest struct {
	Quantity   *int             `json:"quantity"`
	Price      *decimal.Decimal `json:"price"`
	MenuItemID *int             `json:"menu_item_id"`
}

type StartUserRequest struct {
	UserID int    `json:"user_id" binding:"required"`
	Name   string `json:"name" binding:"required"`
	Phone  string `json:"phone"`
}

type UpdateUserRequest struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
}

type CreateMenuItemRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Available   *bool           `json:"available"`
}

type UpdateMenuItemRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Available   *bool            `json:"available"`
}

type CreateEmployeeRequest struct {
	Name   string `json:"name" binding:"required"`
	Role   string `json:"role" binding:"required"`
	Phone  string `json:"phone" binding:"required"`
	Status *bool  `json:"status"`
}

type UpdateEmployeeRequest struct {
	Name   *string `json:"name"`
	Role   *string `json:"role"`
	Phone  *string `json:"phone"`
	Status *bool   `json:"status"`
}

type CreatePaymentRequest struct {
	OrderID       int             `json:"order_id" binding:"required"`
	PaymentMethod string          `json:"payment_method" binding:"required"`
	Amount        decimal.Decimal `json:"amount"`
}

type UpdatePaymentRequest struct {
	PaymentMethod *string          `json:"payment_method"`
	Amount        *decimal.Decimal `json:"amount"`
}

type CreateSaleRequest struct {
	TotalSales    decimal.Decimal `json:"total_sales"`
	CashSales     decimal.Decimal `json:"cash_sales"`
	CardSales     decimal.Decimal `json:"card_sales"`
	TransferSales decimal.Decimal `json:"transfer_sales"`
	SalesDate     string          `json:"sales_date" binding:"required"`
}

type UpdateSaleRequest struct {
	TotalSales    *decimal.Decimal `json:"total_sales"`
	CashSales     *decimal.Decimal `json:"cash_sales"`
	CardSales     *decimal.Decimal `json:"card_sales"`
	TransferSales *decimal.Decimal `json:"transfer_sales"`
	SalesDate     *string          `json:"sales_date"`
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=3"`
	Role     string `json:"role" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}
