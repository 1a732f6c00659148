package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// CheckoutItemRequest identifies a cart line. Catalog lines carry ProductID or
// Barcode; ad-hoc lines (sold outside the catalog) carry Description and
// UnitPrice instead and never touch stock.
type CheckoutItemRequest struct {
	ProductID   *uint            `json:"product_id"`
	Barcode     *string          `json:"barcode"`
	Description string           `json:"description"`
	Qty         int              `json:"qty" validate:"required,min=1"`
	UnitPrice   *decimal.Decimal `json:"unit_price"`
}

type CheckoutRequest struct {
	Items         []CheckoutItemRequest `json:"items"          validate:"required,min=1,dive"`
	PaymentMethod string                `json:"payment_method" validate:"required,oneof=cash card transfer"`
	PaidAmount    decimal.Decimal       `json:"paid_amount"    validate:"required"`
}

// ─── Filter / List ───────────────────────────────────────────────────────────

// SaleFilter is bound from the query string of GET /v1/sales.
type SaleFilter struct {
	From  string `form:"from"` // YYYY-MM-DD inclusive; empty = no lower bound
	To    string `form:"to"`   // YYYY-MM-DD inclusive; empty = no upper bound
	Page  int    `form:"page,default=1"   validate:"min=1"`
	Limit int    `form:"limit,default=50" validate:"min=1,max=200"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type SaleItemResponse struct {
	ProductID   *uint           `json:"product_id"`
	Barcode     string          `json:"barcode"`
	Description string          `json:"description"`
	Qty         int             `json:"qty"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

type SaleResponse struct {
	ID            uint               `json:"id"`
	InvoiceNo     string             `json:"invoice_no"`
	DateTime      string             `json:"date_time"`
	Items         []SaleItemResponse `json:"items"`
	Subtotal      decimal.Decimal    `json:"subtotal"`
	Tax           decimal.Decimal    `json:"tax"`
	TotalAmount   decimal.Decimal    `json:"total_amount"`
	PaymentMethod string             `json:"payment_method"`
	PaidAmount    decimal.Decimal    `json:"paid_amount"`
	ChangeAmount  decimal.Decimal    `json:"change_amount"`
	CashierID     *uint              `json:"cashier_id"`
}

type SaleListResponse struct {
	Data  []SaleResponse `json:"data"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}
