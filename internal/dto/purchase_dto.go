package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type PurchaseItemRequest struct {
	ProductID uint            `json:"product_id" validate:"required"`
	Qty       int             `json:"qty"        validate:"required,min=1"`
	UnitPrice decimal.Decimal `json:"unit_price" validate:"min=0"`
	// UpdateCost replaces the product's purchase_price with this line's
	// unit price inside the same transaction.
	UpdateCost bool `json:"update_cost"`
}

type PurchaseRequest struct {
	SupplierID *uint `json:"supplier_id"`
	// SupplierName is used when no SupplierID is given (free-form supplier).
	SupplierName string                `json:"supplier_name" validate:"required_without=SupplierID"`
	Items        []PurchaseItemRequest `json:"items"         validate:"required,min=1,dive"`
}

// ─── Filter / List ───────────────────────────────────────────────────────────

// PurchaseFilter is bound from the query string of GET /v1/purchases; it also
// drives the supplier ledger.
type PurchaseFilter struct {
	SupplierID   uint   `form:"supplier_id"`
	SupplierName string `form:"supplier_name"` // substring match on denormalized name
	From         string `form:"from"`
	To           string `form:"to"`
	Page         int    `form:"page,default=1"   validate:"min=1"`
	Limit        int    `form:"limit,default=50" validate:"min=1,max=200"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type PurchaseItemResponse struct {
	ProductID   *uint           `json:"product_id"`
	Barcode     string          `json:"barcode"`
	Description string          `json:"description"`
	Qty         int             `json:"qty"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

type PurchaseResponse struct {
	ID           uint                   `json:"id"`
	PurchaseNo   string                 `json:"purchase_no"`
	DateTime     string                 `json:"date_time"`
	SupplierID   *uint                  `json:"supplier_id"`
	SupplierName string                 `json:"supplier_name"`
	Items        []PurchaseItemResponse `json:"items"`
	TotalAmount  decimal.Decimal        `json:"total_amount"`
}

type PurchaseListResponse struct {
	Data  []PurchaseResponse `json:"data"`
	Total int64              `json:"total"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
}

// LedgerEntry is one row of the supplier ledger: a purchase with its summed
// item quantity.
type LedgerEntry struct {
	PurchaseNo   string          `json:"purchase_no"`
	DateTime     string          `json:"date_time"`
	SupplierName string          `json:"supplier_name"`
	ItemQty      int             `json:"item_qty"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
}
