package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateProductRequest struct {
	Barcode       *string         `json:"barcode"        validate:"omitempty,min=3,max=32"`
	Name          string          `json:"name"           validate:"required,min=2,max=120"`
	Category      string          `json:"category"`
	PurchasePrice decimal.Decimal `json:"purchase_price" validate:"min=0"`
	SalePrice     decimal.Decimal `json:"sale_price"     validate:"min=0"`
	StockQty      int             `json:"stock_qty"      validate:"min=0"`
	TaxPercent    decimal.Decimal `json:"tax_percent"    validate:"min=0,max=100"`
	ReorderLevel  int             `json:"reorder_level"  validate:"min=0"`
}

type UpdateProductRequest struct {
	Barcode       *string          `json:"barcode"        validate:"omitempty,min=3,max=32"`
	Name          *string          `json:"name"           validate:"omitempty,min=2,max=120"`
	Category      *string          `json:"category"`
	PurchasePrice *decimal.Decimal `json:"purchase_price"`
	SalePrice     *decimal.Decimal `json:"sale_price"`
	TaxPercent    *decimal.Decimal `json:"tax_percent"`
	ReorderLevel  *int             `json:"reorder_level"  validate:"omitempty,min=0"`
}

// AdjustStockRequest applies a manual stock correction outside of a
// sale/purchase commit (breakage, stocktake).
type AdjustStockRequest struct {
	Delta  int    `json:"delta"  validate:"required"`
	Reason string `json:"reason"`
}

// ─── Filter / Pagination ─────────────────────────────────────────────────────

type ProductFilter struct {
	Name     string `form:"name"`
	Barcode  string `form:"barcode"`
	Category string `form:"category"`
	Page     int    `form:"page,default=1"   validate:"min=1"`
	Limit    int    `form:"limit,default=50" validate:"min=1,max=200"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductResponse struct {
	ID            uint            `json:"id"`
	Barcode       *string         `json:"barcode"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	StockQty      int             `json:"stock_qty"`
	TaxPercent    decimal.Decimal `json:"tax_percent"`
	ReorderLevel  int             `json:"reorder_level"`
	LowStock      bool            `json:"low_stock"`
}

type ProductListResponse struct {
	Data  []ProductResponse `json:"data"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}
