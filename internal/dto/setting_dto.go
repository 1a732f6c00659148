package dto

import "github.com/shopspring/decimal"

// SettingsResponse is the typed view over the key/value settings table.
type SettingsResponse struct {
	StoreName         string          `json:"store_name"`
	DefaultTaxPercent decimal.Decimal `json:"default_tax_percent"`
	CurrencySymbol    string          `json:"currency_symbol"`
	LowStockThreshold int             `json:"low_stock_threshold"`
	ReceiptFooter     string          `json:"receipt_footer"`
}

// UpdateSettingsRequest upserts the given keys; nil fields are left untouched.
type UpdateSettingsRequest struct {
	StoreName         *string          `json:"store_name"          validate:"omitempty,min=1"`
	DefaultTaxPercent *decimal.Decimal `json:"default_tax_percent"`
	CurrencySymbol    *string          `json:"currency_symbol"`
	LowStockThreshold *int             `json:"low_stock_threshold" validate:"omitempty,min=0"`
	ReceiptFooter     *string          `json:"receipt_footer"`
}
