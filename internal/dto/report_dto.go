package dto

import "github.com/shopspring/decimal"

// ReportRange is bound from the query string of the report endpoints.
type ReportRange struct {
	From  string `form:"from" validate:"required"` // YYYY-MM-DD inclusive
	To    string `form:"to"   validate:"required"` // YYYY-MM-DD inclusive
	Limit int    `form:"limit,default=20" validate:"min=1,max=100"`
}

// PaymentMethodTotal is one slice of the revenue breakdown.
type PaymentMethodTotal struct {
	Method   string          `json:"method"`
	Invoices int64           `json:"invoices"`
	Amount   decimal.Decimal `json:"amount"`
}

type SalesSummaryResponse struct {
	From     string               `json:"from"`
	To       string               `json:"to"`
	Invoices int64                `json:"invoices"`
	Revenue  decimal.Decimal      `json:"revenue"`
	ByMethod []PaymentMethodTotal `json:"by_method"`
}

// TopProductRow is one row of the sales-velocity report, keyed the way the
// sale items recorded it (barcode + description survive product deletion).
type TopProductRow struct {
	Barcode     string          `json:"barcode"`
	Description string          `json:"description"`
	QtySold     int64           `json:"qty_sold"`
	Revenue     decimal.Decimal `json:"revenue"`
}
