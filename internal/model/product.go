package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog entry. StockQty is the authoritative on-hand count and
// is mutated only by committed sale/purchase line items or an explicit manual
// adjustment.
type Product struct {
	ID            uint    `gorm:"primaryKey"`
	Barcode       *string `gorm:"uniqueIndex"` // nullable; unique when present
	Name          string  `gorm:"index;not null"`
	Category      string
	PurchasePrice decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	SalePrice     decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	StockQty      int             `gorm:"not null;default:0"`
	TaxPercent    decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	ReorderLevel  int             `gorm:"not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// LowStock reports whether the product is at or below its reorder level.
func (p *Product) LowStock() bool {
	return p.StockQty <= p.ReorderLevel
}
