package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase is a committed stock intake header, created atomically with its
// items and the matching stock increments. SupplierName is denormalized so
// the ledger survives supplier edits.
type Purchase struct {
	ID           uint      `gorm:"primaryKey"`
	PurchaseNo   string    `gorm:"uniqueIndex;not null"`
	DateTime     time.Time `gorm:"index;not null"`
	SupplierID   *uint     `gorm:"index"`
	SupplierName string
	TotalAmount  decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	Items    []PurchaseItem `gorm:"foreignKey:PurchaseID;constraint:OnDelete:CASCADE"`
	Supplier *Supplier      `gorm:"foreignKey:SupplierID;constraint:OnDelete:SET NULL"`
}

// PurchaseItem is one line of a purchase. UnitPrice is the cost paid to the
// supplier for a single unit.
type PurchaseItem struct {
	ID          uint  `gorm:"primaryKey"`
	PurchaseID  uint  `gorm:"index;not null"`
	ProductID   *uint `gorm:"index"`
	Barcode     string
	Description string          `gorm:"not null"`
	Qty         int             `gorm:"not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	LineTotal   decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	Product *Product `gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT"`
}
