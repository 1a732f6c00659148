package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment methods accepted at checkout. Cash may overpay (change is returned);
// the other methods require exact payment.
const (
	PaymentCash     = "cash"
	PaymentCard     = "card"
	PaymentTransfer = "transfer"
)

// Sale is a committed transaction header. It is created atomically with its
// items and the matching stock decrements, and is immutable afterwards.
type Sale struct {
	ID            uint      `gorm:"primaryKey"`
	InvoiceNo     string    `gorm:"uniqueIndex;not null"`
	DateTime      time.Time `gorm:"index;not null"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	PaymentMethod string          `gorm:"not null"`
	PaidAmount    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	ChangeAmount  decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CashierID     *uint           `gorm:"index"`

	Items   []SaleItem `gorm:"foreignKey:SaleID;constraint:OnDelete:CASCADE"`
	Cashier *User      `gorm:"foreignKey:CashierID"`
}

// SaleItem is one line of a sale. ProductID is nil for ad-hoc lines sold
// outside the catalog; those lines never touch stock. LineTotal is the
// pre-tax amount (qty × unit price).
type SaleItem struct {
	ID          uint  `gorm:"primaryKey"`
	SaleID      uint  `gorm:"index;not null"`
	ProductID   *uint `gorm:"index"`
	Barcode     string
	Description string          `gorm:"not null"`
	Qty         int             `gorm:"not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	LineTotal   decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	Product *Product `gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT"`
}
