package model

import "time"

// Supplier is a stock source tracked by the purchase ledger.
type Supplier struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"uniqueIndex;not null"`
	Contact   string
	Notes     string
	CreatedAt time.Time
}
