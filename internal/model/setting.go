package model

// Setting is a key/value configuration row, upserted by the settings service.
type Setting struct {
	Key   string `gorm:"primaryKey"`
	Value string
}

// Keys seeded on first run. Values are stored as strings and parsed by the
// settings service.
const (
	SettingStoreName         = "store_name"
	SettingDefaultTaxPercent = "default_tax_percent"
	SettingCurrencySymbol    = "currency_symbol"
	SettingLowStockThreshold = "low_stock_threshold"
	SettingReceiptFooter     = "receipt_footer"
)
