package repository

import (
	"context"

	"retailpos/internal/dto"
	"retailpos/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// LedgerRow is scanned from the supplier ledger query.
type LedgerRow struct {
	PurchaseNo   string
	DateTime     string
	SupplierName string
	ItemQty      int
	TotalAmount  decimal.Decimal
}

type PurchaseRepository interface {
	Create(ctx context.Context, tx *gorm.DB, p *model.Purchase) error
	FindByID(ctx context.Context, id uint) (*model.Purchase, error)
	List(ctx context.Context, filter dto.PurchaseFilter) ([]model.Purchase, int64, error)
	NextPurchaseSeq(ctx context.Context, tx *gorm.DB) (int64, error)

	// Ledger returns purchases matching the filter with their summed item
	// quantities, newest first.
	Ledger(ctx context.Context, filter dto.PurchaseFilter) ([]LedgerRow, error)

	// DetachSupplier clears supplier_id on the supplier's purchases. The
	// denormalized supplier_name stays, so the ledger keeps its history.
	DetachSupplier(ctx context.Context, supplierID uint) error

	DB() *gorm.DB
}

type purchaseRepo struct{ db *gorm.DB }

func NewPurchaseRepository(db *gorm.DB) PurchaseRepository { return &purchaseRepo{db: db} }

func (r *purchaseRepo) DB() *gorm.DB { return r.db }

func (r *purchaseRepo) Create(ctx context.Context, tx *gorm.DB, p *model.Purchase) error {
	return tx.WithContext(ctx).Create(p).Error
}

func (r *purchaseRepo) FindByID(ctx context.Context, id uint) (*model.Purchase, error) {
	var p model.Purchase
	err := r.db.WithContext(ctx).Preload("Items").First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *purchaseRepo) List(ctx context.Context, filter dto.PurchaseFilter) ([]model.Purchase, int64, error) {
	var purchases []model.Purchase
	var total int64

	q := r.applyFilter(r.db.WithContext(ctx).Model(&model.Purchase{}), filter)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Preload("Items").
		Order("date_time DESC").
		Offset(offset).Limit(filter.Limit).
		Find(&purchases).Error
	return purchases, total, err
}

func (r *purchaseRepo) NextPurchaseSeq(ctx context.Context, tx *gorm.DB) (int64, error) {
	var seq int64
	err := tx.WithContext(ctx).Raw("SELECT IFNULL(MAX(id), 0) + 1 FROM purchases").Scan(&seq).Error
	return seq, err
}

func (r *purchaseRepo) Ledger(ctx context.Context, filter dto.PurchaseFilter) ([]LedgerRow, error) {
	var rows []LedgerRow
	q := r.applyFilter(r.db.WithContext(ctx).Model(&model.Purchase{}), filter)
	err := q.Select(`purchase_no, date_time, supplier_name,
		(SELECT IFNULL(SUM(qty), 0) FROM purchase_items WHERE purchase_id = purchases.id) AS item_qty,
		total_amount`).
		Order("date_time DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *purchaseRepo) DetachSupplier(ctx context.Context, supplierID uint) error {
	return r.db.WithContext(ctx).Model(&model.Purchase{}).
		Where("supplier_id = ?", supplierID).
		Update("supplier_id", nil).Error
}

func (r *purchaseRepo) applyFilter(q *gorm.DB, filter dto.PurchaseFilter) *gorm.DB {
	if filter.SupplierID != 0 {
		q = q.Where("supplier_id = ?", filter.SupplierID)
	}
	if filter.SupplierName != "" {
		q = q.Where("supplier_name LIKE ?", "%"+filter.SupplierName+"%")
	}
	if filter.From != "" {
		q = q.Where("DATE(date_time) >= ?", filter.From)
	}
	if filter.To != "" {
		q = q.Where("DATE(date_time) <= ?", filter.To)
	}
	return q
}
