package repository

import (
	"context"
	"strings"

	"retailpos/internal/dto"
	"retailpos/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductRepository defines the data access contract for products.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via stubs.
type ProductRepository interface {
	Create(ctx context.Context, p *model.Product) error
	FindByID(ctx context.Context, id uint) (*model.Product, error)
	FindByBarcode(ctx context.Context, barcode string) (*model.Product, error)
	SearchByName(ctx context.Context, pattern string) ([]model.Product, error)
	List(ctx context.Context, filter dto.ProductFilter) ([]model.Product, int64, error)
	ListLowStock(ctx context.Context) ([]model.Product, error)
	Update(ctx context.Context, p *model.Product) error
	Delete(ctx context.Context, id uint) error

	// CountReferences returns how many sale and purchase line items point at
	// the product; a product with references must not be deleted.
	CountReferences(ctx context.Context, id uint) (int64, error)

	// Used inside transactions — callers must pass the tx instance.
	// DecrementStockTx refuses to drive stock_qty negative: it reports
	// gorm.ErrRecordNotFound via zero rows affected semantics, surfaced as
	// a false second return.
	DecrementStockTx(tx *gorm.DB, id uint, qty int) (bool, error)
	IncrementStockTx(tx *gorm.DB, id uint, qty int, newCost *decimal.Decimal) error
	AdjustStock(ctx context.Context, id uint, delta int) (bool, error)

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type productRepo struct{ db *gorm.DB }

func NewProductRepository(db *gorm.DB) ProductRepository { return &productRepo{db: db} }

func (r *productRepo) Create(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productRepo) FindByID(ctx context.Context, id uint) (*model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) FindByBarcode(ctx context.Context, barcode string) (*model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).Where("barcode = ?", barcode).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) SearchByName(ctx context.Context, pattern string) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ? OR barcode LIKE ?", "%"+strings.ToLower(pattern)+"%", "%"+pattern+"%").
		Order("name ASC").
		Find(&products).Error
	return products, err
}

func (r *productRepo) List(ctx context.Context, filter dto.ProductFilter) ([]model.Product, int64, error) {
	var products []model.Product
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Product{})
	if filter.Barcode != "" {
		q = q.Where("barcode = ?", filter.Barcode)
	}
	if filter.Name != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filter.Name)+"%")
	}
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Order("name ASC").Limit(filter.Limit).Offset(offset).Find(&products).Error
	return products, total, err
}

func (r *productRepo) ListLowStock(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).
		Where("stock_qty <= reorder_level").
		Order("stock_qty ASC").
		Find(&products).Error
	return products, err
}

func (r *productRepo) Update(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *productRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Product{}, id).Error
}

func (r *productRepo) CountReferences(ctx context.Context, id uint) (int64, error) {
	var saleRefs, purchaseRefs int64
	if err := r.db.WithContext(ctx).Model(&model.SaleItem{}).
		Where("product_id = ?", id).Count(&saleRefs).Error; err != nil {
		return 0, err
	}
	if err := r.db.WithContext(ctx).Model(&model.PurchaseItem{}).
		Where("product_id = ?", id).Count(&purchaseRefs).Error; err != nil {
		return 0, err
	}
	return saleRefs + purchaseRefs, nil
}

// DecrementStockTx conditionally decrements: the WHERE guard keeps stock_qty
// from ever going negative, and zero rows affected means the guard rejected
// the update (commit-time stock conflict).
func (r *productRepo) DecrementStockTx(tx *gorm.DB, id uint, qty int) (bool, error) {
	res := tx.Model(&model.Product{}).
		Where("id = ? AND stock_qty >= ?", id, qty).
		Update("stock_qty", gorm.Expr("stock_qty - ?", qty))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *productRepo) IncrementStockTx(tx *gorm.DB, id uint, qty int, newCost *decimal.Decimal) error {
	updates := map[string]interface{}{
		"stock_qty": gorm.Expr("stock_qty + ?", qty),
	}
	if newCost != nil {
		updates["purchase_price"] = *newCost
	}
	return tx.Model(&model.Product{}).Where("id = ?", id).Updates(updates).Error
}

func (r *productRepo) AdjustStock(ctx context.Context, id uint, delta int) (bool, error) {
	res := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("id = ? AND stock_qty + ? >= 0", id, delta).
		Update("stock_qty", gorm.Expr("stock_qty + ?", delta))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *productRepo) DB() *gorm.DB { return r.db }
