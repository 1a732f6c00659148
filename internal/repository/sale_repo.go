package repository

import (
	"context"

	"retailpos/internal/dto"
	"retailpos/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SaleSummaryRow is scanned from the aggregate report query.
type SaleSummaryRow struct {
	Invoices int64
	Revenue  decimal.Decimal
}

// MethodTotalRow is scanned from the per-payment-method breakdown.
type MethodTotalRow struct {
	PaymentMethod string
	Invoices      int64
	Amount        decimal.Decimal
}

// TopProductRow is scanned from the sales-velocity query.
type TopProductRow struct {
	Barcode     string
	Description string
	QtySold     int64
	Revenue     decimal.Decimal
}

type SaleRepository interface {
	Create(ctx context.Context, tx *gorm.DB, s *model.Sale) error
	FindByID(ctx context.Context, id uint) (*model.Sale, error)
	FindByInvoiceNo(ctx context.Context, invoiceNo string) (*model.Sale, error)
	List(ctx context.Context, filter dto.SaleFilter) ([]model.Sale, int64, error)

	// NextInvoiceSeq returns max(id)+1 inside the commit transaction; the
	// service formats it into an invoice number and retries on collision.
	NextInvoiceSeq(ctx context.Context, tx *gorm.DB) (int64, error)

	// Report queries (read side).
	SummaryInRange(ctx context.Context, from, to string) (*SaleSummaryRow, error)
	TotalsByMethod(ctx context.Context, from, to string) ([]MethodTotalRow, error)
	TopProducts(ctx context.Context, from, to string, limit int) ([]TopProductRow, error)

	DB() *gorm.DB // exposes the DB for transaction creation in the service layer
}

type saleRepo struct{ db *gorm.DB }

func NewSaleRepository(db *gorm.DB) SaleRepository { return &saleRepo{db: db} }

func (r *saleRepo) DB() *gorm.DB { return r.db }

func (r *saleRepo) Create(ctx context.Context, tx *gorm.DB, s *model.Sale) error {
	return tx.WithContext(ctx).Create(s).Error
}

func (r *saleRepo) FindByID(ctx context.Context, id uint) (*model.Sale, error) {
	var s model.Sale
	err := r.db.WithContext(ctx).Preload("Items").First(&s, id).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *saleRepo) FindByInvoiceNo(ctx context.Context, invoiceNo string) (*model.Sale, error) {
	var s model.Sale
	err := r.db.WithContext(ctx).Preload("Items").Where("invoice_no = ?", invoiceNo).First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *saleRepo) List(ctx context.Context, filter dto.SaleFilter) ([]model.Sale, int64, error) {
	var sales []model.Sale
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Sale{})
	if filter.From != "" {
		q = q.Where("DATE(date_time) >= ?", filter.From)
	}
	if filter.To != "" {
		q = q.Where("DATE(date_time) <= ?", filter.To)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Preload("Items").
		Order("date_time DESC").
		Offset(offset).Limit(filter.Limit).
		Find(&sales).Error
	return sales, total, err
}

func (r *saleRepo) NextInvoiceSeq(ctx context.Context, tx *gorm.DB) (int64, error) {
	var seq int64
	err := tx.WithContext(ctx).Raw("SELECT IFNULL(MAX(id), 0) + 1 FROM sales").Scan(&seq).Error
	return seq, err
}

func (r *saleRepo) SummaryInRange(ctx context.Context, from, to string) (*SaleSummaryRow, error) {
	var row SaleSummaryRow
	err := r.db.WithContext(ctx).Raw(
		`SELECT COUNT(*) AS invoices, IFNULL(SUM(total_amount), 0) AS revenue
		 FROM sales WHERE DATE(date_time) BETWEEN ? AND ?`, from, to).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *saleRepo) TotalsByMethod(ctx context.Context, from, to string) ([]MethodTotalRow, error) {
	var rows []MethodTotalRow
	err := r.db.WithContext(ctx).Raw(
		`SELECT payment_method, COUNT(*) AS invoices, IFNULL(SUM(total_amount), 0) AS amount
		 FROM sales WHERE DATE(date_time) BETWEEN ? AND ?
		 GROUP BY payment_method ORDER BY amount DESC`, from, to).
		Scan(&rows).Error
	return rows, err
}

func (r *saleRepo) TopProducts(ctx context.Context, from, to string, limit int) ([]TopProductRow, error) {
	var rows []TopProductRow
	err := r.db.WithContext(ctx).Raw(
		`SELECT si.barcode, si.description, SUM(si.qty) AS qty_sold, IFNULL(SUM(si.line_total), 0) AS revenue
		 FROM sale_items si JOIN sales s ON s.id = si.sale_id
		 WHERE DATE(s.date_time) BETWEEN ? AND ?
		 GROUP BY si.barcode, si.description
		 ORDER BY qty_sold DESC LIMIT ?`, from, to, limit).
		Scan(&rows).Error
	return rows, err
}
