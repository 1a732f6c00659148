package service_test

import (
	"context"
	"strings"

	"retailpos/internal/dto"
	"retailpos/internal/model"
	"retailpos/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ── Product stub ─────────────────────────────────────────────────────────────

type stubProductRepo struct {
	products map[uint]*model.Product
	// refs simulates existing sale/purchase line references per product id.
	refs map[uint]int64
	// shrinkOnDecrement drops a product's stock to the given value right
	// before its guarded decrement runs, simulating a concurrent sale
	// committed between cart validation and checkout.
	shrinkOnDecrement map[uint]int
	nextID            uint
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{
		products:          make(map[uint]*model.Product),
		refs:              make(map[uint]int64),
		shrinkOnDecrement: make(map[uint]int),
	}
}

func (r *stubProductRepo) Create(_ context.Context, p *model.Product) error {
	r.nextID++
	p.ID = r.nextID
	r.products[p.ID] = p
	return nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id uint) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *stubProductRepo) FindByBarcode(_ context.Context, barcode string) (*model.Product, error) {
	for _, p := range r.products {
		if p.Barcode != nil && *p.Barcode == barcode {
			cp := *p
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubProductRepo) SearchByName(_ context.Context, pattern string) ([]model.Product, error) {
	var out []model.Product
	for _, p := range r.products {
		if strings.Contains(strings.ToLower(p.Name), strings.ToLower(pattern)) {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProductRepo) List(_ context.Context, _ dto.ProductFilter) ([]model.Product, int64, error) {
	var out []model.Product
	for _, p := range r.products {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (r *stubProductRepo) ListLowStock(_ context.Context) ([]model.Product, error) {
	var out []model.Product
	for _, p := range r.products {
		if p.LowStock() {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProductRepo) Update(_ context.Context, p *model.Product) error {
	if _, ok := r.products[p.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *stubProductRepo) Delete(_ context.Context, id uint) error {
	delete(r.products, id)
	return nil
}

func (r *stubProductRepo) CountReferences(_ context.Context, id uint) (int64, error) {
	return r.refs[id], nil
}

func (r *stubProductRepo) DecrementStockTx(_ *gorm.DB, id uint, qty int) (bool, error) {
	p, ok := r.products[id]
	if ok {
		if shrunk, hit := r.shrinkOnDecrement[id]; hit {
			p.StockQty = shrunk
			delete(r.shrinkOnDecrement, id)
		}
	}
	if !ok || p.StockQty < qty {
		return false, nil
	}
	p.StockQty -= qty
	return true, nil
}

func (r *stubProductRepo) IncrementStockTx(_ *gorm.DB, id uint, qty int, newCost *decimal.Decimal) error {
	p, ok := r.products[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.StockQty += qty
	if newCost != nil {
		p.PurchasePrice = *newCost
	}
	return nil
}

func (r *stubProductRepo) AdjustStock(_ context.Context, id uint, delta int) (bool, error) {
	p, ok := r.products[id]
	if !ok || p.StockQty+delta < 0 {
		return false, nil
	}
	p.StockQty += delta
	return true, nil
}

func (r *stubProductRepo) DB() *gorm.DB { return nil }

var _ repository.ProductRepository = (*stubProductRepo)(nil)

// ── Sale stub ────────────────────────────────────────────────────────────────

type stubSaleRepo struct {
	sales  map[uint]*model.Sale
	nextID uint
	// duplicateOnce makes the first Create fail with a unique constraint
	// error, exercising the invoice retry path.
	duplicateOnce bool
}

func newStubSaleRepo() *stubSaleRepo {
	return &stubSaleRepo{sales: make(map[uint]*model.Sale)}
}

func (r *stubSaleRepo) Create(_ context.Context, _ *gorm.DB, s *model.Sale) error {
	if r.duplicateOnce {
		r.duplicateOnce = false
		return gorm.ErrDuplicatedKey
	}
	for _, existing := range r.sales {
		if existing.InvoiceNo == s.InvoiceNo {
			return gorm.ErrDuplicatedKey
		}
	}
	r.nextID++
	s.ID = r.nextID
	r.sales[s.ID] = s
	return nil
}

func (r *stubSaleRepo) FindByID(_ context.Context, id uint) (*model.Sale, error) {
	s, ok := r.sales[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (r *stubSaleRepo) FindByInvoiceNo(_ context.Context, invoiceNo string) (*model.Sale, error) {
	for _, s := range r.sales {
		if s.InvoiceNo == invoiceNo {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubSaleRepo) List(_ context.Context, _ dto.SaleFilter) ([]model.Sale, int64, error) {
	var out []model.Sale
	for _, s := range r.sales {
		out = append(out, *s)
	}
	return out, int64(len(out)), nil
}

func (r *stubSaleRepo) NextInvoiceSeq(_ context.Context, _ *gorm.DB) (int64, error) {
	return int64(r.nextID) + 1, nil
}

func (r *stubSaleRepo) SummaryInRange(_ context.Context, _, _ string) (*repository.SaleSummaryRow, error) {
	row := &repository.SaleSummaryRow{}
	for _, s := range r.sales {
		row.Invoices++
		row.Revenue = row.Revenue.Add(s.TotalAmount)
	}
	return row, nil
}

func (r *stubSaleRepo) TotalsByMethod(_ context.Context, _, _ string) ([]repository.MethodTotalRow, error) {
	byMethod := make(map[string]*repository.MethodTotalRow)
	for _, s := range r.sales {
		row, ok := byMethod[s.PaymentMethod]
		if !ok {
			row = &repository.MethodTotalRow{PaymentMethod: s.PaymentMethod}
			byMethod[s.PaymentMethod] = row
		}
		row.Invoices++
		row.Amount = row.Amount.Add(s.TotalAmount)
	}
	var out []repository.MethodTotalRow
	for _, row := range byMethod {
		out = append(out, *row)
	}
	return out, nil
}

func (r *stubSaleRepo) TopProducts(_ context.Context, _, _ string, limit int) ([]repository.TopProductRow, error) {
	byKey := make(map[string]*repository.TopProductRow)
	for _, s := range r.sales {
		for _, it := range s.Items {
			key := it.Barcode + "|" + it.Description
			row, ok := byKey[key]
			if !ok {
				row = &repository.TopProductRow{Barcode: it.Barcode, Description: it.Description}
				byKey[key] = row
			}
			row.QtySold += int64(it.Qty)
			row.Revenue = row.Revenue.Add(it.LineTotal)
		}
	}
	var out []repository.TopProductRow
	for _, row := range byKey {
		if len(out) == limit {
			break
		}
		out = append(out, *row)
	}
	return out, nil
}

func (r *stubSaleRepo) DB() *gorm.DB { return nil }

var _ repository.SaleRepository = (*stubSaleRepo)(nil)

// ── Purchase stub ────────────────────────────────────────────────────────────

type stubPurchaseRepo struct {
	purchases map[uint]*model.Purchase
	nextID    uint
}

func newStubPurchaseRepo() *stubPurchaseRepo {
	return &stubPurchaseRepo{purchases: make(map[uint]*model.Purchase)}
}

func (r *stubPurchaseRepo) Create(_ context.Context, _ *gorm.DB, p *model.Purchase) error {
	r.nextID++
	p.ID = r.nextID
	r.purchases[p.ID] = p
	return nil
}

func (r *stubPurchaseRepo) FindByID(_ context.Context, id uint) (*model.Purchase, error) {
	p, ok := r.purchases[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubPurchaseRepo) List(_ context.Context, _ dto.PurchaseFilter) ([]model.Purchase, int64, error) {
	var out []model.Purchase
	for _, p := range r.purchases {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (r *stubPurchaseRepo) NextPurchaseSeq(_ context.Context, _ *gorm.DB) (int64, error) {
	return int64(r.nextID) + 1, nil
}

func (r *stubPurchaseRepo) Ledger(_ context.Context, filter dto.PurchaseFilter) ([]repository.LedgerRow, error) {
	var out []repository.LedgerRow
	for _, p := range r.purchases {
		if filter.SupplierID != 0 && (p.SupplierID == nil || *p.SupplierID != filter.SupplierID) {
			continue
		}
		qty := 0
		for _, it := range p.Items {
			qty += it.Qty
		}
		out = append(out, repository.LedgerRow{
			PurchaseNo:   p.PurchaseNo,
			DateTime:     p.DateTime.Format("2006-01-02 15:04:05"),
			SupplierName: p.SupplierName,
			ItemQty:      qty,
			TotalAmount:  p.TotalAmount,
		})
	}
	return out, nil
}

func (r *stubPurchaseRepo) DetachSupplier(_ context.Context, supplierID uint) error {
	for _, p := range r.purchases {
		if p.SupplierID != nil && *p.SupplierID == supplierID {
			p.SupplierID = nil
		}
	}
	return nil
}

func (r *stubPurchaseRepo) DB() *gorm.DB { return nil }

var _ repository.PurchaseRepository = (*stubPurchaseRepo)(nil)

// ── Supplier stub ────────────────────────────────────────────────────────────

type stubSupplierRepo struct {
	suppliers map[uint]*model.Supplier
	nextID    uint
}

func newStubSupplierRepo() *stubSupplierRepo {
	return &stubSupplierRepo{suppliers: make(map[uint]*model.Supplier)}
}

func (r *stubSupplierRepo) Create(_ context.Context, s *model.Supplier) error {
	r.nextID++
	s.ID = r.nextID
	r.suppliers[s.ID] = s
	return nil
}

func (r *stubSupplierRepo) FindByID(_ context.Context, id uint) (*model.Supplier, error) {
	s, ok := r.suppliers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *stubSupplierRepo) FindByName(_ context.Context, name string) (*model.Supplier, error) {
	for _, s := range r.suppliers {
		if s.Name == name {
			cp := *s
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubSupplierRepo) List(_ context.Context) ([]model.Supplier, error) {
	var out []model.Supplier
	for _, s := range r.suppliers {
		out = append(out, *s)
	}
	return out, nil
}

func (r *stubSupplierRepo) Update(_ context.Context, s *model.Supplier) error {
	if _, ok := r.suppliers[s.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *s
	r.suppliers[s.ID] = &cp
	return nil
}

func (r *stubSupplierRepo) Delete(_ context.Context, id uint) error {
	delete(r.suppliers, id)
	return nil
}

var _ repository.SupplierRepository = (*stubSupplierRepo)(nil)

// ── User stub ────────────────────────────────────────────────────────────────

type stubUserRepo struct {
	users  map[uint]*model.User
	nextID uint
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[uint]*model.User)}
}

func (r *stubUserRepo) Create(_ context.Context, u *model.User) error {
	r.nextID++
	u.ID = r.nextID
	r.users[u.ID] = u
	return nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id uint) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *stubUserRepo) List(_ context.Context) ([]model.User, error) {
	var out []model.User
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, u *model.User) error {
	if _, ok := r.users[u.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *stubUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

var _ repository.UserRepository = (*stubUserRepo)(nil)

// ── Setting stub ─────────────────────────────────────────────────────────────

type stubSettingRepo struct {
	values map[string]string
}

func newStubSettingRepo() *stubSettingRepo {
	return &stubSettingRepo{values: make(map[string]string)}
}

func (r *stubSettingRepo) Get(_ context.Context, key string) (string, error) {
	v, ok := r.values[key]
	if !ok {
		return "", gorm.ErrRecordNotFound
	}
	return v, nil
}

func (r *stubSettingRepo) Set(_ context.Context, key, value string) error {
	r.values[key] = value
	return nil
}

func (r *stubSettingRepo) All(_ context.Context) (map[string]string, error) {
	out := make(map[string]string, len(r.values))
	for k, v := range r.values {
		out[k] = v
	}
	return out, nil
}

var _ repository.SettingRepository = (*stubSettingRepo)(nil)

// ── Seed helpers ─────────────────────────────────────────────────────────────

func seedProduct(repo *stubProductRepo, name, barcode string, stock int, price float64) *model.Product {
	p := &model.Product{
		Name:      name,
		StockQty:  stock,
		SalePrice: decimal.NewFromFloat(price),
	}
	if barcode != "" {
		p.Barcode = &barcode
	}
	_ = repo.Create(context.Background(), p)
	return repo.products[p.ID]
}
