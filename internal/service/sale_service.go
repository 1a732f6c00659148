package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"retailpos/internal/dto"
	"retailpos/internal/model"
	"retailpos/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// invoiceAttempts bounds the retry loop when two checkouts race for the same
// invoice sequence number.
const invoiceAttempts = 3

type SaleService interface {
	Checkout(ctx context.Context, cashierID *uint, req dto.CheckoutRequest) (*dto.SaleResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.SaleResponse, error)
	GetByInvoiceNo(ctx context.Context, invoiceNo string) (*dto.SaleResponse, error)
	List(ctx context.Context, filter dto.SaleFilter) (*dto.SaleListResponse, error)
}

type saleService struct {
	repo        repository.SaleRepository
	productRepo repository.ProductRepository
	now         func() time.Time
}

func NewSaleService(repo repository.SaleRepository, productRepo repository.ProductRepository) SaleService {
	return &saleService{repo: repo, productRepo: productRepo, now: time.Now}
}

// runTx executes fn inside a GORM transaction when db is available, or calls
// fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// Checkout commits a sale atomically:
//  1. Resolve every request line against the catalog and build the cart
//     (duplicate articles merge, known stock is pre-checked).
//  2. Validate payment: cash may overpay, card/transfer must be exact.
//  3. BEGIN TX: allocate the next invoice number, decrement stock per
//     catalog line with a guarded UPDATE, insert the sale with its items.
//  4. COMMIT. A stock guard rejection or invoice collision rolls everything
//     back; the collision is retried a bounded number of times.
func (s *saleService) Checkout(ctx context.Context, cashierID *uint, req dto.CheckoutRequest) (*dto.SaleResponse, error) {
	if len(req.Items) == 0 {
		return nil, ErrEmptyCart
	}

	cart := &Cart{}
	for _, item := range req.Items {
		line, err := s.resolveLine(ctx, item)
		if err != nil {
			return nil, err
		}
		if err := cart.Add(line); err != nil {
			return nil, err
		}
	}
	if cart.Len() == 0 {
		return nil, ErrEmptyCart
	}

	total := cart.Total()
	if req.PaidAmount.LessThan(total) {
		return nil, ErrInsufficientPayment
	}
	change := decimal.Zero
	if req.PaymentMethod == model.PaymentCash {
		change = req.PaidAmount.Sub(total)
	} else if !req.PaidAmount.Equal(total) {
		return nil, ErrInexactPayment
	}

	var sale model.Sale
	var txErr error
	for attempt := 0; attempt < invoiceAttempts; attempt++ {
		sale = model.Sale{
			DateTime:      s.now(),
			TotalAmount:   total,
			PaymentMethod: req.PaymentMethod,
			PaidAmount:    req.PaidAmount,
			ChangeAmount:  change,
			CashierID:     cashierID,
		}
		for _, l := range cart.Lines() {
			sale.Items = append(sale.Items, model.SaleItem{
				ProductID:   l.ProductID,
				Barcode:     l.Barcode,
				Description: l.Description,
				Qty:         l.Qty,
				UnitPrice:   l.UnitPrice,
				LineTotal:   l.LineTotal(),
			})
		}

		txErr = runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
			seq, err := s.repo.NextInvoiceSeq(ctx, tx)
			if err != nil {
				return err
			}
			sale.InvoiceNo = fmt.Sprintf("INV-%06d", seq)

			// Re-validate stock under the transaction before writing the
			// header. The guarded UPDATE fails if a concurrent sale drained
			// stock after cart validation.
			for _, l := range cart.Lines() {
				if l.ProductID == nil {
					continue
				}
				ok, err := s.productRepo.DecrementStockTx(tx, *l.ProductID, l.Qty)
				if err != nil {
					return err
				}
				if !ok {
					return ErrStockConflict
				}
			}

			return s.repo.Create(ctx, tx, &sale)
		})

		if txErr == nil || !isDuplicateKey(txErr) {
			break
		}
	}
	if txErr != nil {
		if isDuplicateKey(txErr) {
			return nil, ErrDuplicateInvoice
		}
		return nil, txErr
	}

	resp := s.toSaleResponse(&sale, cart)
	return resp, nil
}

// resolveLine turns a request item into a cart line. Resolution order:
// product id, then barcode, then ad-hoc (description + unit price, no stock).
func (s *saleService) resolveLine(ctx context.Context, item dto.CheckoutItemRequest) (CartLine, error) {
	if item.ProductID != nil {
		p, err := s.productRepo.FindByID(ctx, *item.ProductID)
		if err != nil {
			return CartLine{}, ErrProductNotFound
		}
		return s.catalogLine(p, item), nil
	}
	if item.Barcode != nil && strings.TrimSpace(*item.Barcode) != "" {
		p, err := s.productRepo.FindByBarcode(ctx, strings.TrimSpace(*item.Barcode))
		if err != nil {
			return CartLine{}, ErrProductNotFound
		}
		return s.catalogLine(p, item), nil
	}

	desc := strings.TrimSpace(item.Description)
	if desc == "" {
		return CartLine{}, fmt.Errorf("item needs a product_id, barcode, or description")
	}
	if item.UnitPrice == nil {
		return CartLine{}, fmt.Errorf("item %q needs a unit_price", desc)
	}
	return CartLine{
		Description: desc,
		Qty:         item.Qty,
		UnitPrice:   *item.UnitPrice,
	}, nil
}

func (s *saleService) catalogLine(p *model.Product, item dto.CheckoutItemRequest) CartLine {
	price := p.SalePrice
	if item.UnitPrice != nil {
		price = *item.UnitPrice
	}
	barcode := ""
	if p.Barcode != nil {
		barcode = *p.Barcode
	}
	pid := p.ID
	return CartLine{
		ProductID:   &pid,
		Barcode:     barcode,
		Description: p.Name,
		Qty:         item.Qty,
		UnitPrice:   price,
		TaxPercent:  p.TaxPercent,
		Available:   p.StockQty,
	}
}

func (s *saleService) GetByID(ctx context.Context, id uint) (*dto.SaleResponse, error) {
	sale, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrSaleNotFound
	}
	return s.toSaleResponse(sale, nil), nil
}

func (s *saleService) GetByInvoiceNo(ctx context.Context, invoiceNo string) (*dto.SaleResponse, error) {
	sale, err := s.repo.FindByInvoiceNo(ctx, invoiceNo)
	if err != nil {
		return nil, ErrSaleNotFound
	}
	return s.toSaleResponse(sale, nil), nil
}

func (s *saleService) List(ctx context.Context, filter dto.SaleFilter) (*dto.SaleListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	sales, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.SaleResponse, 0, len(sales))
	for i := range sales {
		data = append(data, *s.toSaleResponse(&sales[i], nil))
	}
	return &dto.SaleListResponse{Data: data, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

// toSaleResponse builds a response from a persisted sale. When the cart that
// produced it is available its subtotal/tax split is reused; for historical
// reads the split is recomputed from the stored lines (line totals are
// pre-tax, so subtotal is their sum and tax is the remainder of the total).
func (s *saleService) toSaleResponse(sale *model.Sale, cart *Cart) *dto.SaleResponse {
	items := make([]dto.SaleItemResponse, 0, len(sale.Items))
	subtotal := decimal.Zero
	for _, it := range sale.Items {
		subtotal = subtotal.Add(it.LineTotal)
		items = append(items, dto.SaleItemResponse{
			ProductID:   it.ProductID,
			Barcode:     it.Barcode,
			Description: it.Description,
			Qty:         it.Qty,
			UnitPrice:   it.UnitPrice,
			LineTotal:   it.LineTotal,
		})
	}

	var tax decimal.Decimal
	if cart != nil {
		subtotal = cart.Subtotal()
		tax = cart.TaxTotal().Round(2)
	} else {
		tax = sale.TotalAmount.Sub(subtotal)
	}

	return &dto.SaleResponse{
		ID:            sale.ID,
		InvoiceNo:     sale.InvoiceNo,
		DateTime:      sale.DateTime.Format(time.RFC3339),
		Items:         items,
		Subtotal:      subtotal,
		Tax:           tax,
		TotalAmount:   sale.TotalAmount,
		PaymentMethod: sale.PaymentMethod,
		PaidAmount:    sale.PaidAmount,
		ChangeAmount:  sale.ChangeAmount,
		CashierID:     sale.CashierID,
	}
}

// isDuplicateKey reports whether err is a unique constraint violation, which
// on the invoice number means another checkout won the same sequence slot.
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
