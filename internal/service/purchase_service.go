package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"retailpos/internal/dto"
	"retailpos/internal/model"
	"retailpos/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PurchaseService interface {
	Record(ctx context.Context, req dto.PurchaseRequest) (*dto.PurchaseResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.PurchaseResponse, error)
	List(ctx context.Context, filter dto.PurchaseFilter) (*dto.PurchaseListResponse, error)
}

type purchaseService struct {
	repo         repository.PurchaseRepository
	productRepo  repository.ProductRepository
	supplierRepo repository.SupplierRepository
	now          func() time.Time
}

func NewPurchaseService(
	repo repository.PurchaseRepository,
	productRepo repository.ProductRepository,
	supplierRepo repository.SupplierRepository,
) PurchaseService {
	return &purchaseService{
		repo:         repo,
		productRepo:  productRepo,
		supplierRepo: supplierRepo,
		now:          time.Now,
	}
}

// Record commits a stock intake atomically: the purchase with its items, the
// stock increments, and any cost-price updates all land in one transaction.
// Every line must reference a catalog product; receiving goods that are not
// in the catalog is a catalog task first.
func (s *purchaseService) Record(ctx context.Context, req dto.PurchaseRequest) (*dto.PurchaseResponse, error) {
	if len(req.Items) == 0 {
		return nil, ErrEmptyCart
	}

	supplierID, supplierName, err := s.resolveSupplier(ctx, req)
	if err != nil {
		return nil, err
	}

	// Resolve products outside the transaction; failures here cost nothing.
	type resolvedLine struct {
		product    *model.Product
		qty        int
		unitPrice  decimal.Decimal
		updateCost bool
	}
	resolved := make([]resolvedLine, 0, len(req.Items))
	total := decimal.Zero
	for _, item := range req.Items {
		p, err := s.productRepo.FindByID(ctx, item.ProductID)
		if err != nil {
			return nil, ErrProductNotFound
		}
		resolved = append(resolved, resolvedLine{
			product:    p,
			qty:        item.Qty,
			unitPrice:  item.UnitPrice,
			updateCost: item.UpdateCost,
		})
		total = total.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Qty))))
	}
	total = total.Round(2)

	var purchase model.Purchase
	var txErr error
	for attempt := 0; attempt < invoiceAttempts; attempt++ {
		purchase = model.Purchase{
			DateTime:     s.now(),
			SupplierID:   supplierID,
			SupplierName: supplierName,
			TotalAmount:  total,
		}
		for _, r := range resolved {
			barcode := ""
			if r.product.Barcode != nil {
				barcode = *r.product.Barcode
			}
			pid := r.product.ID
			purchase.Items = append(purchase.Items, model.PurchaseItem{
				ProductID:   &pid,
				Barcode:     barcode,
				Description: r.product.Name,
				Qty:         r.qty,
				UnitPrice:   r.unitPrice,
				LineTotal:   r.unitPrice.Mul(decimal.NewFromInt(int64(r.qty))),
			})
		}

		txErr = runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
			seq, err := s.repo.NextPurchaseSeq(ctx, tx)
			if err != nil {
				return err
			}
			purchase.PurchaseNo = fmt.Sprintf("PUR-%06d", seq)

			if err := s.repo.Create(ctx, tx, &purchase); err != nil {
				return err
			}

			for _, r := range resolved {
				var newCost *decimal.Decimal
				if r.updateCost {
					cost := r.unitPrice
					newCost = &cost
				}
				if err := s.productRepo.IncrementStockTx(tx, r.product.ID, r.qty, newCost); err != nil {
					return err
				}
			}
			return nil
		})

		if txErr == nil || !isDuplicateKey(txErr) {
			break
		}
	}
	if txErr != nil {
		return nil, txErr
	}

	return toPurchaseResponse(&purchase), nil
}

// resolveSupplier returns the linked supplier id and the name to denormalize
// onto the purchase. A free-form name that matches an existing supplier is
// linked automatically.
func (s *purchaseService) resolveSupplier(ctx context.Context, req dto.PurchaseRequest) (*uint, string, error) {
	if req.SupplierID != nil {
		sup, err := s.supplierRepo.FindByID(ctx, *req.SupplierID)
		if err != nil {
			return nil, "", ErrSupplierNotFound
		}
		return &sup.ID, sup.Name, nil
	}
	name := strings.TrimSpace(req.SupplierName)
	if sup, err := s.supplierRepo.FindByName(ctx, name); err == nil {
		return &sup.ID, sup.Name, nil
	}
	return nil, name, nil
}

func (s *purchaseService) GetByID(ctx context.Context, id uint) (*dto.PurchaseResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrPurchaseNotFound
	}
	return toPurchaseResponse(p), nil
}

func (s *purchaseService) List(ctx context.Context, filter dto.PurchaseFilter) (*dto.PurchaseListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	purchases, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.PurchaseResponse, 0, len(purchases))
	for i := range purchases {
		data = append(data, *toPurchaseResponse(&purchases[i]))
	}
	return &dto.PurchaseListResponse{Data: data, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func toPurchaseResponse(p *model.Purchase) *dto.PurchaseResponse {
	items := make([]dto.PurchaseItemResponse, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, dto.PurchaseItemResponse{
			ProductID:   it.ProductID,
			Barcode:     it.Barcode,
			Description: it.Description,
			Qty:         it.Qty,
			UnitPrice:   it.UnitPrice,
			LineTotal:   it.LineTotal,
		})
	}
	return &dto.PurchaseResponse{
		ID:           p.ID,
		PurchaseNo:   p.PurchaseNo,
		DateTime:     p.DateTime.Format(time.RFC3339),
		SupplierID:   p.SupplierID,
		SupplierName: p.SupplierName,
		Items:        items,
		TotalAmount:  p.TotalAmount,
	}
}
