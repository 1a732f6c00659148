package service

import (
	"context"
	"errors"
	"strings"

	"retailpos/internal/dto"
	"retailpos/internal/model"
	"retailpos/internal/repository"

	"gorm.io/gorm"
)

// ProductService defines the business logic contract for the catalog and
// manual stock adjustments. Stock changes driven by sales and purchases go
// through SaleService / PurchaseService instead.
type ProductService interface {
	Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.ProductResponse, error)
	GetByBarcode(ctx context.Context, barcode string) (*dto.ProductResponse, error)
	Search(ctx context.Context, pattern string) ([]dto.ProductResponse, error)
	List(ctx context.Context, filter dto.ProductFilter) (*dto.ProductListResponse, error)
	ListLowStock(ctx context.Context) ([]dto.ProductResponse, error)
	Update(ctx context.Context, id uint, req dto.UpdateProductRequest) (*dto.ProductResponse, error)
	Delete(ctx context.Context, id uint) error
	AdjustStock(ctx context.Context, id uint, req dto.AdjustStockRequest) (*dto.ProductResponse, error)
}

type productService struct {
	repo repository.ProductRepository
}

func NewProductService(repo repository.ProductRepository) ProductService {
	return &productService{repo: repo}
}

func (s *productService) Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if req.Barcode != nil {
		bc := strings.TrimSpace(*req.Barcode)
		if bc == "" {
			req.Barcode = nil
		} else {
			req.Barcode = &bc
			if _, err := s.repo.FindByBarcode(ctx, bc); err == nil {
				return nil, ErrDuplicateBarcode
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
		}
	}

	p := &model.Product{
		Barcode:       req.Barcode,
		Name:          strings.TrimSpace(req.Name),
		Category:      strings.TrimSpace(req.Category),
		PurchasePrice: req.PurchasePrice,
		SalePrice:     req.SalePrice,
		StockQty:      req.StockQty,
		TaxPercent:    req.TaxPercent,
		ReorderLevel:  req.ReorderLevel,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	resp := toProductResponse(p)
	return &resp, nil
}

func (s *productService) GetByID(ctx context.Context, id uint) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrProductNotFound
	}
	resp := toProductResponse(p)
	return &resp, nil
}

func (s *productService) GetByBarcode(ctx context.Context, barcode string) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByBarcode(ctx, strings.TrimSpace(barcode))
	if err != nil {
		return nil, ErrProductNotFound
	}
	resp := toProductResponse(p)
	return &resp, nil
}

func (s *productService) Search(ctx context.Context, pattern string) ([]dto.ProductResponse, error) {
	products, err := s.repo.SearchByName(ctx, strings.TrimSpace(pattern))
	if err != nil {
		return nil, err
	}
	return toProductResponses(products), nil
}

func (s *productService) List(ctx context.Context, filter dto.ProductFilter) (*dto.ProductListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	products, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &dto.ProductListResponse{
		Data:  toProductResponses(products),
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func (s *productService) ListLowStock(ctx context.Context) ([]dto.ProductResponse, error) {
	products, err := s.repo.ListLowStock(ctx)
	if err != nil {
		return nil, err
	}
	return toProductResponses(products), nil
}

func (s *productService) Update(ctx context.Context, id uint, req dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrProductNotFound
	}

	if req.Barcode != nil {
		bc := strings.TrimSpace(*req.Barcode)
		if bc != "" && (p.Barcode == nil || *p.Barcode != bc) {
			if existing, err := s.repo.FindByBarcode(ctx, bc); err == nil && existing.ID != id {
				return nil, ErrDuplicateBarcode
			} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
		}
		if bc == "" {
			p.Barcode = nil
		} else {
			p.Barcode = &bc
		}
	}
	if req.Name != nil {
		p.Name = strings.TrimSpace(*req.Name)
	}
	if req.Category != nil {
		p.Category = strings.TrimSpace(*req.Category)
	}
	if req.PurchasePrice != nil {
		p.PurchasePrice = *req.PurchasePrice
	}
	if req.SalePrice != nil {
		p.SalePrice = *req.SalePrice
	}
	if req.TaxPercent != nil {
		p.TaxPercent = *req.TaxPercent
	}
	if req.ReorderLevel != nil {
		p.ReorderLevel = *req.ReorderLevel
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	resp := toProductResponse(p)
	return &resp, nil
}

// Delete removes a product permanently. Products referenced by historical
// sale or purchase lines are protected; reports read those lines by the
// denormalized description, so history survives deletion of unreferenced
// products either way.
func (s *productService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return ErrProductNotFound
	}
	refs, err := s.repo.CountReferences(ctx, id)
	if err != nil {
		return err
	}
	if refs > 0 {
		return ErrProductReferenced
	}
	return s.repo.Delete(ctx, id)
}

func (s *productService) AdjustStock(ctx context.Context, id uint, req dto.AdjustStockRequest) (*dto.ProductResponse, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, ErrProductNotFound
	}
	ok, err := s.repo.AdjustStock(ctx, id, req.Delta)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInsufficientStock
	}
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toProductResponse(p)
	return &resp, nil
}

func toProductResponse(p *model.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:            p.ID,
		Barcode:       p.Barcode,
		Name:          p.Name,
		Category:      p.Category,
		PurchasePrice: p.PurchasePrice,
		SalePrice:     p.SalePrice,
		StockQty:      p.StockQty,
		TaxPercent:    p.TaxPercent,
		ReorderLevel:  p.ReorderLevel,
		LowStock:      p.LowStock(),
	}
}

func toProductResponses(products []model.Product) []dto.ProductResponse {
	out := make([]dto.ProductResponse, len(products))
	for i := range products {
		out[i] = toProductResponse(&products[i])
	}
	return out
}
