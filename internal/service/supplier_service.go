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

type SupplierService interface {
	Create(ctx context.Context, req dto.CreateSupplierRequest) (*dto.SupplierResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.SupplierResponse, error)
	List(ctx context.Context) ([]dto.SupplierResponse, error)
	Update(ctx context.Context, id uint, req dto.CreateSupplierRequest) (*dto.SupplierResponse, error)
	Delete(ctx context.Context, id uint) error
	Ledger(ctx context.Context, filter dto.PurchaseFilter) ([]dto.LedgerEntry, error)
}

type supplierService struct {
	repo         repository.SupplierRepository
	purchaseRepo repository.PurchaseRepository
}

func NewSupplierService(repo repository.SupplierRepository, purchaseRepo repository.PurchaseRepository) SupplierService {
	return &supplierService{repo: repo, purchaseRepo: purchaseRepo}
}

func (s *supplierService) Create(ctx context.Context, req dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	name := strings.TrimSpace(req.Name)
	if _, err := s.repo.FindByName(ctx, name); err == nil {
		return nil, ErrDuplicateSupplier
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	sup := &model.Supplier{
		Name:    name,
		Contact: strings.TrimSpace(req.Contact),
		Notes:   req.Notes,
	}
	if err := s.repo.Create(ctx, sup); err != nil {
		return nil, err
	}
	resp := toSupplierResponse(sup)
	return &resp, nil
}

func (s *supplierService) GetByID(ctx context.Context, id uint) (*dto.SupplierResponse, error) {
	sup, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrSupplierNotFound
	}
	resp := toSupplierResponse(sup)
	return &resp, nil
}

func (s *supplierService) List(ctx context.Context) ([]dto.SupplierResponse, error) {
	suppliers, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SupplierResponse, len(suppliers))
	for i := range suppliers {
		out[i] = toSupplierResponse(&suppliers[i])
	}
	return out, nil
}

func (s *supplierService) Update(ctx context.Context, id uint, req dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	sup, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrSupplierNotFound
	}

	name := strings.TrimSpace(req.Name)
	if name != sup.Name {
		if existing, err := s.repo.FindByName(ctx, name); err == nil && existing.ID != id {
			return nil, ErrDuplicateSupplier
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	sup.Name = name
	sup.Contact = strings.TrimSpace(req.Contact)
	sup.Notes = req.Notes
	if err := s.repo.Update(ctx, sup); err != nil {
		return nil, err
	}
	resp := toSupplierResponse(sup)
	return &resp, nil
}

// Delete removes the supplier record. Purchases on file are detached first
// (supplier_id set to NULL); they keep the denormalized supplier name, so
// the ledger is unaffected.
func (s *supplierService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return ErrSupplierNotFound
	}
	if err := s.purchaseRepo.DetachSupplier(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// Ledger lists purchases newest first, optionally narrowed to one supplier
// or a date range.
func (s *supplierService) Ledger(ctx context.Context, filter dto.PurchaseFilter) ([]dto.LedgerEntry, error) {
	rows, err := s.purchaseRepo.Ledger(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LedgerEntry, len(rows))
	for i, r := range rows {
		out[i] = dto.LedgerEntry{
			PurchaseNo:   r.PurchaseNo,
			DateTime:     r.DateTime,
			SupplierName: r.SupplierName,
			ItemQty:      r.ItemQty,
			TotalAmount:  r.TotalAmount,
		}
	}
	return out, nil
}

func toSupplierResponse(s *model.Supplier) dto.SupplierResponse {
	return dto.SupplierResponse{ID: s.ID, Name: s.Name, Contact: s.Contact, Notes: s.Notes}
}
