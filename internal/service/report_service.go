package service

import (
	"context"

	"retailpos/internal/dto"
	"retailpos/internal/infra"
	"retailpos/internal/repository"
)

type ReportService interface {
	SalesSummary(ctx context.Context, r dto.ReportRange) (*dto.SalesSummaryResponse, error)
	TopProducts(ctx context.Context, r dto.ReportRange) ([]dto.TopProductRow, error)

	// ReceiptText renders a text receipt for the given sale.
	ReceiptText(ctx context.Context, saleID uint) (string, error)
	// ReceiptPDF writes a PDF receipt to the receipt directory and returns
	// the file path.
	ReceiptPDF(ctx context.Context, saleID uint) (string, error)
}

type reportService struct {
	saleRepo   repository.SaleRepository
	settings   SettingsService
	receiptDir string
}

func NewReportService(saleRepo repository.SaleRepository, settings SettingsService, receiptDir string) ReportService {
	return &reportService{saleRepo: saleRepo, settings: settings, receiptDir: receiptDir}
}

func (s *reportService) SalesSummary(ctx context.Context, r dto.ReportRange) (*dto.SalesSummaryResponse, error) {
	summary, err := s.saleRepo.SummaryInRange(ctx, r.From, r.To)
	if err != nil {
		return nil, err
	}
	byMethod, err := s.saleRepo.TotalsByMethod(ctx, r.From, r.To)
	if err != nil {
		return nil, err
	}

	methods := make([]dto.PaymentMethodTotal, 0, len(byMethod))
	for _, m := range byMethod {
		methods = append(methods, dto.PaymentMethodTotal{
			Method:   m.PaymentMethod,
			Invoices: m.Invoices,
			Amount:   m.Amount,
		})
	}

	return &dto.SalesSummaryResponse{
		From:     r.From,
		To:       r.To,
		Invoices: summary.Invoices,
		Revenue:  summary.Revenue,
		ByMethod: methods,
	}, nil
}

func (s *reportService) TopProducts(ctx context.Context, r dto.ReportRange) ([]dto.TopProductRow, error) {
	if r.Limit < 1 {
		r.Limit = 20
	}
	rows, err := s.saleRepo.TopProducts(ctx, r.From, r.To, r.Limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TopProductRow, len(rows))
	for i, row := range rows {
		out[i] = dto.TopProductRow{
			Barcode:     row.Barcode,
			Description: row.Description,
			QtySold:     row.QtySold,
			Revenue:     row.Revenue,
		}
	}
	return out, nil
}

func (s *reportService) ReceiptText(ctx context.Context, saleID uint) (string, error) {
	sale, err := s.saleRepo.FindByID(ctx, saleID)
	if err != nil {
		return "", ErrSaleNotFound
	}
	info, err := s.receiptInfo(ctx)
	if err != nil {
		return "", err
	}
	return infra.FormatReceiptText(sale, info), nil
}

func (s *reportService) ReceiptPDF(ctx context.Context, saleID uint) (string, error) {
	sale, err := s.saleRepo.FindByID(ctx, saleID)
	if err != nil {
		return "", ErrSaleNotFound
	}
	info, err := s.receiptInfo(ctx)
	if err != nil {
		return "", err
	}
	return infra.GenerateReceiptPDF(sale, info, s.receiptDir)
}

func (s *reportService) receiptInfo(ctx context.Context) (infra.ReceiptInfo, error) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return infra.ReceiptInfo{}, err
	}
	return infra.ReceiptInfo{
		StoreName:      settings.StoreName,
		CurrencySymbol: settings.CurrencySymbol,
		Footer:         settings.ReceiptFooter,
	}, nil
}
