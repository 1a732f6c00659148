package service_test

import (
	"context"
	"testing"

	"retailpos/internal/dto"
	"retailpos/internal/model"
	"retailpos/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildReportSvc(t *testing.T) (service.ReportService, service.SaleService, *stubProductRepo) {
	t.Helper()
	productRepo := newStubProductRepo()
	saleRepo := newStubSaleRepo()
	settingRepo := newStubSettingRepo()
	settingsSvc := service.NewSettingsService(settingRepo)
	require.NoError(t, settingsSvc.Seed(context.Background()))

	saleSvc := service.NewSaleService(saleRepo, productRepo)
	reportSvc := service.NewReportService(saleRepo, settingsSvc, t.TempDir())
	return reportSvc, saleSvc, productRepo
}

func TestSalesSummary(t *testing.T) {
	reportSvc, saleSvc, productRepo := buildReportSvc(t)
	p := seedProduct(productRepo, "Milk 1L", "111", 100, 5.00)

	_, err := saleSvc.Checkout(context.Background(), nil, cashCheckout(p, 2, 10.00))
	require.NoError(t, err)
	req := cashCheckout(p, 1, 5.00)
	req.PaymentMethod = model.PaymentCard
	_, err = saleSvc.Checkout(context.Background(), nil, req)
	require.NoError(t, err)

	resp, err := reportSvc.SalesSummary(context.Background(), dto.ReportRange{From: "2026-01-01", To: "2026-12-31"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.Invoices)
	assert.Equal(t, "15", resp.Revenue.String())
	assert.Len(t, resp.ByMethod, 2)
}

func TestTopProducts(t *testing.T) {
	reportSvc, saleSvc, productRepo := buildReportSvc(t)
	milk := seedProduct(productRepo, "Milk 1L", "111", 100, 5.00)
	bread := seedProduct(productRepo, "Bread", "222", 100, 2.00)

	_, err := saleSvc.Checkout(context.Background(), nil, cashCheckout(milk, 5, 25.00))
	require.NoError(t, err)
	_, err = saleSvc.Checkout(context.Background(), nil, cashCheckout(bread, 2, 4.00))
	require.NoError(t, err)

	rows, err := reportSvc.TopProducts(context.Background(), dto.ReportRange{From: "2026-01-01", To: "2026-12-31", Limit: 10})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	for _, row := range rows {
		if row.Description == "Milk 1L" {
			assert.Equal(t, int64(5), row.QtySold)
			assert.Equal(t, "25", row.Revenue.String())
		}
	}
}

func TestReceiptText(t *testing.T) {
	reportSvc, saleSvc, productRepo := buildReportSvc(t)
	p := seedProduct(productRepo, "Milk 1L", "111", 10, 5.00)

	sale, err := saleSvc.Checkout(context.Background(), nil, cashCheckout(p, 3, 20.00))
	require.NoError(t, err)

	text, err := reportSvc.ReceiptText(context.Background(), sale.ID)
	require.NoError(t, err)
	assert.Contains(t, text, "My Store")
	assert.Contains(t, text, sale.InvoiceNo)
	assert.Contains(t, text, "Milk 1L")
	assert.Contains(t, text, "TOTAL")
	assert.Contains(t, text, "Change")
	assert.Contains(t, text, "Thank you for your purchase!")
}

func TestReceiptText_UnknownSale(t *testing.T) {
	reportSvc, _, _ := buildReportSvc(t)
	_, err := reportSvc.ReceiptText(context.Background(), 99)
	assert.ErrorIs(t, err, service.ErrSaleNotFound)
}
