package service_test

import (
	"context"
	"testing"

	"retailpos/internal/dto"
	"retailpos/internal/model"
	"retailpos/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildPurchaseSvc() (service.PurchaseService, *stubPurchaseRepo, *stubProductRepo, *stubSupplierRepo) {
	productRepo := newStubProductRepo()
	purchaseRepo := newStubPurchaseRepo()
	supplierRepo := newStubSupplierRepo()
	svc := service.NewPurchaseService(purchaseRepo, productRepo, supplierRepo)
	return svc, purchaseRepo, productRepo, supplierRepo
}

func seedSupplier(repo *stubSupplierRepo, name string) *model.Supplier {
	s := &model.Supplier{Name: name}
	_ = repo.Create(context.Background(), s)
	return repo.suppliers[s.ID]
}

func TestPurchaseRecord_IncrementsStock(t *testing.T) {
	svc, purchaseRepo, productRepo, supplierRepo := buildPurchaseSvc()
	p := seedProduct(productRepo, "Milk 1L", "111", 4, 5.00)
	sup := seedSupplier(supplierRepo, "Dairy Co")

	resp, err := svc.Record(context.Background(), dto.PurchaseRequest{
		SupplierID: &sup.ID,
		Items: []dto.PurchaseItemRequest{
			{ProductID: p.ID, Qty: 20, UnitPrice: decimal.NewFromFloat(3.20)},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "PUR-000001", resp.PurchaseNo)
	assert.Equal(t, "64", resp.TotalAmount.String())
	assert.Equal(t, "Dairy Co", resp.SupplierName)
	assert.Equal(t, 24, productRepo.products[p.ID].StockQty)
	assert.Len(t, purchaseRepo.purchases, 1)
}

func TestPurchaseRecord_UpdateCost(t *testing.T) {
	svc, _, productRepo, supplierRepo := buildPurchaseSvc()
	p := seedProduct(productRepo, "Milk 1L", "111", 4, 5.00)
	p.PurchasePrice = decimal.NewFromFloat(3.00)
	sup := seedSupplier(supplierRepo, "Dairy Co")

	_, err := svc.Record(context.Background(), dto.PurchaseRequest{
		SupplierID: &sup.ID,
		Items: []dto.PurchaseItemRequest{
			{ProductID: p.ID, Qty: 10, UnitPrice: decimal.NewFromFloat(3.40), UpdateCost: true},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "3.4", productRepo.products[p.ID].PurchasePrice.String())
}

func TestPurchaseRecord_FreeFormSupplierLinksByName(t *testing.T) {
	svc, purchaseRepo, productRepo, supplierRepo := buildPurchaseSvc()
	p := seedProduct(productRepo, "Milk 1L", "111", 4, 5.00)
	sup := seedSupplier(supplierRepo, "Dairy Co")

	resp, err := svc.Record(context.Background(), dto.PurchaseRequest{
		SupplierName: "Dairy Co",
		Items:        []dto.PurchaseItemRequest{{ProductID: p.ID, Qty: 1, UnitPrice: decimal.NewFromFloat(3.00)}},
	})
	require.NoError(t, err)
	require.NotNil(t, resp.SupplierID)
	assert.Equal(t, sup.ID, *resp.SupplierID)
	assert.Equal(t, "Dairy Co", purchaseRepo.purchases[resp.ID].SupplierName)
}

func TestPurchaseRecord_UnknownFreeFormSupplier(t *testing.T) {
	svc, _, productRepo, _ := buildPurchaseSvc()
	p := seedProduct(productRepo, "Milk 1L", "111", 4, 5.00)

	resp, err := svc.Record(context.Background(), dto.PurchaseRequest{
		SupplierName: "Roadside Vendor",
		Items:        []dto.PurchaseItemRequest{{ProductID: p.ID, Qty: 1, UnitPrice: decimal.NewFromFloat(2.00)}},
	})
	require.NoError(t, err)
	assert.Nil(t, resp.SupplierID)
	assert.Equal(t, "Roadside Vendor", resp.SupplierName)
}

func TestPurchaseRecord_UnknownProduct(t *testing.T) {
	svc, purchaseRepo, _, _ := buildPurchaseSvc()

	_, err := svc.Record(context.Background(), dto.PurchaseRequest{
		SupplierName: "Dairy Co",
		Items:        []dto.PurchaseItemRequest{{ProductID: 99, Qty: 1, UnitPrice: decimal.NewFromFloat(2.00)}},
	})
	assert.ErrorIs(t, err, service.ErrProductNotFound)
	assert.Empty(t, purchaseRepo.purchases)
}

func TestPurchaseRecord_UnknownSupplierID(t *testing.T) {
	svc, _, productRepo, _ := buildPurchaseSvc()
	p := seedProduct(productRepo, "Milk 1L", "111", 4, 5.00)

	missing := uint(42)
	_, err := svc.Record(context.Background(), dto.PurchaseRequest{
		SupplierID: &missing,
		Items:      []dto.PurchaseItemRequest{{ProductID: p.ID, Qty: 1, UnitPrice: decimal.NewFromFloat(2.00)}},
	})
	assert.ErrorIs(t, err, service.ErrSupplierNotFound)
}
