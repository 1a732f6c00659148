package service_test

import (
	"context"
	"testing"

	"retailpos/internal/dto"
	"retailpos/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildProductSvc() (service.ProductService, *stubProductRepo) {
	repo := newStubProductRepo()
	return service.NewProductService(repo), repo
}

func TestProductCreate_DuplicateBarcode(t *testing.T) {
	svc, repo := buildProductSvc()
	seedProduct(repo, "Milk 1L", "1234567890", 10, 5.00)

	bc := "1234567890"
	_, err := svc.Create(context.Background(), dto.CreateProductRequest{
		Name: "Other Milk", Barcode: &bc, SalePrice: decimal.NewFromFloat(4.50),
	})
	assert.ErrorIs(t, err, service.ErrDuplicateBarcode)
}

func TestProductCreate_EmptyBarcodeIsNull(t *testing.T) {
	svc, repo := buildProductSvc()

	empty := "  "
	resp, err := svc.Create(context.Background(), dto.CreateProductRequest{
		Name: "Loose Candy", Barcode: &empty, SalePrice: decimal.NewFromFloat(0.10),
	})
	require.NoError(t, err)
	assert.Nil(t, resp.Barcode)
	assert.Nil(t, repo.products[resp.ID].Barcode)
}

func TestProductUpdate_PartialFields(t *testing.T) {
	svc, repo := buildProductSvc()
	p := seedProduct(repo, "Milk 1L", "1234567890", 10, 5.00)

	newPrice := decimal.NewFromFloat(5.50)
	resp, err := svc.Update(context.Background(), p.ID, dto.UpdateProductRequest{SalePrice: &newPrice})
	require.NoError(t, err)
	assert.Equal(t, "5.5", resp.SalePrice.String())
	// Untouched fields survive
	assert.Equal(t, "Milk 1L", resp.Name)
	assert.Equal(t, 10, resp.StockQty)
}

func TestProductDelete_ReferencedIsProtected(t *testing.T) {
	svc, repo := buildProductSvc()
	p := seedProduct(repo, "Milk 1L", "1234567890", 10, 5.00)
	repo.refs[p.ID] = 3

	err := svc.Delete(context.Background(), p.ID)
	assert.ErrorIs(t, err, service.ErrProductReferenced)
	assert.Contains(t, repo.products, p.ID)
}

func TestProductDelete_Unreferenced(t *testing.T) {
	svc, repo := buildProductSvc()
	p := seedProduct(repo, "Milk 1L", "1234567890", 10, 5.00)

	require.NoError(t, svc.Delete(context.Background(), p.ID))
	assert.NotContains(t, repo.products, p.ID)
}

func TestAdjustStock_GuardsNegative(t *testing.T) {
	svc, repo := buildProductSvc()
	p := seedProduct(repo, "Milk 1L", "1234567890", 5, 5.00)

	_, err := svc.AdjustStock(context.Background(), p.ID, dto.AdjustStockRequest{Delta: -8, Reason: "breakage"})
	assert.ErrorIs(t, err, service.ErrInsufficientStock)
	assert.Equal(t, 5, repo.products[p.ID].StockQty)

	resp, err := svc.AdjustStock(context.Background(), p.ID, dto.AdjustStockRequest{Delta: -3, Reason: "breakage"})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.StockQty)
}

func TestListLowStock(t *testing.T) {
	svc, repo := buildProductSvc()
	low := seedProduct(repo, "Milk 1L", "111", 2, 5.00)
	low.ReorderLevel = 5
	ok := seedProduct(repo, "Bread", "222", 50, 2.00)
	ok.ReorderLevel = 5

	resp, err := svc.ListLowStock(context.Background())
	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, "Milk 1L", resp[0].Name)
	assert.True(t, resp[0].LowStock)
}

func TestGetByBarcode(t *testing.T) {
	svc, repo := buildProductSvc()
	seedProduct(repo, "Milk 1L", "1234567890", 10, 5.00)

	resp, err := svc.GetByBarcode(context.Background(), " 1234567890 ")
	require.NoError(t, err)
	assert.Equal(t, "Milk 1L", resp.Name)

	_, err = svc.GetByBarcode(context.Background(), "0000000000")
	assert.ErrorIs(t, err, service.ErrProductNotFound)
}
