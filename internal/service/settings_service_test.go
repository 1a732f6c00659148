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

func TestSettingsSeed_FillsMissingOnly(t *testing.T) {
	repo := newStubSettingRepo()
	repo.values[model.SettingStoreName] = "Corner Shop"

	svc := service.NewSettingsService(repo)
	require.NoError(t, svc.Seed(context.Background()))

	// Pre-existing value untouched, missing keys seeded
	assert.Equal(t, "Corner Shop", repo.values[model.SettingStoreName])
	assert.Equal(t, "$", repo.values[model.SettingCurrencySymbol])
	assert.Equal(t, "5", repo.values[model.SettingLowStockThreshold])
}

func TestSettingsUpdate_PartialUpsert(t *testing.T) {
	repo := newStubSettingRepo()
	svc := service.NewSettingsService(repo)
	require.NoError(t, svc.Seed(context.Background()))

	tax := decimal.NewFromFloat(7.5)
	name := "Corner Shop"
	resp, err := svc.Update(context.Background(), dto.UpdateSettingsRequest{
		StoreName:         &name,
		DefaultTaxPercent: &tax,
	})
	require.NoError(t, err)

	assert.Equal(t, "Corner Shop", resp.StoreName)
	assert.Equal(t, "7.5", resp.DefaultTaxPercent.String())
	// Untouched keys keep defaults
	assert.Equal(t, "$", resp.CurrencySymbol)
	assert.Equal(t, 5, resp.LowStockThreshold)
}

func TestSettingsGet_MalformedValueFallsBack(t *testing.T) {
	repo := newStubSettingRepo()
	repo.values[model.SettingLowStockThreshold] = "not-a-number"
	repo.values[model.SettingDefaultTaxPercent] = "garbage"

	svc := service.NewSettingsService(repo)
	resp, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, resp.LowStockThreshold)
	assert.True(t, resp.DefaultTaxPercent.IsZero())
}
