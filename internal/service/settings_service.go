package service

import (
	"context"
	"strconv"

	"retailpos/internal/dto"
	"retailpos/internal/model"
	"retailpos/internal/repository"

	"github.com/shopspring/decimal"
)

// Defaults seeded when a key is missing, matching the first-run bootstrap.
var settingDefaults = map[string]string{
	model.SettingStoreName:         "My Store",
	model.SettingDefaultTaxPercent: "0",
	model.SettingCurrencySymbol:    "$",
	model.SettingLowStockThreshold: "5",
	model.SettingReceiptFooter:     "Thank you for your purchase!",
}

type SettingsService interface {
	Get(ctx context.Context) (*dto.SettingsResponse, error)
	Update(ctx context.Context, req dto.UpdateSettingsRequest) (*dto.SettingsResponse, error)

	// Seed writes the default value for every key that is absent. Called at
	// startup; existing values are never overwritten.
	Seed(ctx context.Context) error
}

type settingsService struct {
	repo repository.SettingRepository
}

func NewSettingsService(repo repository.SettingRepository) SettingsService {
	return &settingsService{repo: repo}
}

func (s *settingsService) Seed(ctx context.Context) error {
	existing, err := s.repo.All(ctx)
	if err != nil {
		return err
	}
	for key, def := range settingDefaults {
		if _, ok := existing[key]; ok {
			continue
		}
		if err := s.repo.Set(ctx, key, def); err != nil {
			return err
		}
	}
	return nil
}

func (s *settingsService) Get(ctx context.Context) (*dto.SettingsResponse, error) {
	values, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}
	return parseSettings(values), nil
}

func (s *settingsService) Update(ctx context.Context, req dto.UpdateSettingsRequest) (*dto.SettingsResponse, error) {
	if req.StoreName != nil {
		if err := s.repo.Set(ctx, model.SettingStoreName, *req.StoreName); err != nil {
			return nil, err
		}
	}
	if req.DefaultTaxPercent != nil {
		if err := s.repo.Set(ctx, model.SettingDefaultTaxPercent, req.DefaultTaxPercent.String()); err != nil {
			return nil, err
		}
	}
	if req.CurrencySymbol != nil {
		if err := s.repo.Set(ctx, model.SettingCurrencySymbol, *req.CurrencySymbol); err != nil {
			return nil, err
		}
	}
	if req.LowStockThreshold != nil {
		if err := s.repo.Set(ctx, model.SettingLowStockThreshold, strconv.Itoa(*req.LowStockThreshold)); err != nil {
			return nil, err
		}
	}
	if req.ReceiptFooter != nil {
		if err := s.repo.Set(ctx, model.SettingReceiptFooter, *req.ReceiptFooter); err != nil {
			return nil, err
		}
	}
	return s.Get(ctx)
}

// parseSettings converts the raw key/value map into the typed view, falling
// back to defaults for missing or malformed values.
func parseSettings(values map[string]string) *dto.SettingsResponse {
	get := func(key string) string {
		if v, ok := values[key]; ok {
			return v
		}
		return settingDefaults[key]
	}

	tax, err := decimal.NewFromString(get(model.SettingDefaultTaxPercent))
	if err != nil {
		tax = decimal.Zero
	}
	threshold, err := strconv.Atoi(get(model.SettingLowStockThreshold))
	if err != nil {
		threshold, _ = strconv.Atoi(settingDefaults[model.SettingLowStockThreshold])
	}

	return &dto.SettingsResponse{
		StoreName:         get(model.SettingStoreName),
		DefaultTaxPercent: tax,
		CurrencySymbol:    get(model.SettingCurrencySymbol),
		LowStockThreshold: threshold,
		ReceiptFooter:     get(model.SettingReceiptFooter),
	}
}
