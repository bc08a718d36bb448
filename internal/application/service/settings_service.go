package service

import (
	"context"
	"time"

	"github.com/mo-alkubaish/POSitiveflow-sub000/internal/domain/entity"
	"github.com/mo-alkubaish/POSitiveflow-sub000/internal/domain/repository"
	"github.com/mo-alkubaish/POSitiveflow-sub000/pkg/settingscache"
	"github.com/shopspring/decimal"
)

// SettingsService handles store settings and serves as the VAT rate provider
// for the pricing path. Reads go through an injected cache with explicit
// invalidation; there is no global settings singleton.
type SettingsService struct {
	settingsRepo repository.SettingsRepository
	cache        settingscache.Cache
	cacheTTL     time.Duration
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository, cache settingscache.Cache, cacheTTL time.Duration) *SettingsService {
	return &SettingsService{
		settingsRepo: settingsRepo,
		cache:        cache,
		cacheTTL:     cacheTTL,
	}
}

// GetSettings retrieves store settings, creating defaults if none exist
func (s *SettingsService) GetSettings(ctx context.Context) (*entity.StoreSettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	// If no settings exist, create default settings
	if settings == nil {
		settings = &entity.StoreSettings{
			StoreName:         "POSitiveflow",
			Currency:          "SAR",
			VATRateBps:        1500,
			LowStockThreshold: 10,
		}
		if err := s.settingsRepo.Create(ctx, settings); err != nil {
			return nil, err
		}
	}

	return settings, nil
}

// UpdateSettingsInput represents the input for updating settings
type UpdateSettingsInput struct {
	StoreName         string
	Currency          string
	VATRateBps        int64
	LowStockThreshold int
}

// UpdateSettings updates store settings and invalidates the cache so the next
// pricing computation sees the new VAT rate
func (s *SettingsService) UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*entity.StoreSettings, error) {
	settings, err := s.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	settings.StoreName = input.StoreName
	settings.Currency = input.Currency
	settings.VATRateBps = input.VATRateBps
	settings.LowStockThreshold = input.LowStockThreshold

	if err := s.settingsRepo.Update(ctx, settings); err != nil {
		return nil, err
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		return nil, err
	}

	return settings, nil
}

// VATRate returns the current VAT rate as a fraction (0.15 for 15%)
func (s *SettingsService) VATRate(ctx context.Context) (decimal.Decimal, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return decimal.New(snap.VATRateBps, -4), nil
}

// LowStockThreshold returns the stock level at or below which items are
// reported as running low
func (s *SettingsService) LowStockThreshold(ctx context.Context) (int, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return 0, err
	}
	return snap.LowStockThreshold, nil
}

// InvalidateCache drops the cached snapshot, forcing the next read back to
// the store. Exposed for test isolation and operational resets.
func (s *SettingsService) InvalidateCache(ctx context.Context) error {
	return s.cache.Invalidate(ctx)
}

func (s *SettingsService) snapshot(ctx context.Context) (*settingscache.Snapshot, error) {
	snap, hit, err := s.cache.Get(ctx)
	if err == nil && hit {
		return snap, nil
	}

	settings, err := s.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	snap = &settingscache.Snapshot{
		VATRateBps:        settings.VATRateBps,
		LowStockThreshold: settings.LowStockThreshold,
		Currency:          settings.Currency,
	}
	if err := s.cache.Set(ctx, snap, s.cacheTTL); err != nil {
		return nil, err
	}
	return snap, nil
}
