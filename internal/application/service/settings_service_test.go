package service

import (
	"context"
	"testing"
	"time"

	"github.com/mo-alkubaish/POSitiveflow-sub000/internal/domain/entity"
	"github.com/mo-alkubaish/POSitiveflow-sub000/pkg/settingscache"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSettingsRepo struct {
	settings *entity.StoreSettings
	getCalls int
}

func (r *fakeSettingsRepo) Get(ctx context.Context) (*entity.StoreSettings, error) {
	r.getCalls++
	return r.settings, nil
}

func (r *fakeSettingsRepo) Create(ctx context.Context, s *entity.StoreSettings) error {
	r.settings = s
	return nil
}

func (r *fakeSettingsRepo) Update(ctx context.Context, s *entity.StoreSettings) error {
	r.settings = s
	return nil
}

func TestGetSettingsCreatesDefaults(t *testing.T) {
	repo := &fakeSettingsRepo{}
	svc := NewSettingsService(repo, settingscache.NoopCache{}, time.Minute)

	settings, err := svc.GetSettings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1500), settings.VATRateBps)
	assert.Equal(t, 10, settings.LowStockThreshold)
	assert.Equal(t, "SAR", settings.Currency)
}

func TestVATRateConvertsBasisPoints(t *testing.T) {
	repo := &fakeSettingsRepo{settings: &entity.StoreSettings{VATRateBps: 1500, LowStockThreshold: 10}}
	svc := NewSettingsService(repo, settingscache.NewMemoryCache(), time.Minute)

	rate, err := svc.VATRate(context.Background())
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.RequireFromString("0.15")), "got %s", rate)
}

func TestVATRateServedFromCache(t *testing.T) {
	repo := &fakeSettingsRepo{settings: &entity.StoreSettings{VATRateBps: 1500, LowStockThreshold: 10}}
	svc := NewSettingsService(repo, settingscache.NewMemoryCache(), time.Minute)
	ctx := context.Background()

	_, err := svc.VATRate(ctx)
	require.NoError(t, err)
	_, err = svc.VATRate(ctx)
	require.NoError(t, err)
	_, err = svc.LowStockThreshold(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, repo.getCalls)
}

func TestUpdateSettingsInvalidatesCache(t *testing.T) {
	repo := &fakeSettingsRepo{settings: &entity.StoreSettings{VATRateBps: 1500, LowStockThreshold: 10}}
	svc := NewSettingsService(repo, settingscache.NewMemoryCache(), time.Minute)
	ctx := context.Background()

	rate, err := svc.VATRate(ctx)
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.RequireFromString("0.15")))

	_, err = svc.UpdateSettings(ctx, &UpdateSettingsInput{
		StoreName:         "POSitiveflow",
		Currency:          "SAR",
		VATRateBps:        500,
		LowStockThreshold: 5,
	})
	require.NoError(t, err)

	rate, err = svc.VATRate(ctx)
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.RequireFromString("0.05")), "got %s", rate)
}
