package repository

import (
	"context"

	"github.com/mo-alkubaish/POSitiveflow-sub000/internal/domain/entity"
)

// SettingsRepository defines the interface for store settings data access.
// There is a single settings row per store.
type SettingsRepository interface {
	Get(ctx context.Context) (*entity.StoreSettings, error)
	Create(ctx context.Context, settings *entity.StoreSettings) error
	Update(ctx context.Context, settings *entity.StoreSettings) error
}
