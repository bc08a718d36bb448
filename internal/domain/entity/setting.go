package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StoreSettings is the single store-wide settings row. The VAT rate is stored
// in basis points (1500 = 15%) so it survives round-tripping through the
// database without precision loss.
type StoreSettings struct {
	ID                uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	StoreName         string         `gorm:"size:255;default:'POSitiveflow'" json:"store_name"`
	Currency          string         `gorm:"size:10;default:'SAR'" json:"currency"`
	VATRateBps        int64          `gorm:"default:1500" json:"vat_rate_bps"`
	LowStockThreshold int            `gorm:"default:10" json:"low_stock_threshold"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating new settings
func (s *StoreSettings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the StoreSettings model
func (StoreSettings) TableName() string {
	return "store_settings"
}
