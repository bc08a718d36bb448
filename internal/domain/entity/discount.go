package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/mo-alkubaish/POSitiveflow-sub000/internal/domain/enum"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Discount represents an administrative discount definition. Carts snapshot
// the kind and value at application time, so later edits do not change
// already-applied discounts.
type Discount struct {
	ID        uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	Name      string            `gorm:"size:255;not null" json:"name"`
	Kind      enum.DiscountKind `gorm:"default:0" json:"kind"`
	Value     decimal.Decimal   `gorm:"type:numeric(12,4);not null" json:"value"`
	ValidFrom time.Time         `gorm:"not null" json:"valid_from"`
	ValidTo   time.Time         `gorm:"not null" json:"valid_to"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
	DeletedAt gorm.DeletedAt    `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new discount
func (d *Discount) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Discount model
func (Discount) TableName() string {
	return "discounts"
}

// IsValidAt reports whether the discount's validity window covers t
func (d *Discount) IsValidAt(t time.Time) bool {
	return !t.Before(d.ValidFrom) && !t.After(d.ValidTo)
}
