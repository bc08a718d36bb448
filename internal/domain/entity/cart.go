package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/mo-alkubaish/POSitiveflow-sub000/internal/domain/enum"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Cart is the central checkout aggregate. Totals are derived fields recomputed
// from scratch on every mutation; they are never patched incrementally.
type Cart struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	CashierID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"cashier_id"`
	CustomerID     *uuid.UUID      `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	Status         enum.CartStatus `gorm:"default:0" json:"status"`
	PointsRedeemed int             `gorm:"default:0" json:"points_redeemed"`
	ItemsTotal     int64           `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	DiscountTotal  int64           `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	VATAmount      int64           `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	GrandTotal     int64           `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	ReceiptNo      *string         `gorm:"size:100;unique" json:"receipt_no,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	DeletedAt      gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	Cashier   User           `gorm:"foreignKey:CashierID" json:"-"`
	Customer  *Customer      `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Items     []LineItem     `gorm:"foreignKey:CartID" json:"items,omitempty"`
	Discounts []CartDiscount `gorm:"foreignKey:CartID" json:"discounts,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (c Cart) MarshalJSON() ([]byte, error) {
	type Alias Cart
	return json.Marshal(&struct {
		Alias
		ItemsTotal    float64 `json:"items_total"`
		DiscountTotal float64 `json:"discount_total"`
		VATAmount     float64 `json:"vat_amount"`
		GrandTotal    float64 `json:"grand_total"`
	}{
		Alias:         Alias(c),
		ItemsTotal:    float64(c.ItemsTotal) / 100,
		DiscountTotal: float64(c.DiscountTotal) / 100,
		VATAmount:     float64(c.VATAmount) / 100,
		GrandTotal:    float64(c.GrandTotal) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new cart
func (c *Cart) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Cart model
func (Cart) TableName() string {
	return "carts"
}

// HasDiscount reports whether the discount is already applied to the cart
func (c *Cart) HasDiscount(discountID uuid.UUID) bool {
	for _, d := range c.Discounts {
		if d.DiscountID == discountID {
			return true
		}
	}
	return false
}

// LineItem represents one item-quantity pairing within a cart. The unit price
// is a snapshot taken when the item is added; later catalog edits do not move
// totals of open drafts.
type LineItem struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CartID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"cart_id"`
	ItemID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"item_id"`
	Quantity  int            `gorm:"not null" json:"quantity"`
	UnitPrice int64          `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	LineTotal int64          `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Cart Cart `gorm:"foreignKey:CartID" json:"-"`
	Item Item `gorm:"foreignKey:ItemID" json:"item,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (li LineItem) MarshalJSON() ([]byte, error) {
	type Alias LineItem
	return json.Marshal(&struct {
		Alias
		UnitPrice float64 `json:"unit_price"`
		LineTotal float64 `json:"line_total"`
	}{
		Alias:     Alias(li),
		UnitPrice: float64(li.UnitPrice) / 100,
		LineTotal: float64(li.LineTotal) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new line item
func (li *LineItem) BeforeCreate(tx *gorm.DB) error {
	if li.ID == uuid.Nil {
		li.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the LineItem model
func (LineItem) TableName() string {
	return "line_items"
}

// CartDiscount is an applied discount on a cart. Kind, value and name are
// snapshots taken at application time. Position fixes the stacking order:
// discounts are applied in ascending position, which is application order.
type CartDiscount struct {
	ID         uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	CartID     uuid.UUID         `gorm:"type:uuid;not null;index:idx_cart_discount,unique" json:"cart_id"`
	DiscountID uuid.UUID         `gorm:"type:uuid;not null;index:idx_cart_discount,unique" json:"discount_id"`
	Position   int               `gorm:"not null" json:"position"`
	Name       string            `gorm:"size:255;not null" json:"name"`
	Kind       enum.DiscountKind `gorm:"default:0" json:"kind"`
	Value      decimal.Decimal   `gorm:"type:numeric(12,4);not null" json:"value"`
	CreatedAt  time.Time         `json:"created_at"`

	// Relationships
	Cart     Cart     `gorm:"foreignKey:CartID" json:"-"`
	Discount Discount `gorm:"foreignKey:DiscountID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new cart discount
func (cd *CartDiscount) BeforeCreate(tx *gorm.DB) error {
	if cd.ID == uuid.Nil {
		cd.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the CartDiscount model
func (CartDiscount) TableName() string {
	return "cart_discounts"
}
