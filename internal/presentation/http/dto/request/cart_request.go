package request

import "github.com/google/uuid"

// CartItemRequest represents one item-quantity pairing in a cart
type CartItemRequest struct {
	ItemID   uuid.UUID `json:"item_id" binding:"required"`
	Quantity int       `json:"quantity" binding:"required,min=1"`
}

// SetCartItemsRequest replaces a draft cart's line items
type SetCartItemsRequest struct {
	Items []CartItemRequest `json:"items" binding:"required,dive"`
}

// SetCustomerRequest attaches a customer to a draft cart
type SetCustomerRequest struct {
	CustomerID uuid.UUID `json:"customer_id" binding:"required"`
}

// ApplyDiscountRequest applies a catalog discount to a draft cart
type ApplyDiscountRequest struct {
	DiscountID uuid.UUID `json:"discount_id" binding:"required"`
}

// RedeemPointsRequest sets the loyalty points to redeem against a draft cart
type RedeemPointsRequest struct {
	Points int `json:"points" binding:"min=0"`
}

// CartFilterRequest represents cart list filter parameters
type CartFilterRequest struct {
	Status     string `form:"status"`
	CashierID  string `form:"cashier_id"`
	CustomerID string `form:"customer_id"`
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
}
