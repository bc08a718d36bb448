package request

import "time"

// CreateDiscountRequest represents a discount creation request.
// Kind is 0 for percentage, 1 for a fixed amount.
type CreateDiscountRequest struct {
	Name      string    `json:"name" binding:"required,min=2,max=255"`
	Kind      int       `json:"kind" binding:"min=0,max=1"`
	Value     float64   `json:"value" binding:"min=0"`
	ValidFrom time.Time `json:"valid_from" binding:"required"`
	ValidTo   time.Time `json:"valid_to" binding:"required"`
}

// UpdateDiscountRequest represents a discount update request
type UpdateDiscountRequest struct {
	Name      *string    `json:"name" binding:"omitempty,min=2,max=255"`
	Kind      *int       `json:"kind" binding:"omitempty,min=0,max=1"`
	Value     *float64   `json:"value" binding:"omitempty,min=0"`
	ValidFrom *time.Time `json:"valid_from"`
	ValidTo   *time.Time `json:"valid_to"`
}

// DiscountFilterRequest represents discount list filter parameters
type DiscountFilterRequest struct {
	Search     string `form:"search"`
	ActiveOnly bool   `form:"active_only"`
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
}
