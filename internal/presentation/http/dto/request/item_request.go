package request

// CreateItemRequest represents an item creation request
type CreateItemRequest struct {
	Name     string  `json:"name" binding:"required,min=2,max=255"`
	Barcode  string  `json:"barcode" binding:"required,max=100"`
	Category *string `json:"category"`
	Price    float64 `json:"price" binding:"min=0"`
	Stock    int     `json:"stock" binding:"min=0"`
}

// UpdateItemRequest represents an item update request
type UpdateItemRequest struct {
	Name     *string  `json:"name" binding:"omitempty,min=2,max=255"`
	Category *string  `json:"category"`
	Price    *float64 `json:"price" binding:"omitempty,min=0"`
	Stock    *int     `json:"stock" binding:"omitempty,min=0"`
}

// ItemFilterRequest represents item list filter parameters
type ItemFilterRequest struct {
	Search   string `form:"search"`
	Category string `form:"category"`
	Page     int    `form:"page"`
	PerPage  int    `form:"per_page"`
}
