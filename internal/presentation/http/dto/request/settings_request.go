package request

// UpdateSettingsRequest represents a store settings update request.
// The VAT rate is expressed in basis points (1500 = 15%).
type UpdateSettingsRequest struct {
	StoreName         string `json:"store_name" binding:"required,min=1,max=255"`
	Currency          string `json:"currency" binding:"required,min=1,max=10"`
	VATRateBps        int64  `json:"vat_rate_bps" binding:"min=0,max=10000"`
	LowStockThreshold int    `json:"low_stock_threshold" binding:"min=0"`
}

// CreateFeedbackRequest represents a feedback submission
type CreateFeedbackRequest struct {
	CustomerID *string `json:"customer_id"`
	Rating     int     `json:"rating" binding:"required,min=1,max=5"`
	Comment    *string `json:"comment"`
}
