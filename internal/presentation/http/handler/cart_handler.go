package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mo-alkubaish/POSitiveflow-sub000/internal/application/service"
	"github.com/mo-alkubaish/POSitiveflow-sub000/internal/domain/enum"
	"github.com/mo-alkubaish/POSitiveflow-sub000/internal/domain/repository"
	"github.com/mo-alkubaish/POSitiveflow-sub000/internal/presentation/http/dto/request"
	"github.com/mo-alkubaish/POSitiveflow-sub000/internal/presentation/http/dto/response"
	"github.com/mo-alkubaish/POSitiveflow-sub000/pkg/pagination"
)

// CartHandler handles cart-related HTTP requests
type CartHandler struct {
	cartService *service.CartService
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// Create handles opening a new draft cart for the authenticated cashier
func (h *CartHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	cart, err := h.cartService.CreateCart(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Cart created successfully", cart)
}

// Get handles retrieving a single cart
func (h *CartHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid cart ID")
		return
	}

	cart, err := h.cartService.GetCart(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cart retrieved successfully", cart)
}

// List handles listing carts with filters
func (h *CartHandler) List(c *gin.Context) {
	var filter request.CartFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.CartFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
	}

	if filter.Status != "" {
		status, ok := enum.ParseCartStatus(filter.Status)
		if !ok {
			response.BadRequest(c, "Invalid cart status")
			return
		}
		params.Status = &status
	}
	if filter.CashierID != "" {
		if cashierID, err := uuid.Parse(filter.CashierID); err == nil {
			params.CashierID = &cashierID
		}
	}
	if filter.CustomerID != "" {
		if customerID, err := uuid.Parse(filter.CustomerID); err == nil {
			params.CustomerID = &customerID
		}
	}

	result, err := h.cartService.ListCarts(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Carts retrieved successfully", result)
}

// SetItems handles replacing the line items of a draft cart
func (h *CartHandler) SetItems(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid cart ID")
		return
	}

	var req request.SetCartItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	inputs := make([]service.CartItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		inputs = append(inputs, service.CartItemInput{
			ItemID:   item.ItemID,
			Quantity: item.Quantity,
		})
	}

	cart, err := h.cartService.SetItems(c.Request.Context(), id, inputs)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cart items updated successfully", cart)
}

// SetCustomer handles attaching a customer to a draft cart
func (h *CartHandler) SetCustomer(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid cart ID")
		return
	}

	var req request.SetCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	cart, err := h.cartService.SetCustomer(c.Request.Context(), id, req.CustomerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer attached successfully", cart)
}

// ApplyDiscount handles applying a catalog discount to a draft cart
func (h *CartHandler) ApplyDiscount(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid cart ID")
		return
	}

	var req request.ApplyDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	cart, err := h.cartService.ApplyDiscount(c.Request.Context(), id, req.DiscountID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Discount applied successfully", cart)
}

// RemoveDiscount handles removing an applied discount from a draft cart
func (h *CartHandler) RemoveDiscount(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid cart ID")
		return
	}

	discountID, ok := parseIDParam(c, "discountId")
	if !ok {
		response.BadRequest(c, "Invalid discount ID")
		return
	}

	cart, err := h.cartService.RemoveDiscount(c.Request.Context(), id, discountID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Discount removed successfully", cart)
}

// RedeemPoints handles setting the loyalty points redeemed against a draft cart
func (h *CartHandler) RedeemPoints(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid cart ID")
		return
	}

	var req request.RedeemPointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	cart, err := h.cartService.RedeemPoints(c.Request.Context(), id, req.Points)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Points redemption updated successfully", cart)
}

// Checkout handles settling a draft cart: stock is decremented, redeemed
// points are debited and a receipt number is issued
func (h *CartHandler) Checkout(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid cart ID")
		return
	}

	cart, err := h.cartService.Checkout(c.Request.Context(), id, *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Checkout completed successfully", cart)
}

// Confirm handles marking a paid cart as reconciled
func (h *CartHandler) Confirm(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid cart ID")
		return
	}

	cart, err := h.cartService.ConfirmCart(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cart confirmed successfully", cart)
}
