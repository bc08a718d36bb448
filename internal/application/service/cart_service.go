package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/mo-alkubaish/POSitiveflow-sub000/internal/domain/entity"
	"github.com/mo-alkubaish/POSitiveflow-sub000/internal/domain/enum"
	"github.com/mo-alkubaish/POSitiveflow-sub000/internal/domain/pricing"
	"github.com/mo-alkubaish/POSitiveflow-sub000/internal/domain/repository"
	"github.com/mo-alkubaish/POSitiveflow-sub000/pkg/apperror"
	"github.com/mo-alkubaish/POSitiveflow-sub000/pkg/pagination"
	"github.com/shopspring/decimal"
)

// VATProvider supplies the current VAT rate at computation time. The cart
// never caches the rate itself.
type VATProvider interface {
	VATRate(ctx context.Context) (decimal.Decimal, error)
}

// CartService owns the cart lifecycle: draft mutations, pricing recomputation
// and the checkout transition with its inventory and loyalty side effects.
type CartService struct {
	cartRepo     repository.CartRepository
	itemRepo     repository.ItemRepository
	discountRepo repository.DiscountRepository
	customerRepo repository.CustomerRepository
	loyaltyRepo  repository.LoyaltyRepository
	vat          VATProvider
	now          func() time.Time
}

// NewCartService creates a new cart service
func NewCartService(
	cartRepo repository.CartRepository,
	itemRepo repository.ItemRepository,
	discountRepo repository.DiscountRepository,
	customerRepo repository.CustomerRepository,
	loyaltyRepo repository.LoyaltyRepository,
	vat VATProvider,
) *CartService {
	return &CartService{
		cartRepo:     cartRepo,
		itemRepo:     itemRepo,
		discountRepo: discountRepo,
		customerRepo: customerRepo,
		loyaltyRepo:  loyaltyRepo,
		vat:          vat,
		now:          time.Now,
	}
}

// CartItemInput represents one requested item-quantity pairing
type CartItemInput struct {
	ItemID   uuid.UUID
	Quantity int
}

// CreateCart opens an empty draft cart for a cashier
func (s *CartService) CreateCart(ctx context.Context, cashierID uuid.UUID) (*entity.Cart, error) {
	cart := &entity.Cart{
		CashierID: cashierID,
		Status:    enum.CartStatusDraft,
	}
	if err := s.cartRepo.Create(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// GetCart retrieves a cart by ID
func (s *CartService) GetCart(ctx context.Context, id uuid.UUID) (*entity.Cart, error) {
	cart, err := s.cartRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, apperror.NewNotFoundError("Cart")
	}
	return cart, nil
}

// ListCarts lists carts with filtering
func (s *CartService) ListCarts(ctx context.Context, params *repository.CartFilterParams) (*pagination.PaginatedResult[entity.Cart], error) {
	carts, total, err := s.cartRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(carts, pag), nil
}

// SetItems replaces the cart's line items. Unit prices are snapshotted from
// the catalog at this point; later price edits do not move open drafts.
func (s *CartService) SetItems(ctx context.Context, cartID uuid.UUID, inputs []CartItemInput) (*entity.Cart, error) {
	cart, err := s.loadDraft(ctx, cartID)
	if err != nil {
		return nil, err
	}

	itemIDs := make([]uuid.UUID, len(inputs))
	for i, input := range inputs {
		if input.Quantity <= 0 {
			return nil, apperror.ErrInvalidLineItem
		}
		itemIDs[i] = input.ItemID
	}

	// Batch fetch all items in one query (prevents N+1)
	items, err := s.itemRepo.GetByIDs(ctx, itemIDs)
	if err != nil {
		return nil, err
	}
	itemMap := make(map[uuid.UUID]*entity.Item, len(items))
	for i := range items {
		itemMap[items[i].ID] = &items[i]
	}

	lineItems := make([]entity.LineItem, 0, len(inputs))
	for _, input := range inputs {
		item, exists := itemMap[input.ItemID]
		if !exists {
			return nil, apperror.NewNotFoundError(fmt.Sprintf("Item %s", input.ItemID))
		}
		lineItems = append(lineItems, entity.LineItem{
			CartID:    cart.ID,
			ItemID:    input.ItemID,
			Quantity:  input.Quantity,
			UnitPrice: item.Price,
			LineTotal: item.Price * int64(input.Quantity),
			Item:      *item,
		})
	}

	cart.Items = lineItems
	if err := s.recompute(ctx, cart); err != nil {
		return nil, err
	}

	if err := s.cartRepo.ReplaceItems(ctx, cart.ID, lineItems); err != nil {
		return nil, err
	}
	if err := s.cartRepo.Update(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// SetCustomer attaches a customer to a draft cart
func (s *CartService) SetCustomer(ctx context.Context, cartID, customerID uuid.UUID) (*entity.Cart, error) {
	cart, err := s.loadDraft(ctx, cartID)
	if err != nil {
		return nil, err
	}

	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	cart.CustomerID = &customer.ID
	cart.Customer = customer
	if err := s.cartRepo.Update(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// ApplyDiscount applies a catalog discount to a draft cart. The validity
// window is checked here, at application time, and the discount's kind and
// value are snapshotted onto the cart.
func (s *CartService) ApplyDiscount(ctx context.Context, cartID, discountID uuid.UUID) (*entity.Cart, error) {
	cart, err := s.loadDraft(ctx, cartID)
	if err != nil {
		return nil, err
	}

	discount, err := s.discountRepo.GetByID(ctx, discountID)
	if err != nil {
		return nil, err
	}
	if discount == nil {
		return nil, apperror.NewNotFoundError("Discount")
	}
	if cart.HasDiscount(discountID) {
		return nil, apperror.ErrDuplicateDiscount
	}
	if !discount.IsValidAt(s.now()) {
		return nil, apperror.ErrDiscountNotApplicable
	}

	// Positions are never re-packed on removal, so the next slot is one past
	// the highest surviving position, not the count.
	position := 0
	for _, d := range cart.Discounts {
		if d.Position > position {
			position = d.Position
		}
	}

	applied := entity.CartDiscount{
		CartID:     cart.ID,
		DiscountID: discount.ID,
		Position:   position + 1,
		Name:       discount.Name,
		Kind:       discount.Kind,
		Value:      discount.Value,
	}
	cart.Discounts = append(cart.Discounts, applied)
	if err := s.recompute(ctx, cart); err != nil {
		return nil, err
	}

	if err := s.cartRepo.AddDiscount(ctx, &applied); err != nil {
		return nil, err
	}
	if err := s.cartRepo.Update(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// RemoveDiscount removes an applied discount from a draft cart
func (s *CartService) RemoveDiscount(ctx context.Context, cartID, discountID uuid.UUID) (*entity.Cart, error) {
	cart, err := s.loadDraft(ctx, cartID)
	if err != nil {
		return nil, err
	}

	if !cart.HasDiscount(discountID) {
		return nil, apperror.NewNotFoundError("Applied discount")
	}

	kept := make([]entity.CartDiscount, 0, len(cart.Discounts)-1)
	for _, d := range cart.Discounts {
		if d.DiscountID != discountID {
			kept = append(kept, d)
		}
	}
	cart.Discounts = kept
	if err := s.recompute(ctx, cart); err != nil {
		return nil, err
	}

	if err := s.cartRepo.RemoveDiscount(ctx, cart.ID, discountID); err != nil {
		return nil, err
	}
	if err := s.cartRepo.Update(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// RedeemPoints records the points to consume against a draft cart. The ledger
// is only debited at checkout; until then the redemption is just a priced-in
// intent, re-validated against the balance here.
func (s *CartService) RedeemPoints(ctx context.Context, cartID uuid.UUID, points int) (*entity.Cart, error) {
	cart, err := s.loadDraft(ctx, cartID)
	if err != nil {
		return nil, err
	}

	if points < 0 {
		return nil, apperror.NewBadRequestError("Points redeemed cannot be negative")
	}
	if points > 0 {
		if cart.CustomerID == nil {
			return nil, apperror.NewBadRequestError("Cart needs a customer before points can be redeemed")
		}
		account, err := s.loyaltyRepo.GetByCustomerID(ctx, *cart.CustomerID)
		if err != nil {
			return nil, err
		}
		if account == nil || account.Points < points {
			return nil, apperror.ErrInsufficientPoints
		}
	}

	cart.PointsRedeemed = points
	if err := s.recompute(ctx, cart); err != nil {
		return nil, err
	}

	if err := s.cartRepo.Update(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// Checkout transitions a draft cart to Paid. Totals are recomputed as the
// authoritative snapshot, stock is decremented atomically for all line items,
// and redeemed points are debited from the ledger exactly once. Side effects
// already applied are compensated when a later step fails.
func (s *CartService) Checkout(ctx context.Context, cartID, callerID uuid.UUID) (*entity.Cart, error) {
	cart, err := s.cartRepo.GetByID(ctx, cartID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, apperror.NewNotFoundError("Cart")
	}

	if !cart.Status.CanTransitionTo(enum.CartStatusPaid) {
		return nil, apperror.ErrInvalidState
	}
	if len(cart.Items) == 0 {
		return nil, apperror.NewBadRequestError("Cart has no items")
	}
	if cart.CustomerID == nil {
		return nil, apperror.NewBadRequestError("Cart has no customer")
	}
	if cart.CashierID != callerID {
		return nil, apperror.ErrUnauthorized
	}

	// Authoritative totals at transition time; a stale cached total is never charged
	if err := s.recompute(ctx, cart); err != nil {
		return nil, err
	}

	stockDecrements := make(map[uuid.UUID]int, len(cart.Items))
	for _, line := range cart.Items {
		stockDecrements[line.ItemID] += line.Quantity
	}

	failedIDs, err := s.itemRepo.AtomicDecrementBatch(ctx, stockDecrements)
	if err != nil {
		return nil, err
	}
	if len(failedIDs) > 0 {
		var failedNames []string
		for _, id := range failedIDs {
			for _, line := range cart.Items {
				if line.ItemID == id {
					failedNames = append(failedNames, line.Item.Name)
					break
				}
			}
		}
		return nil, apperror.NewInsufficientStockError(failedNames)
	}

	if cart.PointsRedeemed > 0 {
		debited, err := s.loyaltyRepo.Adjust(ctx, *cart.CustomerID, -cart.PointsRedeemed)
		if err != nil {
			_ = s.itemRepo.AtomicIncrementBatch(ctx, stockDecrements)
			return nil, err
		}
		if !debited {
			_ = s.itemRepo.AtomicIncrementBatch(ctx, stockDecrements)
			return nil, apperror.ErrInsufficientPoints
		}
	}

	receiptNo := fmt.Sprintf("RCT-%s", uuid.New().String()[:8])
	cart.ReceiptNo = &receiptNo
	cart.Status = enum.CartStatusPaid

	if err := s.cartRepo.Update(ctx, cart); err != nil {
		// Restore side effects so the draft can be checked out again
		_ = s.itemRepo.AtomicIncrementBatch(ctx, stockDecrements)
		if cart.PointsRedeemed > 0 {
			_, _ = s.loyaltyRepo.Adjust(ctx, *cart.CustomerID, cart.PointsRedeemed)
		}
		cart.Status = enum.CartStatusDraft
		cart.ReceiptNo = nil
		return nil, err
	}

	return cart, nil
}

// ConfirmCart marks a paid cart as reconciled. Confirmed is terminal and
// read-only from then on.
func (s *CartService) ConfirmCart(ctx context.Context, cartID uuid.UUID) (*entity.Cart, error) {
	cart, err := s.cartRepo.GetByID(ctx, cartID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, apperror.NewNotFoundError("Cart")
	}

	if !cart.Status.CanTransitionTo(enum.CartStatusConfirmed) {
		return nil, apperror.ErrInvalidState
	}

	cart.Status = enum.CartStatusConfirmed
	if err := s.cartRepo.Update(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// loadDraft loads a cart and enforces the draft-only mutation guard
func (s *CartService) loadDraft(ctx context.Context, cartID uuid.UUID) (*entity.Cart, error) {
	cart, err := s.cartRepo.GetByID(ctx, cartID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, apperror.NewNotFoundError("Cart")
	}
	if !cart.Status.IsMutable() {
		return nil, apperror.ErrInvalidState
	}
	return cart, nil
}

// recompute rebuilds all derived totals from the cart's current contents.
// The VAT rate is read through the provider on every call.
func (s *CartService) recompute(ctx context.Context, cart *entity.Cart) error {
	vatRate, err := s.vat.VATRate(ctx)
	if err != nil {
		return err
	}

	lines := make([]pricing.Line, len(cart.Items))
	for i, item := range cart.Items {
		lines[i] = pricing.Line{
			ItemID:    item.ItemID,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		}
	}

	sort.SliceStable(cart.Discounts, func(i, j int) bool {
		return cart.Discounts[i].Position < cart.Discounts[j].Position
	})
	discounts := make([]pricing.Discount, len(cart.Discounts))
	for i, d := range cart.Discounts {
		discounts[i] = pricing.Discount{
			ID:    d.DiscountID,
			Kind:  d.Kind,
			Value: d.Value,
		}
	}

	totals, err := pricing.ComputeTotals(lines, discounts, cart.PointsRedeemed, vatRate)
	if err != nil {
		return err
	}

	cart.ItemsTotal = totals.ItemsTotal
	cart.DiscountTotal = totals.DiscountTotal
	cart.VATAmount = totals.VATAmount
	cart.GrandTotal = totals.GrandTotal
	return nil
}
