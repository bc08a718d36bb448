package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mo-alkubaish/POSitiveflow-sub000/internal/domain/entity"
	"github.com/mo-alkubaish/POSitiveflow-sub000/internal/domain/enum"
	"github.com/mo-alkubaish/POSitiveflow-sub000/internal/domain/repository"
	"github.com/mo-alkubaish/POSitiveflow-sub000/pkg/apperror"
	"github.com/mo-alkubaish/POSitiveflow-sub000/pkg/pagination"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// In-memory fakes. The cart fake clones on read and write so the service's
// working copy never aliases stored state, mirroring a real round trip.

type fakeCartRepo struct {
	carts map[uuid.UUID]*entity.Cart
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{carts: make(map[uuid.UUID]*entity.Cart)}
}

func cloneCart(c *entity.Cart) *entity.Cart {
	clone := *c
	clone.Items = append([]entity.LineItem(nil), c.Items...)
	clone.Discounts = append([]entity.CartDiscount(nil), c.Discounts...)
	return &clone
}

func (r *fakeCartRepo) Create(ctx context.Context, cart *entity.Cart) error {
	if cart.ID == uuid.Nil {
		cart.ID = uuid.New()
	}
	r.carts[cart.ID] = cloneCart(cart)
	return nil
}

func (r *fakeCartRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Cart, error) {
	cart, ok := r.carts[id]
	if !ok {
		return nil, nil
	}
	return cloneCart(cart), nil
}

func (r *fakeCartRepo) Update(ctx context.Context, cart *entity.Cart) error {
	r.carts[cart.ID] = cloneCart(cart)
	return nil
}

func (r *fakeCartRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.carts, id)
	return nil
}

func (r *fakeCartRepo) List(ctx context.Context, params *repository.CartFilterParams) ([]entity.Cart, int64, error) {
	var out []entity.Cart
	for _, cart := range r.carts {
		out = append(out, *cloneCart(cart))
	}
	return out, int64(len(out)), nil
}

func (r *fakeCartRepo) ReplaceItems(ctx context.Context, cartID uuid.UUID, items []entity.LineItem) error {
	if cart, ok := r.carts[cartID]; ok {
		cart.Items = append([]entity.LineItem(nil), items...)
	}
	return nil
}

func (r *fakeCartRepo) AddDiscount(ctx context.Context, discount *entity.CartDiscount) error {
	return nil
}

func (r *fakeCartRepo) RemoveDiscount(ctx context.Context, cartID, discountID uuid.UUID) error {
	return nil
}

type fakeItemRepo struct {
	items          map[uuid.UUID]*entity.Item
	incrementCalls int
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{items: make(map[uuid.UUID]*entity.Item)}
}

func (r *fakeItemRepo) Create(ctx context.Context, item *entity.Item) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	r.items[item.ID] = item
	return nil
}

func (r *fakeItemRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	return r.items[id], nil
}

func (r *fakeItemRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Item, error) {
	var out []entity.Item
	for _, id := range ids {
		if item, ok := r.items[id]; ok {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (r *fakeItemRepo) GetByBarcode(ctx context.Context, barcode string) (*entity.Item, error) {
	for _, item := range r.items {
		if item.Barcode == barcode {
			return item, nil
		}
	}
	return nil, nil
}

func (r *fakeItemRepo) Update(ctx context.Context, item *entity.Item) error {
	r.items[item.ID] = item
	return nil
}

func (r *fakeItemRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.items, id)
	return nil
}

func (r *fakeItemRepo) List(ctx context.Context, params *repository.ItemFilterParams) ([]entity.Item, int64, error) {
	return nil, 0, nil
}

func (r *fakeItemRepo) ListLowStock(ctx context.Context, threshold int, params *pagination.PaginationParams) ([]entity.Item, int64, error) {
	return nil, 0, nil
}

func (r *fakeItemRepo) AtomicDecrementBatch(ctx context.Context, decrements map[uuid.UUID]int) ([]uuid.UUID, error) {
	var failed []uuid.UUID
	for id, amount := range decrements {
		item, ok := r.items[id]
		if !ok || item.Stock < amount {
			failed = append(failed, id)
		}
	}
	if len(failed) > 0 {
		return failed, nil
	}
	for id, amount := range decrements {
		r.items[id].Stock -= amount
	}
	return nil, nil
}

func (r *fakeItemRepo) AtomicIncrementBatch(ctx context.Context, increments map[uuid.UUID]int) error {
	r.incrementCalls++
	for id, amount := range increments {
		if item, ok := r.items[id]; ok {
			item.Stock += amount
		}
	}
	return nil
}

type fakeDiscountRepo struct {
	discounts map[uuid.UUID]*entity.Discount
}

func newFakeDiscountRepo() *fakeDiscountRepo {
	return &fakeDiscountRepo{discounts: make(map[uuid.UUID]*entity.Discount)}
}

func (r *fakeDiscountRepo) Create(ctx context.Context, d *entity.Discount) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	r.discounts[d.ID] = d
	return nil
}

func (r *fakeDiscountRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Discount, error) {
	return r.discounts[id], nil
}

func (r *fakeDiscountRepo) Update(ctx context.Context, d *entity.Discount) error { return nil }
func (r *fakeDiscountRepo) Delete(ctx context.Context, id uuid.UUID) error       { return nil }

func (r *fakeDiscountRepo) List(ctx context.Context, params *repository.DiscountFilterParams) ([]entity.Discount, int64, error) {
	return nil, 0, nil
}

type fakeCustomerRepo struct {
	customers map[uuid.UUID]*entity.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[uuid.UUID]*entity.Customer)}
}

func (r *fakeCustomerRepo) Create(ctx context.Context, c *entity.Customer) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.customers[c.ID] = c
	return nil
}

func (r *fakeCustomerRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	return r.customers[id], nil
}

func (r *fakeCustomerRepo) Update(ctx context.Context, c *entity.Customer) error { return nil }
func (r *fakeCustomerRepo) Delete(ctx context.Context, id uuid.UUID) error       { return nil }

func (r *fakeCustomerRepo) List(ctx context.Context, params *repository.CustomerFilterParams) ([]entity.Customer, int64, error) {
	return nil, 0, nil
}

type fakeLoyaltyRepo struct {
	points      map[uuid.UUID]int
	adjustCalls int
}

func newFakeLoyaltyRepo() *fakeLoyaltyRepo {
	return &fakeLoyaltyRepo{points: make(map[uuid.UUID]int)}
}

func (r *fakeLoyaltyRepo) Create(ctx context.Context, a *entity.LoyaltyAccount) error {
	r.points[a.CustomerID] = a.Points
	return nil
}

func (r *fakeLoyaltyRepo) GetByCustomerID(ctx context.Context, customerID uuid.UUID) (*entity.LoyaltyAccount, error) {
	balance, ok := r.points[customerID]
	if !ok {
		return nil, nil
	}
	return &entity.LoyaltyAccount{CustomerID: customerID, Points: balance}, nil
}

func (r *fakeLoyaltyRepo) Adjust(ctx context.Context, customerID uuid.UUID, delta int) (bool, error) {
	r.adjustCalls++
	balance, ok := r.points[customerID]
	if !ok {
		return false, nil
	}
	if delta < 0 && balance < -delta {
		return false, nil
	}
	r.points[customerID] = balance + delta
	return true, nil
}

type fixedVAT struct {
	rate decimal.Decimal
}

func (v fixedVAT) VATRate(ctx context.Context) (decimal.Decimal, error) {
	return v.rate, nil
}

type cartFixture struct {
	svc       *CartService
	carts     *fakeCartRepo
	items     *fakeItemRepo
	discounts *fakeDiscountRepo
	customers *fakeCustomerRepo
	loyalty   *fakeLoyaltyRepo
}

func newCartFixture() *cartFixture {
	f := &cartFixture{
		carts:     newFakeCartRepo(),
		items:     newFakeItemRepo(),
		discounts: newFakeDiscountRepo(),
		customers: newFakeCustomerRepo(),
		loyalty:   newFakeLoyaltyRepo(),
	}
	f.svc = NewCartService(f.carts, f.items, f.discounts, f.customers, f.loyalty, fixedVAT{rate: decimal.New(1500, -4)})
	return f
}

func (f *cartFixture) addItem(t *testing.T, name string, priceCents int64, stock int) *entity.Item {
	t.Helper()
	item := &entity.Item{Name: name, Barcode: name, Price: priceCents, Stock: stock}
	require.NoError(t, f.items.Create(context.Background(), item))
	return item
}

func (f *cartFixture) addCustomer(t *testing.T, points int) *entity.Customer {
	t.Helper()
	customer := &entity.Customer{Name: "Test Customer"}
	require.NoError(t, f.customers.Create(context.Background(), customer))
	require.NoError(t, f.loyalty.Create(context.Background(), &entity.LoyaltyAccount{CustomerID: customer.ID, Points: points}))
	return customer
}

func (f *cartFixture) addDiscount(t *testing.T, kind enum.DiscountKind, value string) *entity.Discount {
	t.Helper()
	discount := &entity.Discount{
		Name:      "Test Discount",
		Kind:      kind,
		Value:     decimal.RequireFromString(value),
		ValidFrom: time.Now().Add(-time.Hour),
		ValidTo:   time.Now().Add(time.Hour),
	}
	require.NoError(t, f.discounts.Create(context.Background(), discount))
	return discount
}

func TestCreateCartStartsAsDraft(t *testing.T) {
	f := newCartFixture()

	cart, err := f.svc.CreateCart(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, enum.CartStatusDraft, cart.Status)
	assert.NotEqual(t, uuid.Nil, cart.ID)
}

func TestSetItemsSnapshotsPricesAndRecomputes(t *testing.T) {
	f := newCartFixture()
	ctx := context.Background()

	item := f.addItem(t, "coffee", 500, 10)
	cart, err := f.svc.CreateCart(ctx, uuid.New())
	require.NoError(t, err)

	cart, err = f.svc.SetItems(ctx, cart.ID, []CartItemInput{{ItemID: item.ID, Quantity: 3}})
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, int64(500), cart.Items[0].UnitPrice)
	assert.Equal(t, int64(1500), cart.ItemsTotal)
	assert.Equal(t, int64(225), cart.VATAmount)
	assert.Equal(t, int64(1725), cart.GrandTotal)

	// A later catalog price edit must not move the open draft
	item.Price = 9999
	reloaded, err := f.svc.GetCart(ctx, cart.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(500), reloaded.Items[0].UnitPrice)
	assert.Equal(t, int64(1500), reloaded.ItemsTotal)
}

func TestSetItemsRejectsNonPositiveQuantity(t *testing.T) {
	f := newCartFixture()
	ctx := context.Background()

	item := f.addItem(t, "coffee", 500, 10)
	cart, err := f.svc.CreateCart(ctx, uuid.New())
	require.NoError(t, err)

	_, err = f.svc.SetItems(ctx, cart.ID, []CartItemInput{{ItemID: item.ID, Quantity: 0}})
	assert.ErrorIs(t, err, apperror.ErrInvalidLineItem)
}

func TestMutationsRejectedOutsideDraft(t *testing.T) {
	f := newCartFixture()
	ctx := context.Background()

	item := f.addItem(t, "coffee", 500, 10)
	cart, err := f.svc.CreateCart(ctx, uuid.New())
	require.NoError(t, err)

	stored := f.carts.carts[cart.ID]
	stored.Status = enum.CartStatusPaid

	_, err = f.svc.SetItems(ctx, cart.ID, []CartItemInput{{ItemID: item.ID, Quantity: 1}})
	assert.ErrorIs(t, err, apperror.ErrInvalidState)

	_, err = f.svc.RedeemPoints(ctx, cart.ID, 100)
	assert.ErrorIs(t, err, apperror.ErrInvalidState)
}

func TestApplyDiscountOrderIsPreserved(t *testing.T) {
	f := newCartFixture()
	ctx := context.Background()

	item := f.addItem(t, "stereo", 10000, 5)
	percent := f.addDiscount(t, enum.DiscountKindPercentage, "10")
	flat := f.addDiscount(t, enum.DiscountKindFixed, "5")

	cart, err := f.svc.CreateCart(ctx, uuid.New())
	require.NoError(t, err)
	_, err = f.svc.SetItems(ctx, cart.ID, []CartItemInput{{ItemID: item.ID, Quantity: 1}})
	require.NoError(t, err)

	_, err = f.svc.ApplyDiscount(ctx, cart.ID, percent.ID)
	require.NoError(t, err)
	cart, err = f.svc.ApplyDiscount(ctx, cart.ID, flat.ID)
	require.NoError(t, err)

	// 100 -> 90 (10%) -> 85 (flat 5)
	assert.Equal(t, int64(1500), cart.DiscountTotal)
	assert.Equal(t, int64(9775), cart.GrandTotal)
	assert.Equal(t, 1, cart.Discounts[0].Position)
	assert.Equal(t, 2, cart.Discounts[1].Position)
}

func TestApplyDiscountRejectsDuplicate(t *testing.T) {
	f := newCartFixture()
	ctx := context.Background()

	item := f.addItem(t, "stereo", 10000, 5)
	discount := f.addDiscount(t, enum.DiscountKindPercentage, "10")

	cart, err := f.svc.CreateCart(ctx, uuid.New())
	require.NoError(t, err)
	_, err = f.svc.SetItems(ctx, cart.ID, []CartItemInput{{ItemID: item.ID, Quantity: 1}})
	require.NoError(t, err)

	_, err = f.svc.ApplyDiscount(ctx, cart.ID, discount.ID)
	require.NoError(t, err)
	_, err = f.svc.ApplyDiscount(ctx, cart.ID, discount.ID)
	assert.ErrorIs(t, err, apperror.ErrDuplicateDiscount)
}

func TestApplyDiscountOutsideValidityWindow(t *testing.T) {
	f := newCartFixture()
	ctx := context.Background()

	item := f.addItem(t, "stereo", 10000, 5)
	discount := f.addDiscount(t, enum.DiscountKindPercentage, "10")

	cart, err := f.svc.CreateCart(ctx, uuid.New())
	require.NoError(t, err)
	_, err = f.svc.SetItems(ctx, cart.ID, []CartItemInput{{ItemID: item.ID, Quantity: 1}})
	require.NoError(t, err)

	f.svc.now = func() time.Time { return discount.ValidTo.Add(time.Minute) }

	_, err = f.svc.ApplyDiscount(ctx, cart.ID, discount.ID)
	assert.ErrorIs(t, err, apperror.ErrDiscountNotApplicable)
}

func TestRemoveDiscountRecomputesTotals(t *testing.T) {
	f := newCartFixture()
	ctx := context.Background()

	item := f.addItem(t, "stereo", 10000, 5)
	discount := f.addDiscount(t, enum.DiscountKindPercentage, "10")

	cart, err := f.svc.CreateCart(ctx, uuid.New())
	require.NoError(t, err)
	_, err = f.svc.SetItems(ctx, cart.ID, []CartItemInput{{ItemID: item.ID, Quantity: 1}})
	require.NoError(t, err)
	_, err = f.svc.ApplyDiscount(ctx, cart.ID, discount.ID)
	require.NoError(t, err)

	cart, err = f.svc.RemoveDiscount(ctx, cart.ID, discount.ID)
	require.NoError(t, err)
	assert.Empty(t, cart.Discounts)
	assert.Equal(t, int64(0), cart.DiscountTotal)
	assert.Equal(t, int64(11500), cart.GrandTotal)
}

func TestApplyDiscountAfterRemovalKeepsPositionsUnique(t *testing.T) {
	f := newCartFixture()
	ctx := context.Background()

	item := f.addItem(t, "stereo", 10000, 5)
	first := f.addDiscount(t, enum.DiscountKindPercentage, "10")
	second := f.addDiscount(t, enum.DiscountKindFixed, "5")
	third := f.addDiscount(t, enum.DiscountKindPercentage, "20")

	cart, err := f.svc.CreateCart(ctx, uuid.New())
	require.NoError(t, err)
	_, err = f.svc.SetItems(ctx, cart.ID, []CartItemInput{{ItemID: item.ID, Quantity: 1}})
	require.NoError(t, err)

	_, err = f.svc.ApplyDiscount(ctx, cart.ID, first.ID)
	require.NoError(t, err)
	_, err = f.svc.ApplyDiscount(ctx, cart.ID, second.ID)
	require.NoError(t, err)
	_, err = f.svc.RemoveDiscount(ctx, cart.ID, first.ID)
	require.NoError(t, err)

	// Positions are not re-packed on removal, so the new discount must land
	// after the surviving one, never on a shared position.
	cart, err = f.svc.ApplyDiscount(ctx, cart.ID, third.ID)
	require.NoError(t, err)

	require.Len(t, cart.Discounts, 2)
	seen := map[int]uuid.UUID{}
	for _, d := range cart.Discounts {
		_, taken := seen[d.Position]
		assert.False(t, taken, "position %d assigned twice", d.Position)
		seen[d.Position] = d.DiscountID
	}
	assert.Equal(t, second.ID, cart.Discounts[0].DiscountID)
	assert.Equal(t, 2, cart.Discounts[0].Position)
	assert.Equal(t, third.ID, cart.Discounts[1].DiscountID)
	assert.Equal(t, 3, cart.Discounts[1].Position)

	// 100 -> 95 (flat 5) -> 76 (20%)
	assert.Equal(t, int64(2400), cart.DiscountTotal)
	assert.Equal(t, int64(8740), cart.GrandTotal)
}

func TestSetItemsRoundTripRestoresTotals(t *testing.T) {
	f := newCartFixture()
	ctx := context.Background()

	coffee := f.addItem(t, "coffee", 500, 10)
	beans := f.addItem(t, "beans", 1250, 10)

	cart, err := f.svc.CreateCart(ctx, uuid.New())
	require.NoError(t, err)

	original := []CartItemInput{
		{ItemID: coffee.ID, Quantity: 3},
		{ItemID: beans.ID, Quantity: 2},
	}
	cart, err = f.svc.SetItems(ctx, cart.ID, original)
	require.NoError(t, err)
	wantItems, wantVAT, wantGrand := cart.ItemsTotal, cart.VATAmount, cart.GrandTotal

	_, err = f.svc.SetItems(ctx, cart.ID, []CartItemInput{{ItemID: beans.ID, Quantity: 1}})
	require.NoError(t, err)

	cart, err = f.svc.SetItems(ctx, cart.ID, original)
	require.NoError(t, err)
	assert.Equal(t, wantItems, cart.ItemsTotal)
	assert.Equal(t, wantVAT, cart.VATAmount)
	assert.Equal(t, wantGrand, cart.GrandTotal)
}

func TestRedeemPointsRequiresCustomer(t *testing.T) {
	f := newCartFixture()
	ctx := context.Background()

	item := f.addItem(t, "coffee", 500, 10)
	cart, err := f.svc.CreateCart(ctx, uuid.New())
	require.NoError(t, err)
	_, err = f.svc.SetItems(ctx, cart.ID, []CartItemInput{{ItemID: item.ID, Quantity: 1}})
	require.NoError(t, err)

	_, err = f.svc.RedeemPoints(ctx, cart.ID, 100)
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestRedeemPointsChecksBalance(t *testing.T) {
	f := newCartFixture()
	ctx := context.Background()

	item := f.addItem(t, "coffee", 500, 10)
	customer := f.addCustomer(t, 1000)

	cart, err := f.svc.CreateCart(ctx, uuid.New())
	require.NoError(t, err)
	_, err = f.svc.SetItems(ctx, cart.ID, []CartItemInput{{ItemID: item.ID, Quantity: 1}})
	require.NoError(t, err)
	_, err = f.svc.SetCustomer(ctx, cart.ID, customer.ID)
	require.NoError(t, err)

	_, err = f.svc.RedeemPoints(ctx, cart.ID, 1001)
	assert.ErrorIs(t, err, apperror.ErrInsufficientPoints)

	// Exact balance is allowed; the ledger itself is untouched until checkout
	cart, err = f.svc.RedeemPoints(ctx, cart.ID, 1000)
	require.NoError(t, err)
	assert.Equal(t, 1000, cart.PointsRedeemed)
	assert.Equal(t, 1000, f.loyalty.points[customer.ID])
}

func checkoutReadyCart(t *testing.T, f *cartFixture, cashierID uuid.UUID, item *entity.Item, qty int, customer *entity.Customer, points int) *entity.Cart {
	t.Helper()
	ctx := context.Background()

	cart, err := f.svc.CreateCart(ctx, cashierID)
	require.NoError(t, err)
	_, err = f.svc.SetItems(ctx, cart.ID, []CartItemInput{{ItemID: item.ID, Quantity: qty}})
	require.NoError(t, err)
	_, err = f.svc.SetCustomer(ctx, cart.ID, customer.ID)
	require.NoError(t, err)
	if points > 0 {
		_, err = f.svc.RedeemPoints(ctx, cart.ID, points)
		require.NoError(t, err)
	}
	return cart
}

func TestCheckoutHappyPath(t *testing.T) {
	f := newCartFixture()
	ctx := context.Background()
	cashierID := uuid.New()

	item := f.addItem(t, "coffee", 500, 10)
	customer := f.addCustomer(t, 5000)
	cart := checkoutReadyCart(t, f, cashierID, item, 3, customer, 2000)

	paid, err := f.svc.Checkout(ctx, cart.ID, cashierID)
	require.NoError(t, err)

	assert.Equal(t, enum.CartStatusPaid, paid.Status)
	require.NotNil(t, paid.ReceiptNo)
	assert.Regexp(t, `^RCT-[0-9a-f]{8}$`, *paid.ReceiptNo)

	// 15.00 items, 2.00 points discount, 13.00 taxable, 1.95 VAT
	assert.Equal(t, int64(1500), paid.ItemsTotal)
	assert.Equal(t, int64(200), paid.DiscountTotal)
	assert.Equal(t, int64(195), paid.VATAmount)
	assert.Equal(t, int64(1495), paid.GrandTotal)

	// Stock decremented and points debited exactly once
	assert.Equal(t, 7, f.items.items[item.ID].Stock)
	assert.Equal(t, 3000, f.loyalty.points[customer.ID])
	assert.Equal(t, 1, f.loyalty.adjustCalls)
}

func TestCheckoutRejectsNonDraftCart(t *testing.T) {
	f := newCartFixture()
	ctx := context.Background()
	cashierID := uuid.New()

	item := f.addItem(t, "coffee", 500, 10)
	customer := f.addCustomer(t, 0)
	cart := checkoutReadyCart(t, f, cashierID, item, 1, customer, 0)

	_, err := f.svc.Checkout(ctx, cart.ID, cashierID)
	require.NoError(t, err)

	// A second checkout of the same cart must be rejected, not re-applied
	_, err = f.svc.Checkout(ctx, cart.ID, cashierID)
	assert.ErrorIs(t, err, apperror.ErrInvalidState)
	assert.Equal(t, 9, f.items.items[item.ID].Stock)
}

func TestCheckoutRejectsEmptyCart(t *testing.T) {
	f := newCartFixture()
	ctx := context.Background()
	cashierID := uuid.New()

	cart, err := f.svc.CreateCart(ctx, cashierID)
	require.NoError(t, err)

	_, err = f.svc.Checkout(ctx, cart.ID, cashierID)
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestCheckoutRejectsWrongCashier(t *testing.T) {
	f := newCartFixture()
	ctx := context.Background()
	cashierID := uuid.New()

	item := f.addItem(t, "coffee", 500, 10)
	customer := f.addCustomer(t, 0)
	cart := checkoutReadyCart(t, f, cashierID, item, 1, customer, 0)

	_, err := f.svc.Checkout(ctx, cart.ID, uuid.New())
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)
	assert.Equal(t, 10, f.items.items[item.ID].Stock)
}

func TestCheckoutInsufficientStock(t *testing.T) {
	f := newCartFixture()
	ctx := context.Background()
	cashierID := uuid.New()

	item := f.addItem(t, "coffee", 500, 2)
	customer := f.addCustomer(t, 5000)
	cart := checkoutReadyCart(t, f, cashierID, item, 2, customer, 1000)

	// Another terminal sells the stock out from under the draft
	f.items.items[item.ID].Stock = 1

	_, err := f.svc.Checkout(ctx, cart.ID, cashierID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "coffee")

	// Nothing was charged: stock unchanged, loyalty never touched
	assert.Equal(t, 1, f.items.items[item.ID].Stock)
	assert.Equal(t, 5000, f.loyalty.points[customer.ID])
	assert.Equal(t, 0, f.loyalty.adjustCalls)
}

func TestCheckoutCompensatesStockWhenPointsDebitFails(t *testing.T) {
	f := newCartFixture()
	ctx := context.Background()
	cashierID := uuid.New()

	item := f.addItem(t, "coffee", 500, 10)
	customer := f.addCustomer(t, 2000)
	cart := checkoutReadyCart(t, f, cashierID, item, 1, customer, 2000)

	// The balance is spent elsewhere between redemption intent and checkout
	f.loyalty.points[customer.ID] = 500

	_, err := f.svc.Checkout(ctx, cart.ID, cashierID)
	assert.ErrorIs(t, err, apperror.ErrInsufficientPoints)

	// Stock decrement was rolled back
	assert.Equal(t, 10, f.items.items[item.ID].Stock)
	assert.Equal(t, 1, f.items.incrementCalls)
	assert.Equal(t, 500, f.loyalty.points[customer.ID])
}

func TestConfirmCart(t *testing.T) {
	f := newCartFixture()
	ctx := context.Background()
	cashierID := uuid.New()

	item := f.addItem(t, "coffee", 500, 10)
	customer := f.addCustomer(t, 0)
	cart := checkoutReadyCart(t, f, cashierID, item, 1, customer, 0)

	// Draft carts cannot be confirmed directly
	_, err := f.svc.ConfirmCart(ctx, cart.ID)
	assert.ErrorIs(t, err, apperror.ErrInvalidState)

	_, err = f.svc.Checkout(ctx, cart.ID, cashierID)
	require.NoError(t, err)

	confirmed, err := f.svc.ConfirmCart(ctx, cart.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.CartStatusConfirmed, confirmed.Status)

	// Confirmed is terminal
	_, err = f.svc.ConfirmCart(ctx, cart.ID)
	assert.ErrorIs(t, err, apperror.ErrInvalidState)
}
