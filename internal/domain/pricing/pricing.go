// Package pricing implements the cart totals computation: item totals,
// ordered discount stacking, loyalty point redemption and VAT. It performs no
// I/O and holds no state, so every caller gets deterministic results for the
// same inputs.
package pricing

import (
	"github.com/google/uuid"
	"github.com/mo-alkubaish/POSitiveflow-sub000/internal/domain/enum"
	"github.com/mo-alkubaish/POSitiveflow-sub000/pkg/apperror"
	"github.com/shopspring/decimal"
)

// PointsPerCurrencyUnit is the fixed loyalty exchange rate: 1000 points are
// worth one currency unit of discount.
const PointsPerCurrencyUnit = 1000

// Line is one item-quantity pairing fed into the engine
type Line struct {
	ItemID    uuid.UUID
	UnitPrice int64 // cents
	Quantity  int
}

// Discount is one stacked discount. The slice order given to ComputeTotals is
// the application order; percentage discounts compound, so the order matters.
type Discount struct {
	ID    uuid.UUID
	Kind  enum.DiscountKind
	Value decimal.Decimal // percent for Percentage, currency units for Fixed
}

// Totals is the computed monetary breakdown, in cents. Internal math runs at
// full precision; each field is rounded half-up to the minor unit only here,
// at the output boundary.
type Totals struct {
	ItemsTotal    int64
	DiscountTotal int64
	VATAmount     int64
	GrandTotal    int64
}

var (
	hundred    = decimal.NewFromInt(100)
	pointsRate = decimal.NewFromInt(PointsPerCurrencyUnit)
)

// ComputeTotals derives the full totals breakdown for a cart.
//
// Discounts are applied sequentially over a running remainder: percentage
// discounts remove value percent of the remainder, fixed discounts remove a
// flat amount. A fixed discount may drive the remainder negative mid-stack;
// the remainder is clamped at zero only after the whole stack has been
// applied, so the discount total never exceeds the items total while the
// per-step order sensitivity is preserved.
func ComputeTotals(lines []Line, discounts []Discount, pointsRedeemed int, vatRate decimal.Decimal) (Totals, error) {
	if pointsRedeemed < 0 {
		return Totals{}, apperror.NewBadRequestError("Points redeemed cannot be negative")
	}

	itemsTotal := decimal.Zero
	for _, line := range lines {
		if line.Quantity <= 0 || line.UnitPrice < 0 {
			return Totals{}, apperror.ErrInvalidLineItem
		}
		unitPrice := decimal.New(line.UnitPrice, -2)
		itemsTotal = itemsTotal.Add(unitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	remaining := itemsTotal
	for _, d := range discounts {
		switch d.Kind {
		case enum.DiscountKindPercentage:
			remaining = remaining.Sub(remaining.Mul(d.Value).Div(hundred))
		case enum.DiscountKindFixed:
			remaining = remaining.Sub(d.Value)
		default:
			return Totals{}, apperror.ErrDiscountNotApplicable
		}
	}
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	pointsDiscount := decimal.NewFromInt(int64(pointsRedeemed)).Div(pointsRate)

	discountTotal := itemsTotal.Sub(remaining).Add(pointsDiscount)
	if discountTotal.GreaterThan(itemsTotal) {
		discountTotal = itemsTotal
	}

	taxable := itemsTotal.Sub(discountTotal)
	vatAmount := taxable.Mul(vatRate)
	grandTotal := taxable.Add(vatAmount)

	return Totals{
		ItemsTotal:    toCents(itemsTotal),
		DiscountTotal: toCents(discountTotal),
		VATAmount:     toCents(vatAmount),
		GrandTotal:    toCents(grandTotal),
	}, nil
}

// toCents rounds a currency amount half-up to the minor unit
func toCents(d decimal.Decimal) int64 {
	return d.Mul(hundred).Round(0).IntPart()
}
