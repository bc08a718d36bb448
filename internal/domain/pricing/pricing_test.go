package pricing

import (
	"testing"

	"github.com/google/uuid"
	"github.com/mo-alkubaish/POSitiveflow-sub000/internal/domain/enum"
	"github.com/mo-alkubaish/POSitiveflow-sub000/pkg/apperror"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var vat15 = decimal.New(1500, -4) // 15%

func line(cents int64, qty int) Line {
	return Line{ItemID: uuid.New(), UnitPrice: cents, Quantity: qty}
}

func percent(v int64) Discount {
	return Discount{ID: uuid.New(), Kind: enum.DiscountKindPercentage, Value: decimal.NewFromInt(v)}
}

func fixed(v string) Discount {
	return Discount{ID: uuid.New(), Kind: enum.DiscountKindFixed, Value: decimal.RequireFromString(v)}
}

func TestComputeTotals(t *testing.T) {
	tests := []struct {
		name      string
		lines     []Line
		discounts []Discount
		points    int
		vatRate   decimal.Decimal
		want      Totals
	}{
		{
			name:    "empty cart",
			vatRate: vat15,
			want:    Totals{},
		},
		{
			name:    "items only with VAT rounding half up",
			lines:   []Line{line(500, 2), line(250, 1)},
			vatRate: vat15,
			// 12.50 taxable, VAT 1.875 rounds to 1.88, grand 14.375 rounds to 14.38
			want: Totals{ItemsTotal: 1250, DiscountTotal: 0, VATAmount: 188, GrandTotal: 1438},
		},
		{
			name:      "percentage then fixed",
			lines:     []Line{line(10000, 1)},
			discounts: []Discount{percent(10), fixed("5")},
			vatRate:   vat15,
			// 100 -> 90 -> 85, VAT 12.75, grand 97.75
			want: Totals{ItemsTotal: 10000, DiscountTotal: 1500, VATAmount: 1275, GrandTotal: 9775},
		},
		{
			name:      "fixed then percentage",
			lines:     []Line{line(10000, 1)},
			discounts: []Discount{fixed("5"), percent(10)},
			vatRate:   vat15,
			// 100 -> 95 -> 85.50
			want: Totals{ItemsTotal: 10000, DiscountTotal: 1450, VATAmount: 1283, GrandTotal: 9833},
		},
		{
			name:      "fixed discount larger than items total clamps at zero",
			lines:     []Line{line(1000, 1)},
			discounts: []Discount{fixed("25")},
			vatRate:   vat15,
			want:      Totals{ItemsTotal: 1000, DiscountTotal: 1000, VATAmount: 0, GrandTotal: 0},
		},
		{
			name:      "negative intermediate survives mid stack",
			lines:     []Line{line(1000, 1)},
			discounts: []Discount{fixed("15"), percent(50)},
			vatRate:   vat15,
			// 10 -> -5 -> -2.50, clamped to 0 only after the stack
			want: Totals{ItemsTotal: 1000, DiscountTotal: 1000, VATAmount: 0, GrandTotal: 0},
		},
		{
			name:      "full percentage discount",
			lines:     []Line{line(9999, 3)},
			discounts: []Discount{percent(100)},
			vatRate:   vat15,
			want:      Totals{ItemsTotal: 29997, DiscountTotal: 29997, VATAmount: 0, GrandTotal: 0},
		},
		{
			name:    "points redemption at 1000 points per unit",
			lines:   []Line{line(1000, 1)},
			points:  2500,
			vatRate: decimal.Zero,
			want:    Totals{ItemsTotal: 1000, DiscountTotal: 250, VATAmount: 0, GrandTotal: 750},
		},
		{
			name:    "points discount capped at items total",
			lines:   []Line{line(100, 1)},
			points:  5000,
			vatRate: vat15,
			want:    Totals{ItemsTotal: 100, DiscountTotal: 100, VATAmount: 0, GrandTotal: 0},
		},
		{
			name:      "points stack on top of discounts",
			lines:     []Line{line(10000, 1)},
			discounts: []Discount{percent(10)},
			points:    1000,
			vatRate:   vat15,
			// discount 10 + 1.00 from points, taxable 89, VAT 13.35
			want: Totals{ItemsTotal: 10000, DiscountTotal: 1100, VATAmount: 1335, GrandTotal: 10235},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeTotals(tt.lines, tt.discounts, tt.points, tt.vatRate)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputeTotalsRejectsInvalidLines(t *testing.T) {
	_, err := ComputeTotals([]Line{line(100, 0)}, nil, 0, vat15)
	assert.ErrorIs(t, err, apperror.ErrInvalidLineItem)

	_, err = ComputeTotals([]Line{line(-100, 1)}, nil, 0, vat15)
	assert.ErrorIs(t, err, apperror.ErrInvalidLineItem)
}

func TestComputeTotalsRejectsNegativePoints(t *testing.T) {
	_, err := ComputeTotals([]Line{line(100, 1)}, nil, -1, vat15)
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestComputeTotalsIsDeterministic(t *testing.T) {
	lines := []Line{line(3333, 3), line(74950, 2)}
	discounts := []Discount{percent(7), fixed("12.34"), percent(3)}

	first, err := ComputeTotals(lines, discounts, 1500, vat15)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := ComputeTotals(lines, discounts, 1500, vat15)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestComputeTotalsGrandEqualsTaxablePlusVAT(t *testing.T) {
	got, err := ComputeTotals([]Line{line(10000, 1)}, []Discount{percent(10), fixed("5")}, 0, vat15)
	require.NoError(t, err)
	assert.Equal(t, got.ItemsTotal-got.DiscountTotal+got.VATAmount, got.GrandTotal)
}
