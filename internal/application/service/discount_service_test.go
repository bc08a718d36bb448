package service

import (
	"context"
	"testing"
	"time"

	"github.com/mo-alkubaish/POSitiveflow-sub000/internal/domain/enum"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateDiscountValidation(t *testing.T) {
	svc := NewDiscountService(newFakeDiscountRepo())
	ctx := context.Background()
	now := time.Now()

	valid := &CreateDiscountInput{
		Name:      "Weekend Sale",
		Kind:      enum.DiscountKindPercentage,
		Value:     decimal.NewFromInt(10),
		ValidFrom: now,
		ValidTo:   now.Add(48 * time.Hour),
	}
	discount, err := svc.CreateDiscount(ctx, valid)
	require.NoError(t, err)
	assert.Equal(t, "Weekend Sale", discount.Name)

	tests := []struct {
		name  string
		input CreateDiscountInput
	}{
		{
			name: "negative value",
			input: CreateDiscountInput{
				Name: "Bad", Kind: enum.DiscountKindFixed,
				Value: decimal.NewFromInt(-5), ValidFrom: now, ValidTo: now.Add(time.Hour),
			},
		},
		{
			name: "percentage over 100",
			input: CreateDiscountInput{
				Name: "Bad", Kind: enum.DiscountKindPercentage,
				Value: decimal.NewFromInt(101), ValidFrom: now, ValidTo: now.Add(time.Hour),
			},
		},
		{
			name: "inverted validity window",
			input: CreateDiscountInput{
				Name: "Bad", Kind: enum.DiscountKindFixed,
				Value: decimal.NewFromInt(5), ValidFrom: now, ValidTo: now.Add(-time.Hour),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateDiscount(ctx, &tt.input)
			assert.Error(t, err)
		})
	}
}

func TestFixedDiscountOver100IsAllowed(t *testing.T) {
	svc := NewDiscountService(newFakeDiscountRepo())
	now := time.Now()

	// The 100 ceiling only applies to percentages
	_, err := svc.CreateDiscount(context.Background(), &CreateDiscountInput{
		Name: "Big voucher", Kind: enum.DiscountKindFixed,
		Value: decimal.NewFromInt(500), ValidFrom: now, ValidTo: now.Add(time.Hour),
	})
	assert.NoError(t, err)
}
