package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mo-alkubaish/POSitiveflow-sub000/internal/domain/entity"
	"github.com/mo-alkubaish/POSitiveflow-sub000/internal/domain/enum"
	"github.com/mo-alkubaish/POSitiveflow-sub000/internal/domain/repository"
	"github.com/mo-alkubaish/POSitiveflow-sub000/pkg/apperror"
	"github.com/mo-alkubaish/POSitiveflow-sub000/pkg/pagination"
	"github.com/shopspring/decimal"
)

// DiscountService handles discount catalog administration. Edits here do not
// touch carts: applied discounts are snapshots.
type DiscountService struct {
	discountRepo repository.DiscountRepository
}

// NewDiscountService creates a new discount service
func NewDiscountService(discountRepo repository.DiscountRepository) *DiscountService {
	return &DiscountService{discountRepo: discountRepo}
}

// CreateDiscountInput represents the create discount input
type CreateDiscountInput struct {
	Name      string
	Kind      enum.DiscountKind
	Value     decimal.Decimal
	ValidFrom time.Time
	ValidTo   time.Time
}

func validateDiscountValue(kind enum.DiscountKind, value decimal.Decimal) error {
	if value.IsNegative() {
		return apperror.NewBadRequestError("Discount value cannot be negative")
	}
	if kind == enum.DiscountKindPercentage && value.GreaterThan(decimal.NewFromInt(100)) {
		return apperror.NewBadRequestError("Percentage discount cannot exceed 100")
	}
	return nil
}

// CreateDiscount creates a new discount definition
func (s *DiscountService) CreateDiscount(ctx context.Context, input *CreateDiscountInput) (*entity.Discount, error) {
	if err := validateDiscountValue(input.Kind, input.Value); err != nil {
		return nil, err
	}
	if input.ValidTo.Before(input.ValidFrom) {
		return nil, apperror.NewBadRequestError("Discount validity window is inverted")
	}

	discount := &entity.Discount{
		Name:      input.Name,
		Kind:      input.Kind,
		Value:     input.Value,
		ValidFrom: input.ValidFrom,
		ValidTo:   input.ValidTo,
	}
	if err := s.discountRepo.Create(ctx, discount); err != nil {
		return nil, err
	}
	return discount, nil
}

// GetDiscount retrieves a discount by ID
func (s *DiscountService) GetDiscount(ctx context.Context, id uuid.UUID) (*entity.Discount, error) {
	discount, err := s.discountRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if discount == nil {
		return nil, apperror.NewNotFoundError("Discount")
	}
	return discount, nil
}

// UpdateDiscountInput represents the update discount input
type UpdateDiscountInput struct {
	Name      *string
	Kind      *enum.DiscountKind
	Value     *decimal.Decimal
	ValidFrom *time.Time
	ValidTo   *time.Time
}

// UpdateDiscount performs an administrative edit of a discount definition
func (s *DiscountService) UpdateDiscount(ctx context.Context, id uuid.UUID, input *UpdateDiscountInput) (*entity.Discount, error) {
	discount, err := s.GetDiscount(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		discount.Name = *input.Name
	}
	if input.Kind != nil {
		discount.Kind = *input.Kind
	}
	if input.Value != nil {
		discount.Value = *input.Value
	}
	if input.ValidFrom != nil {
		discount.ValidFrom = *input.ValidFrom
	}
	if input.ValidTo != nil {
		discount.ValidTo = *input.ValidTo
	}

	if err := validateDiscountValue(discount.Kind, discount.Value); err != nil {
		return nil, err
	}
	if discount.ValidTo.Before(discount.ValidFrom) {
		return nil, apperror.NewBadRequestError("Discount validity window is inverted")
	}

	if err := s.discountRepo.Update(ctx, discount); err != nil {
		return nil, err
	}
	return discount, nil
}

// DeleteDiscount deletes a discount definition
func (s *DiscountService) DeleteDiscount(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetDiscount(ctx, id); err != nil {
		return err
	}
	return s.discountRepo.Delete(ctx, id)
}

// ListDiscounts lists discounts with filtering
func (s *DiscountService) ListDiscounts(ctx context.Context, params *repository.DiscountFilterParams) (*pagination.PaginatedResult[entity.Discount], error) {
	discounts, total, err := s.discountRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(discounts, pag), nil
}
