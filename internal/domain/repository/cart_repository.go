package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/mo-alkubaish/POSitiveflow-sub000/internal/domain/entity"
	"github.com/mo-alkubaish/POSitiveflow-sub000/internal/domain/enum"
	"github.com/mo-alkubaish/POSitiveflow-sub000/pkg/pagination"
)

// CartRepository defines the interface for cart data operations.
// GetByID loads the full aggregate: line items with their catalog items, and
// applied discounts ordered by position.
type CartRepository interface {
	Create(ctx context.Context, cart *entity.Cart) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Cart, error)
	Update(ctx context.Context, cart *entity.Cart) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *CartFilterParams) ([]entity.Cart, int64, error)
	ReplaceItems(ctx context.Context, cartID uuid.UUID, items []entity.LineItem) error
	AddDiscount(ctx context.Context, discount *entity.CartDiscount) error
	RemoveDiscount(ctx context.Context, cartID, discountID uuid.UUID) error
}

// CartFilterParams contains filtering parameters for cart queries
type CartFilterParams struct {
	Pagination *pagination.PaginationParams
	Status     *enum.CartStatus
	CashierID  *uuid.UUID
	CustomerID *uuid.UUID
}
