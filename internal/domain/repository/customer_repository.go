package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/mo-alkubaish/POSitiveflow-sub000/internal/domain/entity"
	"github.com/mo-alkubaish/POSitiveflow-sub000/pkg/pagination"
)

// CustomerRepository defines the interface for customer data operations
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *CustomerFilterParams) ([]entity.Customer, int64, error)
}

// CustomerFilterParams contains filtering parameters for customer queries
type CustomerFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
}

// LoyaltyRepository defines the interface for loyalty ledger operations
type LoyaltyRepository interface {
	Create(ctx context.Context, account *entity.LoyaltyAccount) error
	GetByCustomerID(ctx context.Context, customerID uuid.UUID) (*entity.LoyaltyAccount, error)

	// Adjust atomically applies delta to the customer's balance. For negative
	// deltas the update is conditional on the balance staying non-negative.
	// Returns false when no account exists or the balance is insufficient.
	Adjust(ctx context.Context, customerID uuid.UUID, delta int) (bool, error)
}
