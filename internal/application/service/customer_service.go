package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/mo-alkubaish/POSitiveflow-sub000/internal/domain/entity"
	"github.com/mo-alkubaish/POSitiveflow-sub000/internal/domain/repository"
	"github.com/mo-alkubaish/POSitiveflow-sub000/pkg/apperror"
	"github.com/mo-alkubaish/POSitiveflow-sub000/pkg/pagination"
)

// CustomerService handles customer and loyalty ledger operations
type CustomerService struct {
	customerRepo repository.CustomerRepository
	loyaltyRepo  repository.LoyaltyRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repository.CustomerRepository, loyaltyRepo repository.LoyaltyRepository) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
		loyaltyRepo:  loyaltyRepo,
	}
}

// CreateCustomerInput represents the create customer input
type CreateCustomerInput struct {
	Name    string
	Email   *string
	Phone   *string
	Address *string
}

// CreateCustomer creates a new customer with an empty loyalty account
func (s *CustomerService) CreateCustomer(ctx context.Context, input *CreateCustomerInput) (*entity.Customer, error) {
	customer := &entity.Customer{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Address: input.Address,
	}
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	account := &entity.LoyaltyAccount{CustomerID: customer.ID}
	if err := s.loyaltyRepo.Create(ctx, account); err != nil {
		return nil, err
	}
	customer.Loyalty = account

	return customer, nil
}

// GetCustomer retrieves a customer by ID
func (s *CustomerService) GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return customer, nil
}

// UpdateCustomerInput represents the update customer input
type UpdateCustomerInput struct {
	Name    *string
	Email   *string
	Phone   *string
	Address *string
}

// UpdateCustomer updates an existing customer
func (s *CustomerService) UpdateCustomer(ctx context.Context, id uuid.UUID, input *UpdateCustomerInput) (*entity.Customer, error) {
	customer, err := s.GetCustomer(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		customer.Name = *input.Name
	}
	if input.Email != nil {
		customer.Email = input.Email
	}
	if input.Phone != nil {
		customer.Phone = input.Phone
	}
	if input.Address != nil {
		customer.Address = input.Address
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// DeleteCustomer deletes a customer
func (s *CustomerService) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetCustomer(ctx, id); err != nil {
		return err
	}
	return s.customerRepo.Delete(ctx, id)
}

// ListCustomers lists customers with filtering
func (s *CustomerService) ListCustomers(ctx context.Context, params *repository.CustomerFilterParams) (*pagination.PaginatedResult[entity.Customer], error) {
	customers, total, err := s.customerRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(customers, pag), nil
}

// GetLoyaltyBalance returns the customer's redeemable point balance
func (s *CustomerService) GetLoyaltyBalance(ctx context.Context, customerID uuid.UUID) (*entity.LoyaltyAccount, error) {
	if _, err := s.GetCustomer(ctx, customerID); err != nil {
		return nil, err
	}

	account, err := s.loyaltyRepo.GetByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, apperror.NewNotFoundError("Loyalty account")
	}
	return account, nil
}

// GrantPoints credits points onto the customer's loyalty account
func (s *CustomerService) GrantPoints(ctx context.Context, customerID uuid.UUID, points int) (*entity.LoyaltyAccount, error) {
	if points <= 0 {
		return nil, apperror.NewBadRequestError("Points to grant must be positive")
	}
	if _, err := s.GetLoyaltyBalance(ctx, customerID); err != nil {
		return nil, err
	}

	credited, err := s.loyaltyRepo.Adjust(ctx, customerID, points)
	if err != nil {
		return nil, err
	}
	if !credited {
		return nil, apperror.NewNotFoundError("Loyalty account")
	}

	return s.loyaltyRepo.GetByCustomerID(ctx, customerID)
}
