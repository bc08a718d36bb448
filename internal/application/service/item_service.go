package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/mo-alkubaish/POSitiveflow-sub000/internal/domain/entity"
	"github.com/mo-alkubaish/POSitiveflow-sub000/internal/domain/repository"
	"github.com/mo-alkubaish/POSitiveflow-sub000/pkg/apperror"
	"github.com/mo-alkubaish/POSitiveflow-sub000/pkg/pagination"
)

// ItemService handles inventory item operations
type ItemService struct {
	itemRepo repository.ItemRepository
	settings *SettingsService
}

// NewItemService creates a new item service
func NewItemService(itemRepo repository.ItemRepository, settings *SettingsService) *ItemService {
	return &ItemService{
		itemRepo: itemRepo,
		settings: settings,
	}
}

// CreateItemInput represents the create item input
type CreateItemInput struct {
	Name     string
	Barcode  string
	Category *string
	Price    float64
	Stock    int
}

// CreateItem creates a new inventory item
func (s *ItemService) CreateItem(ctx context.Context, input *CreateItemInput) (*entity.Item, error) {
	if input.Price < 0 {
		return nil, apperror.NewBadRequestError("Price cannot be negative")
	}
	if input.Stock < 0 {
		return nil, apperror.NewBadRequestError("Stock cannot be negative")
	}

	existing, err := s.itemRepo.GetByBarcode(ctx, input.Barcode)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewAppError(409, "An item with this barcode already exists")
	}

	item := &entity.Item{
		Name:     input.Name,
		Barcode:  input.Barcode,
		Category: input.Category,
		Stock:    input.Stock,
	}
	item.SetPriceFromDecimal(input.Price)

	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// GetItem retrieves an item by ID
func (s *ItemService) GetItem(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Item")
	}
	return item, nil
}

// GetItemByBarcode retrieves an item by its scanned barcode
func (s *ItemService) GetItemByBarcode(ctx context.Context, barcode string) (*entity.Item, error) {
	item, err := s.itemRepo.GetByBarcode(ctx, barcode)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Item")
	}
	return item, nil
}

// UpdateItemInput represents the update item input
type UpdateItemInput struct {
	Name     *string
	Category *string
	Price    *float64
	Stock    *int
}

// UpdateItem updates an existing item
func (s *ItemService) UpdateItem(ctx context.Context, id uuid.UUID, input *UpdateItemInput) (*entity.Item, error) {
	item, err := s.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		item.Name = *input.Name
	}
	if input.Category != nil {
		item.Category = input.Category
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return nil, apperror.NewBadRequestError("Price cannot be negative")
		}
		item.SetPriceFromDecimal(*input.Price)
	}
	if input.Stock != nil {
		if *input.Stock < 0 {
			return nil, apperror.NewBadRequestError("Stock cannot be negative")
		}
		item.Stock = *input.Stock
	}

	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteItem deletes an item
func (s *ItemService) DeleteItem(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetItem(ctx, id); err != nil {
		return err
	}
	return s.itemRepo.Delete(ctx, id)
}

// ListItems lists items with filtering
func (s *ItemService) ListItems(ctx context.Context, params *repository.ItemFilterParams) (*pagination.PaginatedResult[entity.Item], error) {
	items, total, err := s.itemRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(items, pag), nil
}

// ListLowStock lists items at or below the configured low-stock threshold
func (s *ItemService) ListLowStock(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Item], error) {
	threshold, err := s.settings.LowStockThreshold(ctx)
	if err != nil {
		return nil, err
	}

	items, total, err := s.itemRepo.ListLowStock(ctx, threshold, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(items, pag), nil
}
