package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/mo-alkubaish/POSitiveflow-sub000/internal/domain/entity"
	domainRepo "github.com/mo-alkubaish/POSitiveflow-sub000/internal/domain/repository"
	"gorm.io/gorm"
)

type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository creates a new cart repository
func NewCartRepository(db *gorm.DB) domainRepo.CartRepository {
	return &cartRepository{db: db}
}

func (r *cartRepository) Create(ctx context.Context, cart *entity.Cart) error {
	return r.db.WithContext(ctx).Create(cart).Error
}

func (r *cartRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Cart, error) {
	var cart entity.Cart
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Items.Item").
		Preload("Discounts", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&cart, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *cartRepository) Update(ctx context.Context, cart *entity.Cart) error {
	// Associations are managed through ReplaceItems/AddDiscount/RemoveDiscount
	return r.db.WithContext(ctx).Omit("Items", "Discounts", "Customer", "Cashier").Save(cart).Error
}

func (r *cartRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Cart{}, "id = ?", id).Error
}

func (r *cartRepository) List(ctx context.Context, params *domainRepo.CartFilterParams) ([]entity.Cart, int64, error) {
	var carts []entity.Cart
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Cart{})

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}
	if params.CashierID != nil {
		query = query.Where("cashier_id = ?", *params.CashierID)
	}
	if params.CustomerID != nil {
		query = query.Where("customer_id = ?", *params.CustomerID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Customer").
		Order("created_at DESC").
		Find(&carts).Error

	return carts, total, err
}

func (r *cartRepository) ReplaceItems(ctx context.Context, cartID uuid.UUID, items []entity.LineItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Delete(&entity.LineItem{}, "cart_id = ?", cartID).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		for i := range items {
			items[i].CartID = cartID
		}
		return tx.Omit("Item", "Cart").Create(&items).Error
	})
}

func (r *cartRepository) AddDiscount(ctx context.Context, discount *entity.CartDiscount) error {
	return r.db.WithContext(ctx).Omit("Cart", "Discount").Create(discount).Error
}

func (r *cartRepository) RemoveDiscount(ctx context.Context, cartID, discountID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&entity.CartDiscount{}, "cart_id = ? AND discount_id = ?", cartID, discountID).Error
}
