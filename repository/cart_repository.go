package repository

import (
	"gorm.io/gorm"

	"github.com/storely/storefront-api/models"
)

// CartRepository defines persistence for carts and their line items.
type CartRepository interface {
	CartByUser(userID uint) (*models.Cart, error)
	CreateCart(cart *models.Cart) error
	ItemByProduct(cartID, productID uint) (*models.CartItem, error)
	CreateItem(item *models.CartItem) error
	SaveItem(item *models.CartItem) error
	DeleteItem(cartID, productID uint) (int64, error)
	ClearItems(cartID uint) error
}

type GormCartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepository {
	return &GormCartRepository{db: db}
}

func (r *GormCartRepository) CartByUser(userID uint) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.Preload("Items.Product.Category").
		Where("user_id = ?", userID).
		First(&cart).Error
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *GormCartRepository) CreateCart(cart *models.Cart) error {
	return r.db.Create(cart).Error
}

func (r *GormCartRepository) ItemByProduct(cartID, productID uint) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.Where("cart_id = ? AND product_id = ?", cartID, productID).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *GormCartRepository) CreateItem(item *models.CartItem) error {
	return r.db.Create(item).Error
}

func (r *GormCartRepository) SaveItem(item *models.CartItem) error {
	return r.db.Save(item).Error
}

func (r *GormCartRepository) DeleteItem(cartID, productID uint) (int64, error) {
	result := r.db.Where("cart_id = ? AND product_id = ?", cartID, productID).
		Delete(&models.CartItem{})
	return result.RowsAffected, result.Error
}

func (r *GormCartRepository) ClearItems(cartID uint) error {
	return r.db.Where("cart_id = ?", cartID).Delete(&models.CartItem{}).Error
}
