package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/storely/storefront-api/models"
	"github.com/storely/storefront-api/repository"
)

// CartService manages the single cart each user owns.
type CartService struct {
	carts   repository.CartRepository
	catalog repository.CatalogRepository
}

func NewCartService(carts repository.CartRepository, catalog repository.CatalogRepository) *CartService {
	return &CartService{carts: carts, catalog: catalog}
}

// GetCart returns the user's cart with items and products attached. Users
// who never added anything get an empty cart value; no row is written on a
// read.
func (s *CartService) GetCart(userID uint) (*models.Cart, error) {
	cart, err := s.carts.CartByUser(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &models.Cart{UserID: userID, Items: []models.CartItem{}}, nil
		}
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	return cart, nil
}

// AddItem puts quantity units of a product into the cart, merging with an
// existing line for the same product. The stock check covers quantity
// already held in the cart.
func (s *CartService) AddItem(userID, productID uint, quantity int) (*models.Cart, error) {
	product, err := s.catalog.ProductByID(productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to load product: %w", err)
	}

	cart, err := s.carts.CartByUser(userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to load cart: %w", err)
		}
		cart = &models.Cart{UserID: userID}
		if err := s.carts.CreateCart(cart); err != nil {
			return nil, fmt.Errorf("failed to create cart: %w", err)
		}
	}

	item, err := s.carts.ItemByProduct(cart.ID, productID)
	switch {
	case err == nil:
		if !product.InStock(item.Quantity + quantity) {
			return nil, &InsufficientStockError{
				ProductID:   product.ID,
				ProductName: product.Name,
				Available:   product.StockQuantity,
				Requested:   quantity,
				InCart:      item.Quantity,
			}
		}
		item.Quantity += quantity
		if err := s.carts.SaveItem(item); err != nil {
			return nil, fmt.Errorf("failed to update cart item: %w", err)
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		if !product.InStock(quantity) {
			return nil, &InsufficientStockError{
				ProductID:   product.ID,
				ProductName: product.Name,
				Available:   product.StockQuantity,
				Requested:   quantity,
			}
		}
		newItem := &models.CartItem{CartID: cart.ID, ProductID: productID, Quantity: quantity}
		if err := s.carts.CreateItem(newItem); err != nil {
			return nil, fmt.Errorf("failed to add cart item: %w", err)
		}
	default:
		return nil, fmt.Errorf("failed to look up cart item: %w", err)
	}

	return s.GetCart(userID)
}

// UpdateItem replaces the quantity of an existing cart line.
func (s *CartService) UpdateItem(userID, productID uint, quantity int) (*models.Cart, error) {
	cart, err := s.carts.CartByUser(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartNotFound
		}
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	item, err := s.carts.ItemByProduct(cart.ID, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartItemNotFound
		}
		return nil, fmt.Errorf("failed to look up cart item: %w", err)
	}

	product, err := s.catalog.ProductByID(productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to load product: %w", err)
	}
	if !product.InStock(quantity) {
		return nil, &InsufficientStockError{
			ProductID:   product.ID,
			ProductName: product.Name,
			Available:   product.StockQuantity,
			Requested:   quantity,
		}
	}

	item.Quantity = quantity
	if err := s.carts.SaveItem(item); err != nil {
		return nil, fmt.Errorf("failed to update cart item: %w", err)
	}
	return s.GetCart(userID)
}

// RemoveItem deletes one line from the cart.
func (s *CartService) RemoveItem(userID, productID uint) (*models.Cart, error) {
	cart, err := s.carts.CartByUser(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartNotFound
		}
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	deleted, err := s.carts.DeleteItem(cart.ID, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to remove cart item: %w", err)
	}
	if deleted == 0 {
		return nil, ErrCartItemNotFound
	}
	return s.GetCart(userID)
}

// Clear removes every line but keeps the cart row itself.
func (s *CartService) Clear(userID uint) (*models.Cart, error) {
	cart, err := s.carts.CartByUser(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartNotFound
		}
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	if err := s.carts.ClearItems(cart.ID); err != nil {
		return nil, fmt.Errorf("failed to clear cart: %w", err)
	}
	return s.GetCart(userID)
}
