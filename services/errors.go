package services

import (
	"errors"
	"fmt"
)

var (
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")

	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryNotEmpty = errors.New("category still has products assigned")
	ErrCategoryExists   = errors.New("a category with this name already exists")
	ErrProductNotFound  = errors.New("product not found")

	ErrCartNotFound     = errors.New("cart not found")
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrEmptyCart        = errors.New("cart is empty")

	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidOrderStatus = errors.New("invalid order status")
)

// InsufficientStockError reports an oversell attempt: the offending product,
// what is available, what was requested, and any quantity already held in
// the cart.
type InsufficientStockError struct {
	ProductID   uint    `json:"product_id"`
	ProductName string  `json:"product_name"`
	Available   int     `json:"available"`
	Requested   int     `json:"requested"`
	InCart      int     `json:"in_cart,omitempty"`
}

func (e *InsufficientStockError) Error() string {
	if e.InCart > 0 {
		return fmt.Sprintf("insufficient stock for %s: %d available, %d requested (%d already in cart)",
			e.ProductName, e.Available, e.Requested, e.InCart)
	}
	return fmt.Sprintf("insufficient stock for %s: %d available, %d requested",
		e.ProductName, e.Available, e.Requested)
}
