package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/storely/storefront-api/models"
	"github.com/storely/storefront-api/repository"
)

// OrderService persists orders and runs the checkout flow.
type OrderService struct {
	orders repository.OrderRepository
}

func NewOrderService(orders repository.OrderRepository) *OrderService {
	return &OrderService{orders: orders}
}

func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// Checkout converts the user's cart into a pending order inside one
// transaction: every product row is locked and validated before anything is
// written, so a failing line leaves no order, no stock change and an intact
// cart. Item prices are frozen from the locked snapshot.
func (s *OrderService) Checkout(userID uint) (*models.Order, error) {
	var placed *models.Order

	err := s.orders.Transaction(func(tx repository.OrderRepository) error {
		cart, err := tx.CartWithItems(userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEmptyCart
			}
			return fmt.Errorf("failed to load cart: %w", err)
		}
		if len(cart.Items) == 0 {
			return ErrEmptyCart
		}

		// Validation pass: lock and check every line before any write.
		products := make(map[uint]*models.Product, len(cart.Items))
		for _, item := range cart.Items {
			product, err := tx.ProductForUpdate(item.ProductID)
			if err != nil {
				// A line can outlive its product: deletion is a soft delete,
				// which hides the row from the default scope.
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("product %d is no longer available: %w", item.ProductID, ErrProductNotFound)
				}
				return fmt.Errorf("failed to lock product %d: %w", item.ProductID, err)
			}
			if !product.InStock(item.Quantity) {
				return &InsufficientStockError{
					ProductID:   product.ID,
					ProductName: product.Name,
					Available:   product.StockQuantity,
					Requested:   item.Quantity,
				}
			}
			products[item.ProductID] = product
		}

		var total float64
		orderItems := make([]models.OrderItem, 0, len(cart.Items))
		for _, item := range cart.Items {
			product := products[item.ProductID]
			total += product.Price * float64(item.Quantity)
			orderItems = append(orderItems, models.OrderItem{
				ProductID:   product.ID,
				ProductName: product.Name,
				Quantity:    item.Quantity,
				Price:       product.Price,
			})
		}

		order := &models.Order{
			OrderRef:    generateOrderRef(),
			UserID:      userID,
			Items:       orderItems,
			TotalAmount: total,
			Status:      models.OrderStatusPending,
			CreatedAt:   time.Now(),
		}
		if err := tx.CreateOrder(order); err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		for _, item := range cart.Items {
			product := products[item.ProductID]
			product.StockQuantity -= item.Quantity
			if err := tx.SaveProduct(product); err != nil {
				return fmt.Errorf("failed to update stock for product %d: %w", product.ID, err)
			}
		}

		// The cart row survives; only its lines go.
		if err := tx.ClearCartItems(cart.ID); err != nil {
			return fmt.Errorf("failed to clear cart: %w", err)
		}

		placed = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return placed, nil
}

// ListOrders returns the user's own orders, newest first.
func (s *OrderService) ListOrders(userID uint, status string, page, pageSize int) ([]models.Order, Pagination, error) {
	var orderStatus models.OrderStatus
	if status != "" {
		parsed, err := models.ParseOrderStatus(status)
		if err != nil {
			return nil, Pagination{}, ErrInvalidOrderStatus
		}
		orderStatus = parsed
	}

	page, pageSize, offset := paginate(page, pageSize)
	orders, total, err := s.orders.OrdersByUser(userID, orderStatus, offset, pageSize)
	if err != nil {
		return nil, Pagination{}, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, pageMeta(page, pageSize, total), nil
}

// GetOrder loads one order; ownership is the access boundary, so an order
// belonging to someone else reads as not found.
func (s *OrderService) GetOrder(userID, orderID uint) (*models.Order, error) {
	order, err := s.orders.OrderByUser(userID, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to load order: %w", err)
	}
	return order, nil
}

// Stats summarizes the user's orders by status.
func (s *OrderService) Stats(userID uint) (*models.OrderStats, error) {
	stats, err := s.orders.StatsByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load order stats: %w", err)
	}
	return stats, nil
}
