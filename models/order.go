package models

import (
	"errors"
	"strings"
	"time"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"   // placed, awaiting confirmation
	OrderStatusConfirmed OrderStatus = "confirmed" // confirmed by the store
	OrderStatusShipped   OrderStatus = "shipped"   // out for delivery
	OrderStatusDelivered OrderStatus = "delivered" // customer received the items
	OrderStatusCancelled OrderStatus = "cancelled" // cancelled before shipping
)

// ParseOrderStatus maps a query-string value to an OrderStatus.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch strings.ToLower(s) {
	case string(OrderStatusPending):
		return OrderStatusPending, nil
	case string(OrderStatusConfirmed):
		return OrderStatusConfirmed, nil
	case string(OrderStatusShipped):
		return OrderStatusShipped, nil
	case string(OrderStatusDelivered):
		return OrderStatusDelivered, nil
	case string(OrderStatusCancelled):
		return OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

type Order struct {
	ID          uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderRef    string      `gorm:"uniqueIndex;not null" json:"order_ref"`
	UserID      uint        `gorm:"not null;index" json:"user_id"`
	Items       []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	TotalAmount float64     `gorm:"not null" json:"total_amount"`
	Status      OrderStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
}

// OrderStats summarizes a user's order history. TotalSpent excludes
// cancelled orders.
type OrderStats struct {
	TotalOrders int64            `json:"total_orders"`
	ByStatus    map[string]int64 `json:"by_status"`
	TotalSpent  float64          `json:"total_spent"`
}

// OrderItem freezes the product name and unit price at purchase time.
type OrderItem struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID     uint    `gorm:"not null;index" json:"order_id"`
	ProductID   uint    `gorm:"not null" json:"product_id"`
	ProductName string  `gorm:"not null" json:"product_name"`
	Quantity    int     `gorm:"not null" json:"quantity"`
	Price       float64 `gorm:"not null" json:"price"`
}
