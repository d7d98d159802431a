package models

import "time"

type Cart struct {
	ID        uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint       `gorm:"uniqueIndex;not null" json:"user_id"` // one cart per user
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type CartItem struct {
	ID        uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	CartID    uint    `gorm:"not null;uniqueIndex:idx_cart_product" json:"cart_id"`
	ProductID uint    `gorm:"not null;uniqueIndex:idx_cart_product" json:"product_id"`
	Product   Product `gorm:"foreignKey:ProductID" json:"product"`
	Quantity  int     `gorm:"not null" json:"quantity"`
}

// TotalItems sums the quantities across all cart lines.
func (c *Cart) TotalItems() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

// TotalPrice is computed from current product prices, not a snapshot.
func (c *Cart) TotalPrice() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.Product.Price * float64(item.Quantity)
	}
	return total
}
