package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID            uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string         `gorm:"not null" json:"name"`
	Description   string         `json:"description"`
	Price         float64        `gorm:"not null" json:"price"`
	StockQuantity int            `gorm:"not null;default:0" json:"stock_quantity"`
	CategoryID    uint           `gorm:"not null;index" json:"category_id"`
	Category      Category       `gorm:"foreignKey:CategoryID" json:"category"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// InStock reports whether the product can cover the requested quantity.
func (p *Product) InStock(quantity int) bool {
	return p.StockQuantity >= quantity
}
