package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/storely/storefront-api/models"
)

// OrderRepository defines persistence for orders and the checkout
// transaction boundary.
type OrderRepository interface {
	// Transaction runs fn against a repository bound to one database
	// transaction; any error rolls the whole transaction back.
	Transaction(fn func(tx OrderRepository) error) error

	CartWithItems(userID uint) (*models.Cart, error)
	// ProductForUpdate loads a product under a row lock when called inside
	// Transaction, so concurrent checkouts serialize on the stock row.
	ProductForUpdate(id uint) (*models.Product, error)
	SaveProduct(product *models.Product) error
	CreateOrder(order *models.Order) error
	ClearCartItems(cartID uint) error

	OrdersByUser(userID uint, status models.OrderStatus, offset, limit int) ([]models.Order, int64, error)
	OrderByUser(userID, orderID uint) (*models.Order, error)
	StatsByUser(userID uint) (*models.OrderStats, error)
}

type GormOrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &GormOrderRepository{db: db}
}

func (r *GormOrderRepository) Transaction(fn func(tx OrderRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&GormOrderRepository{db: tx})
	})
}

func (r *GormOrderRepository) CartWithItems(userID uint) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.Preload("Items").Where("user_id = ?", userID).First(&cart).Error
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *GormOrderRepository) ProductForUpdate(id uint) (*models.Product, error) {
	var product models.Product
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&product, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *GormOrderRepository) SaveProduct(product *models.Product) error {
	return r.db.Save(product).Error
}

func (r *GormOrderRepository) CreateOrder(order *models.Order) error {
	return r.db.Create(order).Error
}

func (r *GormOrderRepository) ClearCartItems(cartID uint) error {
	return r.db.Where("cart_id = ?", cartID).Delete(&models.CartItem{}).Error
}

func (r *GormOrderRepository) OrdersByUser(userID uint, status models.OrderStatus, offset, limit int) ([]models.Order, int64, error) {
	query := r.db.Model(&models.Order{}).Where("user_id = ?", userID)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []models.Order
	err := query.Preload("Items").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&orders).Error
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

func (r *GormOrderRepository) OrderByUser(userID, orderID uint) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Items").
		Where("id = ? AND user_id = ?", orderID, userID).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *GormOrderRepository) StatsByUser(userID uint) (*models.OrderStats, error) {
	var rows []struct {
		Status models.OrderStatus
		Count  int64
		Total  float64
	}
	err := r.db.Model(&models.Order{}).
		Select("status, COUNT(*) AS count, COALESCE(SUM(total_amount), 0) AS total").
		Where("user_id = ?", userID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	stats := &models.OrderStats{ByStatus: make(map[string]int64)}
	for _, row := range rows {
		stats.TotalOrders += row.Count
		stats.ByStatus[string(row.Status)] = row.Count
		if row.Status != models.OrderStatusCancelled {
			stats.TotalSpent += row.Total
		}
	}
	return stats, nil
}
