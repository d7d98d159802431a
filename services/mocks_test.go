package services

import (
	"github.com/stretchr/testify/mock"

	"github.com/storely/storefront-api/models"
	"github.com/storely/storefront-api/repository"
)

var (
	_ repository.UserRepository    = (*MockUserRepository)(nil)
	_ repository.CatalogRepository = (*MockCatalogRepository)(nil)
	_ repository.CartRepository    = (*MockCartRepository)(nil)
	_ repository.OrderRepository   = (*MockOrderRepository)(nil)
)

// MockUserRepository implements repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) ByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) ByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) Save(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

// MockCatalogRepository implements repository.CatalogRepository.
type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) Products(filter repository.ProductFilter, offset, limit int) ([]models.Product, int64, error) {
	args := m.Called(filter, offset, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Product), args.Get(1).(int64), args.Error(2)
}

func (m *MockCatalogRepository) AllProducts() ([]models.Product, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockCatalogRepository) ProductByID(id uint) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockCatalogRepository) CreateProduct(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockCatalogRepository) SaveProduct(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockCatalogRepository) DeleteProduct(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockCatalogRepository) Categories() ([]models.Category, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockCatalogRepository) CategoryByID(id uint) (*models.Category, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCatalogRepository) CreateCategory(category *models.Category) error {
	args := m.Called(category)
	return args.Error(0)
}

func (m *MockCatalogRepository) SaveCategory(category *models.Category) error {
	args := m.Called(category)
	return args.Error(0)
}

func (m *MockCatalogRepository) DeleteCategory(category *models.Category) error {
	args := m.Called(category)
	return args.Error(0)
}

func (m *MockCatalogRepository) ProductCountByCategory(categoryID uint) (int64, error) {
	args := m.Called(categoryID)
	return args.Get(0).(int64), args.Error(1)
}

// MockCartRepository implements repository.CartRepository.
type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) CartByUser(userID uint) (*models.Cart, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Cart), args.Error(1)
}

func (m *MockCartRepository) CreateCart(cart *models.Cart) error {
	args := m.Called(cart)
	return args.Error(0)
}

func (m *MockCartRepository) ItemByProduct(cartID, productID uint) (*models.CartItem, error) {
	args := m.Called(cartID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CartItem), args.Error(1)
}

func (m *MockCartRepository) CreateItem(item *models.CartItem) error {
	args := m.Called(item)
	return args.Error(0)
}

func (m *MockCartRepository) SaveItem(item *models.CartItem) error {
	args := m.Called(item)
	return args.Error(0)
}

func (m *MockCartRepository) DeleteItem(cartID, productID uint) (int64, error) {
	args := m.Called(cartID, productID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCartRepository) ClearItems(cartID uint) error {
	args := m.Called(cartID)
	return args.Error(0)
}

// MockOrderRepository implements repository.OrderRepository. Transaction is
// a passthrough so checkout logic runs against the mock itself; rollback is
// the database's job, the tests only assert what would have been written.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Transaction(fn func(tx repository.OrderRepository) error) error {
	return fn(m)
}

func (m *MockOrderRepository) CartWithItems(userID uint) (*models.Cart, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Cart), args.Error(1)
}

func (m *MockOrderRepository) ProductForUpdate(id uint) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockOrderRepository) SaveProduct(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockOrderRepository) CreateOrder(order *models.Order) error {
	args := m.Called(order)
	return args.Error(0)
}

func (m *MockOrderRepository) ClearCartItems(cartID uint) error {
	args := m.Called(cartID)
	return args.Error(0)
}

func (m *MockOrderRepository) OrdersByUser(userID uint, status models.OrderStatus, offset, limit int) ([]models.Order, int64, error) {
	args := m.Called(userID, status, offset, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Order), args.Get(1).(int64), args.Error(2)
}

func (m *MockOrderRepository) OrderByUser(userID, orderID uint) (*models.Order, error) {
	args := m.Called(userID, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepository) StatsByUser(userID uint) (*models.OrderStats, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.OrderStats), args.Error(1)
}
