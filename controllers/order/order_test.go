package orderControllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/storely/storefront-api/models"
	"github.com/storely/storefront-api/repository"
	"github.com/storely/storefront-api/services"
	"github.com/storely/storefront-api/utils"
)

// stubOrderRepository drives the checkout handler without a database.
type stubOrderRepository struct {
	cart     *models.Cart
	products map[uint]*models.Product
}

var _ repository.OrderRepository = (*stubOrderRepository)(nil)

func (s *stubOrderRepository) Transaction(fn func(tx repository.OrderRepository) error) error {
	return fn(s)
}

func (s *stubOrderRepository) CartWithItems(userID uint) (*models.Cart, error) {
	if s.cart == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return s.cart, nil
}

func (s *stubOrderRepository) ProductForUpdate(id uint) (*models.Product, error) {
	product, ok := s.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return product, nil
}

func (s *stubOrderRepository) SaveProduct(product *models.Product) error { return nil }
func (s *stubOrderRepository) CreateOrder(order *models.Order) error     { return nil }
func (s *stubOrderRepository) ClearCartItems(cartID uint) error          { return nil }

func (s *stubOrderRepository) OrdersByUser(userID uint, status models.OrderStatus, offset, limit int) ([]models.Order, int64, error) {
	return nil, 0, nil
}

func (s *stubOrderRepository) OrderByUser(userID, orderID uint) (*models.Order, error) {
	return nil, gorm.ErrRecordNotFound
}

func (s *stubOrderRepository) StatsByUser(userID uint) (*models.OrderStats, error) {
	return &models.OrderStats{}, nil
}

func placeOrderRouter(repo repository.OrderRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/orders", func(c *gin.Context) {
		c.Set("user_id", uint(42))
	}, PlaceOrderHandler(services.NewOrderService(repo)))
	return r
}

func placeOrder(t *testing.T, r *gin.Engine) (int, utils.Response) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/orders", nil)
	r.ServeHTTP(w, req)

	var body utils.Response
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestPlaceOrder_VanishedProductIs404(t *testing.T) {
	repo := &stubOrderRepository{
		cart: &models.Cart{
			ID:     8,
			UserID: 42,
			Items:  []models.CartItem{{CartID: 8, ProductID: 3, Quantity: 1}},
		},
		// product 3 soft-deleted after it was added to the cart
		products: map[uint]*models.Product{},
	}

	status, body := placeOrder(t, placeOrderRouter(repo))

	assert.Equal(t, http.StatusNotFound, status)
	assert.False(t, body.Success)
	assert.Contains(t, body.Message, "product 3")
}

func TestPlaceOrder_InsufficientStockIs400(t *testing.T) {
	repo := &stubOrderRepository{
		cart: &models.Cart{
			ID:     8,
			UserID: 42,
			Items:  []models.CartItem{{CartID: 8, ProductID: 3, Quantity: 2}},
		},
		products: map[uint]*models.Product{
			3: {ID: 3, Name: "Oak Shelf", Price: 20, StockQuantity: 1},
		},
	}

	status, body := placeOrder(t, placeOrderRouter(repo))

	assert.Equal(t, http.StatusBadRequest, status)
	assert.False(t, body.Success)
	assert.Contains(t, body.Message, "Oak Shelf")
	assert.NotNil(t, body.Errors)
}

func TestPlaceOrder_EmptyCartIs400(t *testing.T) {
	status, body := placeOrder(t, placeOrderRouter(&stubOrderRepository{}))

	assert.Equal(t, http.StatusBadRequest, status)
	assert.False(t, body.Success)
	assert.Contains(t, body.Message, "empty")
}
