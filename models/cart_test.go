package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCartTotals(t *testing.T) {
	cart := Cart{
		Items: []CartItem{
			{Quantity: 2, Product: Product{Price: 100}},
			{Quantity: 1, Product: Product{Price: 49.5}},
		},
	}

	assert.Equal(t, 3, cart.TotalItems())
	assert.Equal(t, 249.5, cart.TotalPrice())
}

func TestCartTotals_Empty(t *testing.T) {
	cart := Cart{}
	assert.Equal(t, 0, cart.TotalItems())
	assert.Equal(t, 0.0, cart.TotalPrice())
}

func TestCartTotalPrice_TracksCurrentPrice(t *testing.T) {
	cart := Cart{Items: []CartItem{{Quantity: 2, Product: Product{Price: 100}}}}
	assert.Equal(t, 200.0, cart.TotalPrice())

	cart.Items[0].Product.Price = 150
	assert.Equal(t, 300.0, cart.TotalPrice())
}

func TestProductInStock(t *testing.T) {
	product := Product{StockQuantity: 3}
	assert.True(t, product.InStock(3))
	assert.False(t, product.InStock(4))

	empty := Product{}
	assert.False(t, empty.InStock(1))
}

func TestParseOrderStatus(t *testing.T) {
	status, err := ParseOrderStatus("shipped")
	assert.NoError(t, err)
	assert.Equal(t, OrderStatusShipped, status)

	_, err = ParseOrderStatus("teleported")
	assert.Error(t, err)
}
