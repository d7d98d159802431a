package cartControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/storely/storefront-api/middleware"
	"github.com/storely/storefront-api/models"
	"github.com/storely/storefront-api/services"
	"github.com/storely/storefront-api/utils"
)

type CartItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

func cartPayload(cart *models.Cart) gin.H {
	return gin.H{
		"cart":        cart,
		"total_items": cart.TotalItems(),
		"total_price": cart.TotalPrice(),
	}
}

func failCart(c *gin.Context, err error) {
	var stockErr *services.InsufficientStockError
	switch {
	case errors.As(err, &stockErr):
		c.JSON(http.StatusBadRequest, utils.Response{
			Success: false,
			Message: stockErr.Error(),
			Errors:  stockErr,
		})
	case errors.Is(err, services.ErrProductNotFound),
		errors.Is(err, services.ErrCartNotFound),
		errors.Is(err, services.ErrCartItemNotFound):
		utils.Fail(c, http.StatusNotFound, err.Error())
	default:
		utils.Fail(c, http.StatusInternalServerError, "cart operation failed")
	}
}

// GET /cart
func GetCart(svc *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, err := svc.GetCart(middleware.UserID(c))
		if err != nil {
			utils.Fail(c, http.StatusInternalServerError, "failed to fetch cart")
			return
		}
		utils.OK(c, "cart", cartPayload(cart))
	}
}

// POST /cart/add
func AddToCart(svc *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.FailValidation(c, err)
			return
		}

		cart, err := svc.AddItem(middleware.UserID(c), input.ProductID, input.Quantity)
		if err != nil {
			failCart(c, err)
			return
		}
		utils.Created(c, "item added to cart", cartPayload(cart))
	}
}

// PUT /cart/update
func UpdateCartItem(svc *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.FailValidation(c, err)
			return
		}

		cart, err := svc.UpdateItem(middleware.UserID(c), input.ProductID, input.Quantity)
		if err != nil {
			failCart(c, err)
			return
		}
		utils.OK(c, "cart item updated", cartPayload(cart))
	}
}

// DELETE /cart/remove/:product_id
func RemoveFromCart(svc *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
		if err != nil {
			utils.Fail(c, http.StatusBadRequest, "invalid product id")
			return
		}

		cart, err := svc.RemoveItem(middleware.UserID(c), uint(productID))
		if err != nil {
			failCart(c, err)
			return
		}
		utils.OK(c, "item removed from cart", cartPayload(cart))
	}
}

// DELETE /cart/clear
func ClearCart(svc *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, err := svc.Clear(middleware.UserID(c))
		if err != nil {
			failCart(c, err)
			return
		}
		utils.OK(c, "cart cleared", cartPayload(cart))
	}
}
