package routes

import (
	"github.com/gin-gonic/gin"

	authControllers "github.com/storely/storefront-api/controllers/auth"
	cartControllers "github.com/storely/storefront-api/controllers/cart"
	orderControllers "github.com/storely/storefront-api/controllers/order"
	"github.com/storely/storefront-api/middleware"
	"github.com/storely/storefront-api/services"
)

// SetupUserRoutes registers every JWT-protected endpoint.
func SetupUserRoutes(r *gin.Engine, authSvc *services.AuthService, cartSvc *services.CartService, orderSvc *services.OrderService) {
	userGroup := r.Group("/")
	userGroup.Use(middleware.ValidateToken)
	{
		userGroup.GET("/profile", authControllers.ProfileHandler(authSvc))
		userGroup.PUT("/profile", authControllers.UpdateProfileHandler(authSvc))

		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("", cartControllers.GetCart(cartSvc))
			cartGroup.POST("/add", cartControllers.AddToCart(cartSvc))
			cartGroup.PUT("/update", cartControllers.UpdateCartItem(cartSvc))
			cartGroup.DELETE("/remove/:product_id", cartControllers.RemoveFromCart(cartSvc))
			cartGroup.DELETE("/clear", cartControllers.ClearCart(cartSvc))
		}

		orderGroup := userGroup.Group("/orders")
		{
			orderGroup.POST("", orderControllers.PlaceOrderHandler(orderSvc))
			orderGroup.GET("", orderControllers.GetUserOrdersHandler(orderSvc))
			orderGroup.GET("/ws", orderControllers.OrderWebSocketHandler)
			orderGroup.GET("/:id", orderControllers.GetOrderByIDHandler(orderSvc))
		}

		userGroup.GET("/orders-stats", orderControllers.GetOrderStatsHandler(orderSvc))
	}
}
