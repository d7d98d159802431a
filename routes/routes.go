package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/storely/storefront-api/repository"
	"github.com/storely/storefront-api/services"
)

// SetupRoutes is the single entry-point that wires repositories, services
// and the public/user/admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	users := repository.NewUserRepository(db)
	catalog := repository.NewCatalogRepository(db)
	carts := repository.NewCartRepository(db)
	orders := repository.NewOrderRepository(db)

	authSvc := services.NewAuthService(users)
	catalogSvc := services.NewCatalogService(catalog)
	cartSvc := services.NewCartService(carts, catalog)
	orderSvc := services.NewOrderService(orders)

	SetupAuthRoutes(r, authSvc)
	SetupCatalogRoutes(r, catalogSvc)
	SetupUserRoutes(r, authSvc, cartSvc, orderSvc)
	SetupAdminRoutes(r, catalogSvc)
}
