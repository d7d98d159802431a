package routes

import (
	"github.com/gin-gonic/gin"

	productControllers "github.com/storely/storefront-api/controllers/product"
	"github.com/storely/storefront-api/services"
)

// SetupCatalogRoutes registers the public browse endpoints; no token needed.
func SetupCatalogRoutes(r *gin.Engine, catalogSvc *services.CatalogService) {
	r.GET("/categories", productControllers.GetAllCategories(catalogSvc))
	r.GET("/products", productControllers.GetProducts(catalogSvc))
	r.GET("/products/:id", productControllers.GetProductByID(catalogSvc))
}
