package routes

import (
	"github.com/gin-gonic/gin"

	productControllers "github.com/storely/storefront-api/controllers/product"
	"github.com/storely/storefront-api/middleware"
	"github.com/storely/storefront-api/services"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires a valid token
// with the admin role.
func SetupAdminRoutes(r *gin.Engine, catalogSvc *services.CatalogService) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateToken, middleware.AdminRequired)
	{
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productControllers.CreateProduct(catalogSvc))
			productAdmin.PUT("/:id", productControllers.UpdateProduct(catalogSvc))
			productAdmin.DELETE("/:id", productControllers.DeleteProduct(catalogSvc))
			productAdmin.POST("/import-excel", productControllers.ImportProductsFromExcel(catalogSvc))
			productAdmin.GET("/export-excel", productControllers.ExportProductsToExcel(catalogSvc))
		}

		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.POST("", productControllers.CreateCategory(catalogSvc))
			categoryAdmin.PUT("/:id", productControllers.UpdateCategory(catalogSvc))
			categoryAdmin.DELETE("/:id", productControllers.DeleteCategory(catalogSvc))
		}
	}
}
