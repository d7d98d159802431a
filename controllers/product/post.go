package productControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/storely/storefront-api/services"
	"github.com/storely/storefront-api/utils"
)

// POST /admin/products
func CreateProduct(svc *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input services.ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.FailValidation(c, err)
			return
		}

		product, err := svc.CreateProduct(input)
		if err != nil {
			if errors.Is(err, services.ErrCategoryNotFound) {
				utils.Fail(c, http.StatusUnprocessableEntity, err.Error())
				return
			}
			utils.Fail(c, http.StatusInternalServerError, "failed to create product")
			return
		}

		utils.Created(c, "product created", product)
	}
}
