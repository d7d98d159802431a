package productControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/storely/storefront-api/services"
	"github.com/storely/storefront-api/utils"
)

// PUT /admin/products/:id
func UpdateProduct(svc *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			utils.Fail(c, http.StatusBadRequest, "invalid product id")
			return
		}

		var input services.ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.FailValidation(c, err)
			return
		}

		product, err := svc.UpdateProduct(uint(id), input)
		switch {
		case err == nil:
			utils.OK(c, "product updated", product)
		case errors.Is(err, services.ErrProductNotFound):
			utils.Fail(c, http.StatusNotFound, err.Error())
		case errors.Is(err, services.ErrCategoryNotFound):
			utils.Fail(c, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.Fail(c, http.StatusInternalServerError, "failed to update product")
		}
	}
}
