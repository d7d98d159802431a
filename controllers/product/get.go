package productControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/storely/storefront-api/services"
	"github.com/storely/storefront-api/utils"
)

// GET /products/:id
func GetProductByID(svc *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			utils.Fail(c, http.StatusBadRequest, "invalid product id")
			return
		}

		product, err := svc.GetProduct(uint(id))
		if err != nil {
			if errors.Is(err, services.ErrProductNotFound) {
				utils.Fail(c, http.StatusNotFound, err.Error())
				return
			}
			utils.Fail(c, http.StatusInternalServerError, "failed to fetch product")
			return
		}

		utils.OK(c, "product", product)
	}
}
