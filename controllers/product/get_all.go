package productControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/storely/storefront-api/repository"
	"github.com/storely/storefront-api/services"
	"github.com/storely/storefront-api/utils"
)

// GET /products
func GetProducts(svc *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var filter repository.ProductFilter

		filter.Search = c.Query("search")
		if v := c.Query("category_id"); v != "" {
			id, err := strconv.ParseUint(v, 10, 64)
			if err != nil {
				utils.Fail(c, http.StatusBadRequest, "invalid category_id")
				return
			}
			categoryID := uint(id)
			filter.CategoryID = &categoryID
		}
		if v := c.Query("min_price"); v != "" {
			p, err := strconv.ParseFloat(v, 64)
			if err != nil {
				utils.Fail(c, http.StatusBadRequest, "invalid min_price")
				return
			}
			filter.MinPrice = &p
		}
		if v := c.Query("max_price"); v != "" {
			p, err := strconv.ParseFloat(v, 64)
			if err != nil {
				utils.Fail(c, http.StatusBadRequest, "invalid max_price")
				return
			}
			filter.MaxPrice = &p
		}

		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

		products, meta, err := svc.ListProducts(filter, page, limit)
		if err != nil {
			utils.Fail(c, http.StatusInternalServerError, "failed to fetch products")
			return
		}

		utils.OK(c, "products", gin.H{"products": products, "pagination": meta})
	}
}
