package productControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/storely/storefront-api/services"
	"github.com/storely/storefront-api/utils"
)

type CategoryInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type CategoryUpdateInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// GET /categories
func GetAllCategories(svc *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := svc.ListCategories()
		if err != nil {
			utils.Fail(c, http.StatusInternalServerError, "failed to fetch categories")
			return
		}
		utils.OK(c, "categories", categories)
	}
}

// POST /admin/categories
func CreateCategory(svc *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.FailValidation(c, err)
			return
		}

		category, err := svc.CreateCategory(input.Name, input.Description)
		if err != nil {
			if errors.Is(err, services.ErrCategoryExists) {
				utils.Fail(c, http.StatusConflict, err.Error())
				return
			}
			utils.Fail(c, http.StatusInternalServerError, "failed to create category")
			return
		}

		utils.Created(c, "category created", category)
	}
}

// PUT /admin/categories/:id
func UpdateCategory(svc *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			utils.Fail(c, http.StatusBadRequest, "invalid category id")
			return
		}

		var input CategoryUpdateInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.FailValidation(c, err)
			return
		}

		category, err := svc.UpdateCategory(uint(id), input.Name, input.Description)
		switch {
		case err == nil:
			utils.OK(c, "category updated", category)
		case errors.Is(err, services.ErrCategoryNotFound):
			utils.Fail(c, http.StatusNotFound, err.Error())
		case errors.Is(err, services.ErrCategoryExists):
			utils.Fail(c, http.StatusConflict, err.Error())
		default:
			utils.Fail(c, http.StatusInternalServerError, "failed to update category")
		}
	}
}

// DELETE /admin/categories/:id
func DeleteCategory(svc *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			utils.Fail(c, http.StatusBadRequest, "invalid category id")
			return
		}

		err = svc.DeleteCategory(uint(id))
		switch {
		case err == nil:
			utils.OK(c, "category deleted", nil)
		case errors.Is(err, services.ErrCategoryNotFound):
			utils.Fail(c, http.StatusNotFound, err.Error())
		case errors.Is(err, services.ErrCategoryNotEmpty):
			utils.Fail(c, http.StatusConflict, err.Error())
		default:
			utils.Fail(c, http.StatusInternalServerError, "failed to delete category")
		}
	}
}
