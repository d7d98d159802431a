package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/storely/storefront-api/models"
	"github.com/storely/storefront-api/repository"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Pagination describes one page of a listing.
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalItems int64 `json:"total_items"`
	TotalPages int   `json:"total_pages"`
}

func paginate(page, pageSize int) (int, int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return page, pageSize, (page - 1) * pageSize
}

func pageMeta(page, pageSize int, total int64) Pagination {
	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	return Pagination{Page: page, PageSize: pageSize, TotalItems: total, TotalPages: totalPages}
}

// ProductInput carries the admin-facing product fields.
type ProductInput struct {
	Name          string  `json:"name" binding:"required"`
	Description   string  `json:"description"`
	Price         float64 `json:"price" binding:"gte=0"`
	StockQuantity int     `json:"stock_quantity" binding:"gte=0"`
	CategoryID    uint    `json:"category_id" binding:"required"`
}

// CatalogService handles category and product browsing plus the admin CRUD.
type CatalogService struct {
	catalog repository.CatalogRepository
}

func NewCatalogService(catalog repository.CatalogRepository) *CatalogService {
	return &CatalogService{catalog: catalog}
}

func (s *CatalogService) ListProducts(filter repository.ProductFilter, page, pageSize int) ([]models.Product, Pagination, error) {
	page, pageSize, offset := paginate(page, pageSize)

	products, total, err := s.catalog.Products(filter, offset, pageSize)
	if err != nil {
		return nil, Pagination{}, fmt.Errorf("failed to list products: %w", err)
	}
	return products, pageMeta(page, pageSize, total), nil
}

func (s *CatalogService) GetProduct(id uint) (*models.Product, error) {
	product, err := s.catalog.ProductByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to load product: %w", err)
	}
	return product, nil
}

func (s *CatalogService) CreateProduct(input ProductInput) (*models.Product, error) {
	if _, err := s.catalog.CategoryByID(input.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to check category: %w", err)
	}

	product := &models.Product{
		Name:          input.Name,
		Description:   input.Description,
		Price:         input.Price,
		StockQuantity: input.StockQuantity,
		CategoryID:    input.CategoryID,
	}
	if err := s.catalog.CreateProduct(product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return s.GetProduct(product.ID)
}

func (s *CatalogService) UpdateProduct(id uint, input ProductInput) (*models.Product, error) {
	product, err := s.GetProduct(id)
	if err != nil {
		return nil, err
	}

	if input.CategoryID != product.CategoryID {
		if _, err := s.catalog.CategoryByID(input.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrCategoryNotFound
			}
			return nil, fmt.Errorf("failed to check category: %w", err)
		}
	}

	product.Name = input.Name
	product.Description = input.Description
	product.Price = input.Price
	product.StockQuantity = input.StockQuantity
	product.CategoryID = input.CategoryID
	if err := s.catalog.SaveProduct(product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return s.GetProduct(product.ID)
}

// DeleteProduct soft-deletes the product so existing order history keeps its
// frozen snapshot rows.
func (s *CatalogService) DeleteProduct(id uint) error {
	product, err := s.GetProduct(id)
	if err != nil {
		return err
	}
	if err := s.catalog.DeleteProduct(product); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}

func (s *CatalogService) ListCategories() ([]models.Category, error) {
	categories, err := s.catalog.Categories()
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func (s *CatalogService) CreateCategory(name, description string) (*models.Category, error) {
	category := &models.Category{Name: name, Description: description}
	if err := s.catalog.CreateCategory(category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrCategoryExists
		}
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return category, nil
}

func (s *CatalogService) UpdateCategory(id uint, name, description *string) (*models.Category, error) {
	category, err := s.catalog.CategoryByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to load category: %w", err)
	}

	if name != nil {
		category.Name = *name
	}
	if description != nil {
		category.Description = *description
	}
	if err := s.catalog.SaveCategory(category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrCategoryExists
		}
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return category, nil
}

// DeleteCategory refuses to remove a category that still owns products.
func (s *CatalogService) DeleteCategory(id uint) error {
	category, err := s.catalog.CategoryByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCategoryNotFound
		}
		return fmt.Errorf("failed to load category: %w", err)
	}

	count, err := s.catalog.ProductCountByCategory(id)
	if err != nil {
		return fmt.Errorf("failed to count category products: %w", err)
	}
	if count > 0 {
		return ErrCategoryNotEmpty
	}

	if err := s.catalog.DeleteCategory(category); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}

// AllProducts returns the unpaginated catalog for the Excel export.
func (s *CatalogService) AllProducts() ([]models.Product, error) {
	products, err := s.catalog.AllProducts()
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}
	return products, nil
}

// ImportProduct upserts one row from the admin Excel import. Rows with an ID
// update the existing product; the rest are created.
func (s *CatalogService) ImportProduct(id uint, input ProductInput) (created bool, err error) {
	if id != 0 {
		if _, err := s.UpdateProduct(id, input); err == nil {
			return false, nil
		} else if !errors.Is(err, ErrProductNotFound) {
			return false, err
		}
	}
	_, err = s.CreateProduct(input)
	return true, err
}
