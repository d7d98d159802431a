package repository

import (
	"gorm.io/gorm"

	"github.com/storely/storefront-api/models"
)

// ProductFilter narrows a product listing. Filters are ANDed; nil/empty
// fields are ignored.
type ProductFilter struct {
	CategoryID *uint
	Search     string
	MinPrice   *float64
	MaxPrice   *float64
}

// CatalogRepository defines persistence for categories and products.
type CatalogRepository interface {
	Products(filter ProductFilter, offset, limit int) ([]models.Product, int64, error)
	AllProducts() ([]models.Product, error)
	ProductByID(id uint) (*models.Product, error)
	CreateProduct(product *models.Product) error
	SaveProduct(product *models.Product) error
	DeleteProduct(product *models.Product) error

	Categories() ([]models.Category, error)
	CategoryByID(id uint) (*models.Category, error)
	CreateCategory(category *models.Category) error
	SaveCategory(category *models.Category) error
	DeleteCategory(category *models.Category) error
	// ProductCountByCategory counts soft-deleted products too, so removing a
	// category can never strand hidden rows with a dangling category_id.
	ProductCountByCategory(categoryID uint) (int64, error)
}

type GormCatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &GormCatalogRepository{db: db}
}

func (r *GormCatalogRepository) Products(filter ProductFilter, offset, limit int) ([]models.Product, int64, error) {
	query := r.db.Model(&models.Product{})

	if filter.Search != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Search+"%")
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []models.Product
	err := query.Preload("Category").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (r *GormCatalogRepository) AllProducts() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Preload("Category").Order("id").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *GormCatalogRepository) ProductByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.Preload("Category").First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *GormCatalogRepository) CreateProduct(product *models.Product) error {
	return r.db.Create(product).Error
}

func (r *GormCatalogRepository) SaveProduct(product *models.Product) error {
	return r.db.Save(product).Error
}

func (r *GormCatalogRepository) DeleteProduct(product *models.Product) error {
	return r.db.Delete(product).Error
}

func (r *GormCatalogRepository) Categories() ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Order("name").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *GormCatalogRepository) CategoryByID(id uint) (*models.Category, error) {
	var category models.Category
	if err := r.db.First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *GormCatalogRepository) CreateCategory(category *models.Category) error {
	return r.db.Create(category).Error
}

func (r *GormCatalogRepository) SaveCategory(category *models.Category) error {
	return r.db.Save(category).Error
}

func (r *GormCatalogRepository) DeleteCategory(category *models.Category) error {
	return r.db.Delete(category).Error
}

func (r *GormCatalogRepository) ProductCountByCategory(categoryID uint) (int64, error) {
	var count int64
	err := r.db.Unscoped().Model(&models.Product{}).Where("category_id = ?", categoryID).Count(&count).Error
	return count, err
}
