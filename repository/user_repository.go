package repository

import (
	"gorm.io/gorm"

	"github.com/storely/storefront-api/models"
)

// UserRepository defines persistence for user accounts.
type UserRepository interface {
	ByEmail(email string) (*models.User, error)
	ByID(id uint) (*models.User, error)
	Create(user *models.User) error
	Save(user *models.User) error
}

type GormUserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) ByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormUserRepository) ByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormUserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *GormUserRepository) Save(user *models.User) error {
	return r.db.Save(user).Error
}
