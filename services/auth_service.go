package services

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/storely/storefront-api/auth"
	"github.com/storely/storefront-api/models"
	"github.com/storely/storefront-api/repository"
)

// AuthService handles registration, login and profile updates.
type AuthService struct {
	users repository.UserRepository
}

func NewAuthService(users repository.UserRepository) *AuthService {
	return &AuthService{users: users}
}

// Register creates a user account with the "user" role and returns it with a
// signed token.
func (s *AuthService) Register(name, email, password string) (*models.User, string, error) {
	if _, err := s.users.ByEmail(email); err == nil {
		return nil, "", ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", fmt.Errorf("failed to check email: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: string(hashed),
		Role:     models.RoleUser,
	}
	if err := s.users.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, "", ErrEmailTaken
		}
		return nil, "", fmt.Errorf("failed to create user: %w", err)
	}

	token, err := auth.IssueToken(user.ID, user.Role)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}
	return user, token, nil
}

// Login verifies credentials and returns the user with a signed token.
func (s *AuthService) Login(email, password string) (*models.User, string, error) {
	user, err := s.users.ByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("failed to look up user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := auth.IssueToken(user.ID, user.Role)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}
	return user, token, nil
}

// Profile returns the account for the authenticated user.
func (s *AuthService) Profile(userID uint) (*models.User, error) {
	user, err := s.users.ByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return user, nil
}

// UpdateProfile applies the provided fields to the user's account.
func (s *AuthService) UpdateProfile(userID uint, name, email *string) (*models.User, error) {
	user, err := s.Profile(userID)
	if err != nil {
		return nil, err
	}

	if name != nil {
		user.Name = *name
	}
	if email != nil && *email != user.Email {
		if _, err := s.users.ByEmail(*email); err == nil {
			return nil, ErrEmailTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check email: %w", err)
		}
		user.Email = *email
	}

	if err := s.users.Save(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}
