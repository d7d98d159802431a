package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/storely/storefront-api/auth"
	"github.com/storely/storefront-api/models"
)

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hashed)
}

func TestRegister_HashesPasswordAndIssuesToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	users := new(MockUserRepository)
	users.On("ByEmail", "jo@example.com").Return(nil, gorm.ErrRecordNotFound)
	users.On("Create", mock.AnythingOfType("*models.User")).Run(func(args mock.Arguments) {
		args.Get(0).(*models.User).ID = 42
	}).Return(nil)

	svc := NewAuthService(users)
	user, token, err := svc.Register("Jo", "jo@example.com", "hunter2hunter2")

	assert.NoError(t, err)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.NotEqual(t, "hunter2hunter2", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("hunter2hunter2")))

	claims, err := auth.ParseToken(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, models.RoleUser, claims.Role)
}

func TestRegister_EmailTaken(t *testing.T) {
	users := new(MockUserRepository)
	users.On("ByEmail", "jo@example.com").Return(&models.User{ID: 1, Email: "jo@example.com"}, nil)

	svc := NewAuthService(users)
	_, _, err := svc.Register("Jo", "jo@example.com", "hunter2hunter2")

	assert.ErrorIs(t, err, ErrEmailTaken)
	users.AssertNotCalled(t, "Create", mock.Anything)
}

func TestRegister_DuplicateKeyRace(t *testing.T) {
	// two concurrent registrations can both pass the precheck; the unique
	// index catches the loser
	users := new(MockUserRepository)
	users.On("ByEmail", "jo@example.com").Return(nil, gorm.ErrRecordNotFound)
	users.On("Create", mock.Anything).Return(gorm.ErrDuplicatedKey)

	svc := NewAuthService(users)
	_, _, err := svc.Register("Jo", "jo@example.com", "hunter2hunter2")

	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin_Success(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	users := new(MockUserRepository)
	users.On("ByEmail", "jo@example.com").Return(&models.User{
		ID:       42,
		Email:    "jo@example.com",
		Password: hashPassword(t, "hunter2hunter2"),
		Role:     models.RoleAdmin,
	}, nil)

	svc := NewAuthService(users)
	user, token, err := svc.Login("jo@example.com", "hunter2hunter2")

	assert.NoError(t, err)
	assert.True(t, user.IsAdmin())

	claims, err := auth.ParseToken(token)
	assert.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, claims.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	users := new(MockUserRepository)
	users.On("ByEmail", "jo@example.com").Return(&models.User{
		ID:       42,
		Email:    "jo@example.com",
		Password: hashPassword(t, "hunter2hunter2"),
	}, nil)

	svc := NewAuthService(users)
	_, _, err := svc.Login("jo@example.com", "wrong")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	// indistinguishable from a wrong password
	users := new(MockUserRepository)
	users.On("ByEmail", "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)

	svc := NewAuthService(users)
	_, _, err := svc.Login("nobody@example.com", "whatever")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUpdateProfile_EmailChangeChecksUniqueness(t *testing.T) {
	users := new(MockUserRepository)
	users.On("ByID", uint(42)).Return(&models.User{ID: 42, Name: "Jo", Email: "jo@example.com"}, nil)
	users.On("ByEmail", "taken@example.com").Return(&models.User{ID: 9}, nil)

	svc := NewAuthService(users)
	email := "taken@example.com"
	_, err := svc.UpdateProfile(42, nil, &email)

	assert.ErrorIs(t, err, ErrEmailTaken)
	users.AssertNotCalled(t, "Save", mock.Anything)
}

func TestUpdateProfile_SameEmailSkipsCheck(t *testing.T) {
	users := new(MockUserRepository)
	users.On("ByID", uint(42)).Return(&models.User{ID: 42, Name: "Jo", Email: "jo@example.com"}, nil)
	users.On("Save", mock.MatchedBy(func(u *models.User) bool {
		return u.Name == "Joan" && u.Email == "jo@example.com"
	})).Return(nil)

	svc := NewAuthService(users)
	name := "Joan"
	email := "jo@example.com"
	user, err := svc.UpdateProfile(42, &name, &email)

	assert.NoError(t, err)
	assert.Equal(t, "Joan", user.Name)
	users.AssertNotCalled(t, "ByEmail", mock.Anything)
}
