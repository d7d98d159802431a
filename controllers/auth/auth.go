package authControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/storely/storefront-api/middleware"
	"github.com/storely/storefront-api/services"
	"github.com/storely/storefront-api/utils"
)

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Confirm  string `json:"confirm" binding:"required,eqfield=Password"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email" binding:"omitempty,email"`
}

// POST /register
func RegisterHandler(svc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.FailValidation(c, err)
			return
		}

		user, token, err := svc.Register(req.Name, req.Email, req.Password)
		if err != nil {
			if errors.Is(err, services.ErrEmailTaken) {
				utils.Fail(c, http.StatusConflict, err.Error())
				return
			}
			utils.Fail(c, http.StatusInternalServerError, "failed to register")
			return
		}

		utils.Created(c, "registered successfully", gin.H{"user": user, "token": token})
	}
}

// POST /login
func LoginHandler(svc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.FailValidation(c, err)
			return
		}

		user, token, err := svc.Login(req.Email, req.Password)
		if err != nil {
			if errors.Is(err, services.ErrInvalidCredentials) {
				utils.Fail(c, http.StatusUnauthorized, err.Error())
				return
			}
			utils.Fail(c, http.StatusInternalServerError, "failed to log in")
			return
		}

		utils.OK(c, "login successful", gin.H{"user": user, "token": token})
	}
}

// GET /profile
func ProfileHandler(svc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := svc.Profile(middleware.UserID(c))
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				utils.Fail(c, http.StatusNotFound, err.Error())
				return
			}
			utils.Fail(c, http.StatusInternalServerError, "failed to load profile")
			return
		}
		utils.OK(c, "profile", user)
	}
}

// PUT /profile
func UpdateProfileHandler(svc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateProfileRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.FailValidation(c, err)
			return
		}

		user, err := svc.UpdateProfile(middleware.UserID(c), req.Name, req.Email)
		switch {
		case err == nil:
			utils.OK(c, "profile updated", user)
		case errors.Is(err, services.ErrUserNotFound):
			utils.Fail(c, http.StatusNotFound, err.Error())
		case errors.Is(err, services.ErrEmailTaken):
			utils.Fail(c, http.StatusConflict, err.Error())
		default:
			utils.Fail(c, http.StatusInternalServerError, "failed to update profile")
		}
	}
}
