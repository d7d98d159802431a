package routes

import (
	"github.com/gin-gonic/gin"

	authControllers "github.com/storely/storefront-api/controllers/auth"
	"github.com/storely/storefront-api/services"
)

// SetupAuthRoutes registers the public registration/login endpoints.
func SetupAuthRoutes(r *gin.Engine, authSvc *services.AuthService) {
	r.POST("/register", authControllers.RegisterHandler(authSvc))
	r.POST("/login", authControllers.LoginHandler(authSvc))
}
