package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mookistore/vapeshop-api/auth"
	"github.com/mookistore/vapeshop-api/middleware"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB, jwtSecret string) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", auth.AdminLogin(db, jwtSecret))
		authGroup.GET("/verify", middleware.RequireAdmin(jwtSecret), auth.VerifyAdmin())
	}
}
