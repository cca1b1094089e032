package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	adminController "github.com/mookistore/vapeshop-api/controllers/admin"
	"github.com/mookistore/vapeshop-api/middleware"
)

// SetupAdminRoutes registers the "/admin/*" dashboard endpoints.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, jwtSecret string) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.RequireAdmin(jwtSecret))
	{
		adminGroup.GET("/stats", adminController.GetDashboardStats(db))
	}
}
