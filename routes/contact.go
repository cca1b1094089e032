package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	contactControllers "github.com/mookistore/vapeshop-api/controllers/contact"
	"github.com/mookistore/vapeshop-api/middleware"
)

func SetupContactRoutes(r *gin.Engine, db *gorm.DB, jwtSecret string) {
	contact := r.Group("/contact")
	{
		contact.POST("", contactControllers.CreateMessage(db))
		contact.GET("", middleware.RequireAdmin(jwtSecret), contactControllers.GetMessages(db))
		contact.PUT("/:messageID/read", middleware.RequireAdmin(jwtSecret), contactControllers.MarkMessageRead(db))
	}
}
