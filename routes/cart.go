package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	cartControllers "github.com/mookistore/vapeshop-api/controllers/cart"
)

// SetupCartRoutes registers the session-scoped cart endpoints. The browsing
// session is identified by the X-Session-ID header.
func SetupCartRoutes(r *gin.Engine, db *gorm.DB, log *zap.Logger) {
	cart := r.Group("/cart")
	{
		cart.GET("", cartControllers.GetCart(db, log))
		cart.POST("/items", cartControllers.AddCartItem(db, log))
		cart.PUT("/items/:product_id", cartControllers.SetCartItemQuantity(db, log))
		cart.DELETE("/items/:product_id", cartControllers.RemoveCartItem(db, log))
		cart.DELETE("", cartControllers.ClearCart(db, log))
	}
}
