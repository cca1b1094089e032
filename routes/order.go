package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	orderControllers "github.com/mookistore/vapeshop-api/controllers/order"
	"github.com/mookistore/vapeshop-api/middleware"
)

func SetupOrderRoutes(r *gin.Engine, db *gorm.DB, log *zap.Logger, jwtSecret string) {
	notifier := orderControllers.NewLogNotifier(log)

	orders := r.Group("/orders")
	{
		// Place a new order; always starts Pending
		orders.POST("", orderControllers.PlaceOrderHandler(db, notifier))

		// Order confirmation lookup
		orders.GET("/:orderID", orderControllers.GetOrderHandler(db))

		// Admin: list all orders and drive the status workflow
		orders.GET("", middleware.RequireAdmin(jwtSecret), orderControllers.GetAllOrdersHandler(db))
		orders.PUT("/:orderID/status", middleware.RequireAdmin(jwtSecret), orderControllers.UpdateOrderStatusHandler(db, log))
	}
}
