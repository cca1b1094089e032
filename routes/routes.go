package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up all route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, log *zap.Logger, jwtSecret string) {
	// Public auth routes (no middleware)
	SetupAuthRoutes(r, db, jwtSecret)

	// Public storefront: catalog, cart, orders, contact
	SetupProductRoutes(r, db, jwtSecret)
	SetupCartRoutes(r, db, log)
	SetupOrderRoutes(r, db, log, jwtSecret)
	SetupContactRoutes(r, db, jwtSecret)

	// Admin dashboard
	SetupAdminRoutes(r, db, jwtSecret)
}
