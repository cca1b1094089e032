package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	productcontroller "github.com/mookistore/vapeshop-api/controllers/product"
	"github.com/mookistore/vapeshop-api/middleware"
)

// SetupProductRoutes registers public catalog reads and admin product CRUD.
func SetupProductRoutes(r *gin.Engine, db *gorm.DB, jwtSecret string) {
	r.GET("/products", productcontroller.GetProducts(db))
	r.GET("/products/:id", productcontroller.GetProductByID(db))
	r.GET("/product", productcontroller.GetFeaturedProduct(db))

	admin := r.Group("/products")
	admin.Use(middleware.RequireAdmin(jwtSecret))
	{
		admin.POST("", productcontroller.CreateProduct(db))
		admin.PUT("/:id", productcontroller.UpdateProduct(db))
		admin.DELETE("/:id", productcontroller.DeleteProduct(db))
	}
}
