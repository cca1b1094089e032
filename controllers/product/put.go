package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mookistore/vapeshop-api/models"
)

// ProductUpdateInput carries optional fields; only non-nil ones are applied.
type ProductUpdateInput struct {
	Name             *string  `json:"name"`
	Flavor           *string  `json:"flavor"`
	NicotineStrength *string  `json:"nicotine_strength"`
	Price            *float64 `json:"price"`
	Stock            *int     `json:"stock"`
	IsAvailable      *bool    `json:"is_available"`
	ImageURL         *string  `json:"image_url"`
	Description      *string  `json:"description"`
}

// UpdateProduct partially updates an existing product by ID.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var product models.Product
		if err := db.First(&product, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			}
			return
		}

		var input ProductUpdateInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.Price != nil && *input.Price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "price must be non-negative"})
			return
		}
		if input.Stock != nil && *input.Stock < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "stock must be non-negative"})
			return
		}

		if input.Name != nil {
			product.Name = *input.Name
		}
		if input.Flavor != nil {
			product.Flavor = *input.Flavor
		}
		if input.NicotineStrength != nil {
			product.NicotineStrength = *input.NicotineStrength
		}
		if input.Price != nil {
			product.Price = *input.Price
		}
		if input.Stock != nil {
			product.Stock = *input.Stock
		}
		if input.IsAvailable != nil {
			product.IsAvailable = *input.IsAvailable
		}
		if input.ImageURL != nil {
			product.ImageURL = *input.ImageURL
		}
		if input.Description != nil {
			product.Description = *input.Description
		}

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
