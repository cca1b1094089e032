package productcontroller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mookistore/vapeshop-api/models"
)

type ProductInput struct {
	Name             string  `json:"name" binding:"required"`
	Flavor           string  `json:"flavor"`
	NicotineStrength string  `json:"nicotine_strength"`
	Price            float64 `json:"price" binding:"required,gte=0"`
	Stock            int     `json:"stock" binding:"gte=0"`
	IsAvailable      *bool   `json:"is_available"`
	ImageURL         string  `json:"image_url"`
	Description      string  `json:"description"`
}

// CreateProduct creates a new catalog product.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		available := true
		if input.IsAvailable != nil {
			available = *input.IsAvailable
		}

		product := models.Product{
			ID:               uuid.NewString(),
			Name:             input.Name,
			Flavor:           input.Flavor,
			NicotineStrength: input.NicotineStrength,
			Price:            input.Price,
			Stock:            input.Stock,
			IsAvailable:      available,
			ImageURL:         input.ImageURL,
			Description:      input.Description,
			CreatedAt:        time.Now().UTC(),
		}

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}
