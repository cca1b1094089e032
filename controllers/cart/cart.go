package cartControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mookistore/vapeshop-api/models"
)

const sessionHeader = "X-Session-ID"

type CartItemInput struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

type SetQuantityInput struct {
	Quantity *int `json:"quantity" binding:"required"`
}

type cartView struct {
	Items []models.CartLineItem `json:"items"`
	Total float64               `json:"total"`
	Count int                   `json:"count"`
}

func sessionID(c *gin.Context) (string, bool) {
	id := c.GetHeader(sessionHeader)
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": sessionHeader + " header is required"})
		return "", false
	}
	return id, true
}

func renderCart(c *gin.Context, ledger *Ledger) {
	c.JSON(http.StatusOK, cartView{
		Items: ledger.Items(),
		Total: ledger.Total(),
		Count: ledger.Count(),
	})
}

// GET /cart
func GetCart(db *gorm.DB, log *zap.Logger) gin.HandlerFunc {
	store := NewSessionStore(db, log)
	return func(c *gin.Context) {
		sid, ok := sessionID(c)
		if !ok {
			return
		}
		items, err := store.Load(sid)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
			return
		}
		renderCart(c, NewLedger(items))
	}
}

// POST /cart/items
func AddCartItem(db *gorm.DB, log *zap.Logger) gin.HandlerFunc {
	store := NewSessionStore(db, log)
	return func(c *gin.Context) {
		sid, ok := sessionID(c)
		if !ok {
			return
		}

		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		// Snapshot name and price from the live product at add time.
		var product models.Product
		if err := db.First(&product, "id = ?", input.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			return
		}

		items, err := store.Load(sid)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
			return
		}

		ledger := NewLedger(items)
		ledger.Add(product, input.Quantity)

		if err := store.Save(sid, ledger.Items()); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
			return
		}
		renderCart(c, ledger)
	}
}

// PUT /cart/items/:product_id
func SetCartItemQuantity(db *gorm.DB, log *zap.Logger) gin.HandlerFunc {
	store := NewSessionStore(db, log)
	return func(c *gin.Context) {
		sid, ok := sessionID(c)
		if !ok {
			return
		}
		productID := c.Param("product_id")

		var input SetQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		items, err := store.Load(sid)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
			return
		}

		ledger := NewLedger(items)
		ledger.SetQuantity(productID, *input.Quantity)

		if err := store.Save(sid, ledger.Items()); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
			return
		}
		renderCart(c, ledger)
	}
}

// DELETE /cart/items/:product_id
func RemoveCartItem(db *gorm.DB, log *zap.Logger) gin.HandlerFunc {
	store := NewSessionStore(db, log)
	return func(c *gin.Context) {
		sid, ok := sessionID(c)
		if !ok {
			return
		}
		productID := c.Param("product_id")

		items, err := store.Load(sid)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
			return
		}

		ledger := NewLedger(items)
		ledger.Remove(productID)

		if err := store.Save(sid, ledger.Items()); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
			return
		}
		renderCart(c, ledger)
	}
}

// DELETE /cart
func ClearCart(db *gorm.DB, log *zap.Logger) gin.HandlerFunc {
	store := NewSessionStore(db, log)
	return func(c *gin.Context) {
		sid, ok := sessionID(c)
		if !ok {
			return
		}
		if err := store.Clear(sid); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
