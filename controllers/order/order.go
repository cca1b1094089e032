package orderControllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mookistore/vapeshop-api/models"
)

var (
	ErrUnavailable       = errors.New("product not available")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrInvalidStatus     = errors.New("invalid order status")
)

// -------- Request Structs --------

type PlaceOrderInput struct {
	CustomerName  string                `json:"customer_name"`
	Phone         string                `json:"phone"`
	Email         string                `json:"email"`
	Address       string                `json:"address"`
	PaymentMethod string                `json:"payment_method"`
	Items         []models.CartLineItem `json:"items"`
	Total         float64               `json:"total"`
}

type UpdateOrderStatusInput struct {
	Status string `json:"status" binding:"required"`
}

// -------- Helpers --------

// mapOrderStatus maps a raw string onto the status enum.
func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch models.OrderStatus(status) {
	case models.OrderStatusPending:
		return models.OrderStatusPending, nil
	case models.OrderStatusConfirmed:
		return models.OrderStatusConfirmed, nil
	case models.OrderStatusCompleted:
		return models.OrderStatusCompleted, nil
	case models.OrderStatusCancelled:
		return models.OrderStatusCancelled, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
}

// -------- Core Logic --------

// CreateOrder persists a fully-formed order from a validated request, or
// nothing at all. Inside one transaction each product row is locked, checked
// for availability and stock, and decremented. Status is always Pending at
// creation; a request cannot choose it.
//
// Stock is only authoritative here, not at add-to-cart. There is no
// distributed reservation across instances, so overselling under heavily
// concurrent checkout remains possible.
func CreateOrder(db *gorm.DB, req OrderRequest) (*models.Order, error) {
	order := &models.Order{
		ID:            uuid.NewString(),
		CustomerName:  req.CustomerName,
		Phone:         req.Phone,
		Email:         req.Email,
		Address:       req.Address,
		PaymentMethod: req.PaymentMethod,
		Items:         req.Items,
		Total:         req.Total,
		Status:        models.OrderStatusPending,
		CreatedAt:     time.Now().UTC(),
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		for _, item := range req.Items {
			var product models.Product
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&product, "id = ?", item.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: %s", ErrUnavailable, item.ProductName)
				}
				return err
			}
			if !product.IsAvailable {
				return fmt.Errorf("%w: %s", ErrUnavailable, item.ProductName)
			}
			if product.Stock < item.Quantity {
				return fmt.Errorf("%w for %s", ErrInsufficientStock, item.ProductName)
			}

			product.Stock -= item.Quantity
			if err := tx.Save(&product).Error; err != nil {
				return err
			}
		}

		return tx.Create(order).Error
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// -------- Handlers --------

// POST /orders
func PlaceOrderHandler(db *gorm.DB, notifier OrderNotifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input PlaceOrderInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		req, err := BuildOrderRequest(input.Items, CustomerInput{
			CustomerName:  input.CustomerName,
			Phone:         input.Phone,
			Email:         input.Email,
			Address:       input.Address,
			PaymentMethod: input.PaymentMethod,
		})
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		order, err := CreateOrder(db, req)
		if err != nil {
			if errors.Is(err, ErrUnavailable) || errors.Is(err, ErrInsufficientStock) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
			return
		}

		// Confirmation is best-effort; a notify failure never fails the order.
		if order.Email != "" {
			notifier.OrderPlaced(order)
		}

		c.JSON(http.StatusCreated, order)
	}
}

// GET /orders/:orderID
func GetOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")

		var order models.Order
		if err := db.Preload("Items").First(&order, "id = ?", orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// GET /orders (admin)
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// PUT /orders/:orderID/status (admin)
//
// Any status may follow any other; moving an order backward (for example
// Completed to Pending) is permitted.
func UpdateOrderStatusHandler(db *gorm.DB, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")

		var input UpdateOrderStatusInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		newStatus, err := mapOrderStatus(input.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		result := db.Model(&models.Order{}).Where("id = ?", orderID).
			Update("status", newStatus)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}

		log.Info("order status updated",
			zap.String("order_id", orderID),
			zap.String("status", string(newStatus)))

		var order models.Order
		if err := db.Preload("Items").First(&order, "id = ?", orderID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}
