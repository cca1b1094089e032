package adminController

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/mookistore/vapeshop-api/models"
)

// Dashboard aggregates are pure folds over the current collections. They are
// recomputed on every request, never cached, so they cannot drift from the
// orders and messages they summarize.

// TotalRevenue sums order totals, excluding cancelled orders.
func TotalRevenue(orders []models.Order) float64 {
	sum := decimal.Zero
	for _, o := range orders {
		if o.Status == models.OrderStatusCancelled {
			continue
		}
		sum = sum.Add(decimal.NewFromFloat(o.Total))
	}
	f, _ := sum.Float64()
	return f
}

// PendingCount counts orders still awaiting confirmation.
func PendingCount(orders []models.Order) int {
	n := 0
	for _, o := range orders {
		if o.Status == models.OrderStatusPending {
			n++
		}
	}
	return n
}

// UnreadCount counts contact messages not yet marked read.
func UnreadCount(messages []models.ContactMessage) int {
	n := 0
	for _, m := range messages {
		if !m.IsRead {
			n++
		}
	}
	return n
}

type dashboardStats struct {
	TotalRevenue   float64 `json:"total_revenue"`
	TotalOrders    int     `json:"total_orders"`
	PendingOrders  int     `json:"pending_orders"`
	UnreadMessages int     `json:"unread_messages"`
}

// GET /admin/stats
func GetDashboardStats(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		var messages []models.ContactMessage
		if err := db.Find(&messages).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch messages"})
			return
		}

		c.JSON(http.StatusOK, dashboardStats{
			TotalRevenue:   TotalRevenue(orders),
			TotalOrders:    len(orders),
			PendingOrders:  PendingCount(orders),
			UnreadMessages: UnreadCount(messages),
		})
	}
}
