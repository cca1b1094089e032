package models

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"   // Order placed, awaiting confirmation
	OrderStatusConfirmed OrderStatus = "Confirmed" // Confirmed by the shop
	OrderStatusCompleted OrderStatus = "Completed" // Delivered / picked up
	OrderStatusCancelled OrderStatus = "Cancelled" // Cancelled by the shop
)

// Payment methods supported at checkout. Only a label is recorded; there is no
// gateway integration.
const (
	PaymentCashOnDelivery = "Cash on Delivery"
	PaymentPayInStore     = "Pay in Store"
)

type Order struct {
	ID            string      `gorm:"primaryKey" json:"id"`
	CustomerName  string      `gorm:"not null" json:"customer_name"`
	Phone         string      `gorm:"not null" json:"phone"`
	Email         string      `json:"email"`
	Address       string      `gorm:"not null" json:"address"`
	PaymentMethod string      `json:"payment_method"`
	Items         []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Total         float64     `json:"total"`
	Status        OrderStatus `gorm:"type:VARCHAR(20);default:'Pending'" json:"status"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

type OrderItem struct {
	ID          uint    `gorm:"primaryKey" json:"-"`
	OrderID     string  `gorm:"index" json:"-"`
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
}
