package models

import "time"

// CartLineItem is one product's aggregated entry in a cart. Name, price and
// image are captured from the product at first add, not re-read from the catalog.
type CartLineItem struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	ImageURL    string  `json:"image_url"`
}

// CartSession persists one browsing session's cart under a single namespaced
// key. Payload holds the serialized line items.
type CartSession struct {
	ID        uint      `gorm:"primaryKey"`
	SessionID string    `gorm:"uniqueIndex;not null"`
	Payload   string    `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
