package models

import "time"

type Product struct {
	ID               string    `gorm:"primaryKey" json:"id"`
	Name             string    `gorm:"not null" json:"name"`
	Flavor           string    `json:"flavor"`
	NicotineStrength string    `json:"nicotine_strength"`
	Price            float64   `gorm:"not null" json:"price"`
	Stock            int       `json:"stock"`
	IsAvailable      bool      `gorm:"default:true" json:"is_available"`
	ImageURL         string    `json:"image_url"`
	Description      string    `json:"description"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
