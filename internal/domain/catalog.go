package domain

import (
	"encoding/json"
	"time"
)

type Category struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name" validate:"required"`
	Description  string    `json:"description,omitempty"`
	DisplayOrder int       `json:"display_order"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Service is a bookable treatment. SessionOptions keeps whatever shape the
// admin panel stored over time (array, JSON string, object with options);
// pricing.ResolveAllowedPackages is the only reader.
type Service struct {
	ID             int64           `json:"id"`
	CategoryID     int64           `json:"category_id" validate:"required"`
	Name           string          `json:"name" validate:"required"`
	Description    string          `json:"description,omitempty"`
	BasePrice      float64         `json:"base_price" validate:"gte=0"`
	SessionOptions json.RawMessage `json:"session_options,omitempty" gorm:"type:json"`
	ImageURL       string          `json:"image_url,omitempty"`
	IsPopular      bool            `json:"is_popular"`
	IsActive       bool            `json:"is_active"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`

	Category *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
}
