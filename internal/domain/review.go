package domain

import "time"

type Review struct {
	ID         int64     `json:"id"`
	ServiceID  int64     `json:"service_id" validate:"required"`
	CustomerID int64     `json:"customer_id"`
	Rating     int       `json:"rating" validate:"required,gte=1,lte=5"`
	Comment    string    `json:"comment,omitempty" gorm:"type:text"`
	IsFeatured bool      `json:"is_featured"`
	CreatedAt  time.Time `json:"created_at"`

	Service  *Service `json:"service,omitempty" gorm:"foreignKey:ServiceID"`
	Customer *Profile `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
}
