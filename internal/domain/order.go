package domain

import "time"

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderCompleted OrderStatus = "completed"
	OrderCancelled OrderStatus = "cancelled"
)

// CanTransitionTo encodes the order lifecycle: pending -> confirmed ->
// completed, with cancellation possible until completion. Completed and
// cancelled are terminal.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	switch s {
	case OrderPending:
		return next == OrderConfirmed || next == OrderCancelled
	case OrderConfirmed:
		return next == OrderCompleted || next == OrderCancelled
	default:
		return false
	}
}

// Order is one persisted booking. BookingDate is a calendar date
// "YYYY-MM-DD" and BookingTime a 24-hour "HH:MM:SS"; both are produced by
// the booking normalizer and never stored in any other form.
type Order struct {
	ID              int64       `json:"id"`
	CustomerID      int64       `json:"customer_id" validate:"required"`
	ServiceID       int64       `json:"service_id" validate:"required"`
	ServiceTitle    string      `json:"service_title"`
	CustomerName    string      `json:"customer_name"`
	CustomerEmail   string      `json:"customer_email"`
	CustomerPhone   string      `json:"customer_phone,omitempty"`
	SessionCount    int         `json:"session_count" validate:"gte=1"`
	UnitPrice       float64     `json:"unit_price"`
	DiscountPercent float64     `json:"discount_percent"`
	TotalAmount     float64     `json:"total_amount"`
	BookingDate     string      `json:"booking_date"`
	BookingTime     string      `json:"booking_time"`
	Notes           string      `json:"notes,omitempty" gorm:"type:text"`
	Status          OrderStatus `json:"status"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`

	Service  *Service `json:"service,omitempty" gorm:"foreignKey:ServiceID"`
	Customer *Profile `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
}
