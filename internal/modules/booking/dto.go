package booking

// CreateOrderRequest is the raw booking input posted by the booking panel.
// Only service, date and time are mandatory; everything else has a resolution
// rule in Normalize. Price overrides exist for the admin panel, which may
// book at negotiated rates.
type CreateOrderRequest struct {
	ServiceID       int64    `json:"service_id" binding:"required"`
	ServiceTitle    string   `json:"service_title"`
	Package         string   `json:"package"`
	SessionCount    *int     `json:"session_count"`
	Date            string   `json:"date" binding:"required"`
	Time            string   `json:"time" binding:"required"`
	UnitPrice       *float64 `json:"unit_price"`
	DiscountPercent *float64 `json:"discount_percent"`
	TotalAmount     *float64 `json:"total_amount"`
	CustomerPhone   string   `json:"customer_phone"`
	Notes           string   `json:"notes"`
}

// RescheduleRequest moves an existing order to a new slot. Package is
// optional; when present the session count and total are recomputed.
type RescheduleRequest struct {
	Date    string `json:"booking_date" binding:"required"`
	Time    string `json:"booking_time" binding:"required"`
	Package string `json:"package"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
