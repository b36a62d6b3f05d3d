package booking

import "errors"

var (
	ErrInvalidBookingDate      = errors.New("invalid booking date")
	ErrInvalidBookingTime      = errors.New("invalid booking time")
	ErrServiceNotFound         = errors.New("service not found")
	ErrCustomerNotFound        = errors.New("customer not found")
	ErrOrderNotFound           = errors.New("order not found")
	ErrSlotTaken               = errors.New("booking slot already taken")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrForbidden               = errors.New("forbidden")
)
