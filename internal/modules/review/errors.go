package review

import "errors"

var (
	ErrServiceNotFound = errors.New("service not found")
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
)
