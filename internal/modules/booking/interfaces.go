package booking

import (
	"context"

	"skinclinic/internal/domain"
)

// OrderRepository persists normalized orders.
type OrderRepository interface {
	Create(ctx context.Context, o *domain.Order) error
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	GetAll(ctx context.Context, limit, offset int) ([]domain.Order, error)
	GetByCustomerID(ctx context.Context, customerID int64) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) error
	UpdateSchedule(ctx context.Context, o *domain.Order) error
}

// ServiceCatalog resolves the service a booking refers to.
type ServiceCatalog interface {
	GetServiceByID(ctx context.Context, id int64) (*domain.Service, error)
}

// ProfileDirectory resolves the authenticated customer's profile.
type ProfileDirectory interface {
	GetByID(ctx context.Context, id int64) (*domain.Profile, error)
}
