package admin

import (
	"context"
	"errors"

	"skinclinic/internal/domain"

	"gorm.io/gorm"
)

var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrNotACustomer     = errors.New("profile is not a customer")
)

type Service struct {
	profiles   ProfileRepository
	orders     OrderCounter
	services   ServiceCounter
	categories CategoryCounter
}

func NewService(profiles ProfileRepository, orders OrderCounter, services ServiceCounter, categories CategoryCounter) *Service {
	return &Service{
		profiles:   profiles,
		orders:     orders,
		services:   services,
		categories: categories,
	}
}

// GetStatistics aggregates the dashboard counters.
func (s *Service) GetStatistics(ctx context.Context) (*StatisticsResponse, error) {
	customers, err := s.profiles.CountByRole(ctx, domain.RoleCustomer)
	if err != nil {
		return nil, err
	}
	orders, err := s.orders.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	services, err := s.services.CountActive(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := s.categories.CountActive(ctx)
	if err != nil {
		return nil, err
	}

	return &StatisticsResponse{
		TotalCustomers:   customers,
		TotalOrders:      orders,
		ActiveServices:   services,
		ActiveCategories: categories,
	}, nil
}

// DeleteCustomer removes a customer profile. Admin accounts cannot be
// deleted through this path.
func (s *Service) DeleteCustomer(ctx context.Context, id int64) error {
	profile, err := s.profiles.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCustomerNotFound
		}
		return err
	}

	if profile.Role != domain.RoleCustomer {
		return ErrNotACustomer
	}

	if err := s.profiles.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCustomerNotFound
		}
		return err
	}
	return nil
}
