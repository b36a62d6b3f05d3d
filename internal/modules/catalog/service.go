package catalog

import (
	"context"
	"errors"

	"skinclinic/internal/domain"
	"skinclinic/internal/repository"

	"gorm.io/gorm"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrServiceNotFound  = errors.New("service not found")
)

type Service struct {
	categories *repository.CategoryRepository
	services   *repository.ServiceRepository
}

func NewService(categories *repository.CategoryRepository, services *repository.ServiceRepository) *Service {
	return &Service{categories: categories, services: services}
}

/* ---------- CATEGORIES ---------- */

func (s *Service) CreateCategory(ctx context.Context, req CreateCategoryRequest) (*domain.Category, error) {
	cat := &domain.Category{
		Name:         req.Name,
		Description:  req.Description,
		DisplayOrder: req.DisplayOrder,
		IsActive:     true,
	}
	if req.IsActive != nil {
		cat.IsActive = *req.IsActive
	}

	if err := s.categories.Create(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (s *Service) UpdateCategory(ctx context.Context, id int64, req UpdateCategoryRequest) (*domain.Category, error) {
	cat, err := s.categories.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	if req.Name != nil && *req.Name != "" {
		cat.Name = *req.Name
	}
	if req.Description != nil {
		cat.Description = *req.Description
	}
	if req.DisplayOrder != nil {
		cat.DisplayOrder = *req.DisplayOrder
	}
	if req.IsActive != nil {
		cat.IsActive = *req.IsActive
	}

	if err := s.categories.Update(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (s *Service) DeleteCategory(ctx context.Context, id int64) error {
	err := s.categories.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrCategoryNotFound
	}
	return err
}

func (s *Service) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categories.GetActive(ctx)
}

/* ---------- SERVICES ---------- */

func (s *Service) CreateService(ctx context.Context, req CreateServiceRequest) (*domain.Service, error) {
	if _, err := s.categories.GetByID(ctx, req.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	svc := &domain.Service{
		CategoryID:     req.CategoryID,
		Name:           req.Name,
		Description:    req.Description,
		BasePrice:      req.BasePrice,
		SessionOptions: req.SessionOptions,
		ImageURL:       req.ImageURL,
		IsPopular:      req.IsPopular,
		IsActive:       true,
	}
	if req.IsActive != nil {
		svc.IsActive = *req.IsActive
	}

	if err := s.services.Create(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *Service) UpdateService(ctx context.Context, id int64, req UpdateServiceRequest) (*domain.Service, error) {
	svc, err := s.services.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}

	if req.CategoryID != nil && *req.CategoryID > 0 {
		if _, err := s.categories.GetByID(ctx, *req.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrCategoryNotFound
			}
			return nil, err
		}
		svc.CategoryID = *req.CategoryID
	}
	if req.Name != nil && *req.Name != "" {
		svc.Name = *req.Name
	}
	if req.Description != nil {
		svc.Description = *req.Description
	}
	if req.BasePrice != nil && *req.BasePrice >= 0 {
		svc.BasePrice = *req.BasePrice
	}
	if req.SessionOptions != nil {
		svc.SessionOptions = req.SessionOptions
	}
	if req.ImageURL != nil {
		svc.ImageURL = *req.ImageURL
	}
	if req.IsPopular != nil {
		svc.IsPopular = *req.IsPopular
	}
	if req.IsActive != nil {
		svc.IsActive = *req.IsActive
	}

	if err := s.services.Update(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *Service) DeleteService(ctx context.Context, id int64) error {
	err := s.services.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrServiceNotFound
	}
	return err
}

func (s *Service) ListServices(ctx context.Context, categoryID int64, popularOnly bool, limit int) ([]domain.Service, error) {
	return s.services.GetActive(ctx, categoryID, popularOnly, limit)
}

// GetServiceByID also serves the booking module, which only needs the raw
// service row for pricing.
func (s *Service) GetServiceByID(ctx context.Context, id int64) (*domain.Service, error) {
	return s.services.GetByID(ctx, id)
}

// GetServiceDetail returns the service with every allowed package priced out.
func (s *Service) GetServiceDetail(ctx context.Context, id int64) (*ServiceDetailResponse, error) {
	svc, err := s.services.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}

	return &ServiceDetailResponse{
		Service:  svc,
		Packages: buildPackageQuotes(svc),
	}, nil
}
