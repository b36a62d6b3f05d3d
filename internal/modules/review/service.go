package review

import (
	"context"
	"errors"
	"strings"

	"skinclinic/internal/domain"
	"skinclinic/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	reviews  *repository.ReviewRepository
	services *repository.ServiceRepository
}

func NewService(reviews *repository.ReviewRepository, services *repository.ServiceRepository) *Service {
	return &Service{reviews: reviews, services: services}
}

func (s *Service) Create(ctx context.Context, customerID int64, req CreateReviewRequest) (*domain.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRating
	}

	if _, err := s.services.GetByID(ctx, req.ServiceID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}

	rv := &domain.Review{
		ServiceID:  req.ServiceID,
		CustomerID: customerID,
		Rating:     req.Rating,
		Comment:    strings.TrimSpace(req.Comment),
	}

	if err := s.reviews.Create(ctx, rv); err != nil {
		return nil, err
	}
	return rv, nil
}

// Featured returns the reviews picked for the landing page.
func (s *Service) Featured(ctx context.Context, limit int) ([]domain.Review, error) {
	return s.reviews.GetFeatured(ctx, limit)
}

func (s *Service) ForService(ctx context.Context, serviceID int64, limit, offset int) ([]domain.Review, error) {
	return s.reviews.GetByService(ctx, serviceID, limit, offset)
}
