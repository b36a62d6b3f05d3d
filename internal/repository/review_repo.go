package repository

import (
	"context"
	"time"

	"skinclinic/internal/domain"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

type reviewModel struct {
	ID         int64     `gorm:"column:id;primaryKey"`
	ServiceID  int64     `gorm:"column:service_id;index"`
	CustomerID int64     `gorm:"column:customer_id"`
	Rating     int       `gorm:"column:rating"`
	Comment    *string   `gorm:"column:comment"`
	IsFeatured bool      `gorm:"column:is_featured"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (reviewModel) TableName() string { return "reviews" }

func toDomainReview(m reviewModel) *domain.Review {
	var comment string
	if m.Comment != nil {
		comment = *m.Comment
	}

	return &domain.Review{
		ID:         m.ID,
		ServiceID:  m.ServiceID,
		CustomerID: m.CustomerID,
		Rating:     m.Rating,
		Comment:    comment,
		IsFeatured: m.IsFeatured,
		CreatedAt:  m.CreatedAt,
	}
}

func toReviewModel(rv *domain.Review) reviewModel {
	var comment *string
	if rv.Comment != "" {
		v := rv.Comment
		comment = &v
	}

	return reviewModel{
		ID:         rv.ID,
		ServiceID:  rv.ServiceID,
		CustomerID: rv.CustomerID,
		Rating:     rv.Rating,
		Comment:    comment,
		IsFeatured: rv.IsFeatured,
		CreatedAt:  rv.CreatedAt,
	}
}

func (r *ReviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	m := toReviewModel(rv)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*rv = *toDomainReview(m)
	return nil
}

func (r *ReviewRepository) GetFeatured(ctx context.Context, limit int) ([]domain.Review, error) {
	if limit <= 0 {
		limit = 10
	}

	var rows []reviewModel
	tx := r.db.WithContext(ctx).
		Where("is_featured = ?", true).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Review, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainReview(m))
	}
	return out, nil
}

func (r *ReviewRepository) GetByService(ctx context.Context, serviceID int64, limit, offset int) ([]domain.Review, error) {
	if limit <= 0 {
		limit = 10
	}

	var rows []reviewModel
	tx := r.db.WithContext(ctx).
		Where("service_id = ?", serviceID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Review, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainReview(m))
	}
	return out, nil
}
