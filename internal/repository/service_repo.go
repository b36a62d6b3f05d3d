package repository

import (
	"context"
	"encoding/json"
	"time"

	"skinclinic/internal/domain"

	"gorm.io/gorm"
)

type ServiceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

type serviceModel struct {
	ID             int64           `gorm:"column:id;primaryKey"`
	CategoryID     int64           `gorm:"column:category_id;index"`
	Name           string          `gorm:"column:name"`
	Description    *string         `gorm:"column:description"`
	BasePrice      float64         `gorm:"column:base_price"`
	SessionOptions json.RawMessage `gorm:"column:session_options;type:json"`
	ImageURL       *string         `gorm:"column:image_url"`
	IsPopular      bool            `gorm:"column:is_popular"`
	IsActive       bool            `gorm:"column:is_active"`
	CreatedAt      time.Time       `gorm:"column:created_at"`
	UpdatedAt      time.Time       `gorm:"column:updated_at"`
}

func (serviceModel) TableName() string { return "services" }

func toDomainService(m serviceModel) *domain.Service {
	var desc, img string
	if m.Description != nil {
		desc = *m.Description
	}
	if m.ImageURL != nil {
		img = *m.ImageURL
	}

	return &domain.Service{
		ID:             m.ID,
		CategoryID:     m.CategoryID,
		Name:           m.Name,
		Description:    desc,
		BasePrice:      m.BasePrice,
		SessionOptions: m.SessionOptions,
		ImageURL:       img,
		IsPopular:      m.IsPopular,
		IsActive:       m.IsActive,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func toServiceModel(s *domain.Service) serviceModel {
	var desc, img *string
	if s.Description != "" {
		v := s.Description
		desc = &v
	}
	if s.ImageURL != "" {
		v := s.ImageURL
		img = &v
	}

	return serviceModel{
		ID:             s.ID,
		CategoryID:     s.CategoryID,
		Name:           s.Name,
		Description:    desc,
		BasePrice:      s.BasePrice,
		SessionOptions: s.SessionOptions,
		ImageURL:       img,
		IsPopular:      s.IsPopular,
		IsActive:       s.IsActive,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

func (r *ServiceRepository) Create(ctx context.Context, s *domain.Service) error {
	m := toServiceModel(s)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*s = *toDomainService(m)
	return nil
}

func (r *ServiceRepository) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	var m serviceModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainService(m), nil
}

// GetActive lists active services, newest first. categoryID and popularOnly
// narrow the listing the way the dashboard filters do.
func (r *ServiceRepository) GetActive(ctx context.Context, categoryID int64, popularOnly bool, limit int) ([]domain.Service, error) {
	q := r.db.WithContext(ctx).Where("is_active = ?", true)
	if categoryID > 0 {
		q = q.Where("category_id = ?", categoryID)
	}
	if popularOnly {
		q = q.Where("is_popular = ?", true)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}

	var rows []serviceModel
	tx := q.Order("created_at DESC").Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Service, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainService(m))
	}
	return out, nil
}

func (r *ServiceRepository) Update(ctx context.Context, s *domain.Service) error {
	m := toServiceModel(s)
	tx := r.db.WithContext(ctx).Save(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*s = *toDomainService(m)
	return nil
}

func (r *ServiceRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&serviceModel{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ServiceRepository) CountActive(ctx context.Context) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&serviceModel{}).Where("is_active = ?", true).Count(&cnt)
	return cnt, tx.Error
}
