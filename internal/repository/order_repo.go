package repository

import (
	"context"
	"time"

	"skinclinic/internal/domain"

	"gorm.io/gorm"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// idx_no_double_booking keeps one order per (service, date, time) slot; the
// booking service maps its violation to a conflict error.
type orderModel struct {
	ID              int64     `gorm:"column:id;primaryKey"`
	CustomerID      int64     `gorm:"column:customer_id;index"`
	ServiceID       int64     `gorm:"column:service_id;uniqueIndex:idx_no_double_booking"`
	ServiceTitle    string    `gorm:"column:service_title"`
	CustomerName    string    `gorm:"column:customer_name"`
	CustomerEmail   string    `gorm:"column:customer_email"`
	CustomerPhone   *string   `gorm:"column:customer_phone"`
	SessionCount    int       `gorm:"column:session_count"`
	UnitPrice       float64   `gorm:"column:unit_price"`
	DiscountPercent float64   `gorm:"column:discount_percent"`
	TotalAmount     float64   `gorm:"column:total_amount"`
	BookingDate     string    `gorm:"column:booking_date;uniqueIndex:idx_no_double_booking"`
	BookingTime     string    `gorm:"column:booking_time;uniqueIndex:idx_no_double_booking"`
	Notes           *string   `gorm:"column:notes"`
	Status          string    `gorm:"column:status"`
	CreatedAt       time.Time `gorm:"column:created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at"`
}

func (orderModel) TableName() string { return "orders" }

func toDomainOrder(m orderModel) *domain.Order {
	var phone, notes string
	if m.CustomerPhone != nil {
		phone = *m.CustomerPhone
	}
	if m.Notes != nil {
		notes = *m.Notes
	}

	return &domain.Order{
		ID:              m.ID,
		CustomerID:      m.CustomerID,
		ServiceID:       m.ServiceID,
		ServiceTitle:    m.ServiceTitle,
		CustomerName:    m.CustomerName,
		CustomerEmail:   m.CustomerEmail,
		CustomerPhone:   phone,
		SessionCount:    m.SessionCount,
		UnitPrice:       m.UnitPrice,
		DiscountPercent: m.DiscountPercent,
		TotalAmount:     m.TotalAmount,
		BookingDate:     m.BookingDate,
		BookingTime:     m.BookingTime,
		Notes:           notes,
		Status:          domain.OrderStatus(m.Status),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func toOrderModel(o *domain.Order) orderModel {
	var phone, notes *string
	if o.CustomerPhone != "" {
		v := o.CustomerPhone
		phone = &v
	}
	if o.Notes != "" {
		v := o.Notes
		notes = &v
	}

	return orderModel{
		ID:              o.ID,
		CustomerID:      o.CustomerID,
		ServiceID:       o.ServiceID,
		ServiceTitle:    o.ServiceTitle,
		CustomerName:    o.CustomerName,
		CustomerEmail:   o.CustomerEmail,
		CustomerPhone:   phone,
		SessionCount:    o.SessionCount,
		UnitPrice:       o.UnitPrice,
		DiscountPercent: o.DiscountPercent,
		TotalAmount:     o.TotalAmount,
		BookingDate:     o.BookingDate,
		BookingTime:     o.BookingTime,
		Notes:           notes,
		Status:          string(o.Status),
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

func (r *OrderRepository) Create(ctx context.Context, o *domain.Order) error {
	m := toOrderModel(o)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*o = *toDomainOrder(m)
	return nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	var m orderModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainOrder(m), nil
}

func (r *OrderRepository) GetAll(ctx context.Context, limit, offset int) ([]domain.Order, error) {
	var rows []orderModel
	tx := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Order, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainOrder(m))
	}
	return out, nil
}

func (r *OrderRepository) GetByCustomerID(ctx context.Context, customerID int64) ([]domain.Order, error) {
	var rows []orderModel
	tx := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Order, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainOrder(m))
	}
	return out, nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) error {
	tx := r.db.WithContext(ctx).
		Model(&orderModel{}).
		Where("id = ?", id).
		Update("status", string(status))
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *OrderRepository) UpdateSchedule(ctx context.Context, o *domain.Order) error {
	tx := r.db.WithContext(ctx).
		Model(&orderModel{}).
		Where("id = ?", o.ID).
		Updates(map[string]any{
			"booking_date":  o.BookingDate,
			"booking_time":  o.BookingTime,
			"session_count": o.SessionCount,
			"total_amount":  o.TotalAmount,
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *OrderRepository) CountAll(ctx context.Context) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&orderModel{}).Count(&cnt)
	return cnt, tx.Error
}
