package booking

import (
	"context"
	"errors"
	"strings"

	"skinclinic/internal/domain"
	"skinclinic/internal/modules/pricing"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Service struct {
	orders   OrderRepository
	services ServiceCatalog
	profiles ProfileDirectory
}

func NewService(orders OrderRepository, services ServiceCatalog, profiles ProfileDirectory) *Service {
	return &Service{orders: orders, services: services, profiles: profiles}
}

// Normalize converts raw booking input into a priced, validated order. It is
// pure: no repository access, no side effects. Date or time failures abort
// the whole call; no partial order escapes.
func Normalize(req CreateOrderRequest, customer *domain.Profile, svc *domain.Service) (*domain.Order, error) {
	sessionCount := pricing.SessionCountFromLabel(req.Package)
	if req.SessionCount != nil && *req.SessionCount >= 1 {
		sessionCount = *req.SessionCount
	}

	unitPrice := svc.BasePrice
	if req.UnitPrice != nil {
		unitPrice = *req.UnitPrice
	}

	discountPercent := 0.0
	if req.DiscountPercent != nil {
		discountPercent = *req.DiscountPercent
	}

	totalAmount := unitPrice * float64(sessionCount) * (1 - discountPercent/100)
	if req.TotalAmount != nil {
		totalAmount = *req.TotalAmount
	}

	bookingDate, err := ParseBookingDate(req.Date)
	if err != nil {
		return nil, err
	}
	bookingTime, err := ParseBookingTime(req.Time)
	if err != nil {
		return nil, err
	}

	serviceTitle := req.ServiceTitle
	if serviceTitle == "" {
		serviceTitle = svc.Name
	}

	return &domain.Order{
		CustomerID:      customer.ID,
		ServiceID:       svc.ID,
		ServiceTitle:    serviceTitle,
		CustomerName:    customer.FullName(),
		CustomerEmail:   customer.Email,
		CustomerPhone:   firstNonEmpty(req.CustomerPhone, customer.Phone),
		SessionCount:    sessionCount,
		UnitPrice:       unitPrice,
		DiscountPercent: discountPercent,
		TotalAmount:     totalAmount,
		BookingDate:     bookingDate,
		BookingTime:     bookingTime,
		Notes:           req.Notes,
		Status:          domain.OrderPending,
	}, nil
}

// CreateOrder resolves the service and customer, normalizes the raw input and
// persists the result. The unique slot index is the only double-booking
// guard; a violation surfaces as ErrSlotTaken.
func (s *Service) CreateOrder(ctx context.Context, customerID int64, req CreateOrderRequest) (*domain.Order, error) {
	svc, err := s.services.GetServiceByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}

	customer, err := s.profiles.GetByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}

	order, err := Normalize(req, customer, svc)
	if err != nil {
		return nil, err
	}

	if err := s.orders.Create(ctx, order); err != nil {
		if isSlotConflict(err) {
			return nil, ErrSlotTaken
		}
		return nil, err
	}
	return order, nil
}

func (s *Service) GetOrder(ctx context.Context, id int64) (*domain.Order, error) {
	o, err := s.orders.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return o, nil
}

func (s *Service) ListOrders(ctx context.Context, limit, offset int) ([]domain.Order, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.orders.GetAll(ctx, limit, offset)
}

func (s *Service) OrdersForCustomer(ctx context.Context, customerID int64) ([]domain.Order, error) {
	return s.orders.GetByCustomerID(ctx, customerID)
}

// UpdateStatus applies one lifecycle transition. Completed and cancelled
// orders are immutable.
func (s *Service) UpdateStatus(ctx context.Context, id int64, next domain.OrderStatus) (*domain.Order, error) {
	switch next {
	case domain.OrderPending, domain.OrderConfirmed, domain.OrderCompleted, domain.OrderCancelled:
	default:
		return nil, ErrInvalidStatusTransition
	}

	order, err := s.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	if !order.Status.CanTransitionTo(next) {
		return nil, ErrInvalidStatusTransition
	}

	if err := s.orders.UpdateStatus(ctx, id, next); err != nil {
		return nil, err
	}
	return s.GetOrder(ctx, id)
}

// Reschedule moves an order to a new slot, re-running the same date/time
// normalization as booking creation. A new package label recomputes the
// session count and total off the stored unit price. Status is preserved.
func (s *Service) Reschedule(ctx context.Context, id int64, req RescheduleRequest) (*domain.Order, error) {
	order, err := s.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	if order.Status == domain.OrderCompleted || order.Status == domain.OrderCancelled {
		return nil, ErrInvalidStatusTransition
	}

	bookingDate, err := ParseBookingDate(req.Date)
	if err != nil {
		return nil, err
	}
	bookingTime, err := ParseBookingTime(req.Time)
	if err != nil {
		return nil, err
	}

	order.BookingDate = bookingDate
	order.BookingTime = bookingTime

	if req.Package != "" {
		order.SessionCount = pricing.SessionCountFromLabel(req.Package)
		order.TotalAmount = order.UnitPrice * float64(order.SessionCount) * (1 - order.DiscountPercent/100)
	}

	if err := s.orders.UpdateSchedule(ctx, order); err != nil {
		if isSlotConflict(err) {
			return nil, ErrSlotTaken
		}
		return nil, err
	}
	return order, nil
}

// isSlotConflict recognizes the idx_no_double_booking unique violation from
// postgres (pgconn) and from the sqlite dev database.
func isSlotConflict(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" && pgErr.ConstraintName == "idx_no_double_booking"
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") || strings.Contains(msg, "23505")
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
