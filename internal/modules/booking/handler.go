package booking

import (
	"net/http"
	"strconv"

	"skinclinic/internal/domain"
	"skinclinic/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes wires the customer-facing order routes on the authenticated
// group and the management routes on the admin group.
func (h *Handler) RegisterRoutes(protected, admin *gin.RouterGroup) {
	protected.POST("/orders", h.CreateOrder)
	protected.GET("/orders/customer/:id", h.OrdersForCustomer)
	protected.GET("/orders/:id", h.GetOrder)

	admin.GET("/orders", h.ListOrders)
	admin.PUT("/orders/:id", h.Reschedule)
	admin.PATCH("/orders/:id/status", h.UpdateStatus)
}

func (h *Handler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	customerID := c.GetInt64("user_id")
	if customerID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	order, err := h.service.CreateOrder(c.Request.Context(), customerID, req)
	if err != nil {
		switch err {
		case ErrInvalidBookingDate, ErrInvalidBookingTime:
			response.Error(c, http.StatusBadRequest, "INVALID_BOOKING_DATETIME", "Invalid booking date or time")
		case ErrServiceNotFound:
			response.Error(c, http.StatusNotFound, "SERVICE_NOT_FOUND", "Service not found")
		case ErrCustomerNotFound:
			response.Error(c, http.StatusNotFound, "CUSTOMER_NOT_FOUND", "Customer profile not found")
		case ErrSlotTaken:
			response.Error(c, http.StatusConflict, "BOOKING_CONFLICT", "This time slot is already booked")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create booking")
		}
		return
	}

	response.Success(c, http.StatusCreated, order)
}

func (h *Handler) GetOrder(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid order ID")
		return
	}

	order, err := h.service.GetOrder(c.Request.Context(), id)
	if err != nil {
		if err == ErrOrderNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Order not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load order")
		return
	}

	if !canAccessOrder(c, order.CustomerID) {
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Not your order")
		return
	}

	response.Success(c, http.StatusOK, order)
}

func (h *Handler) OrdersForCustomer(c *gin.Context) {
	customerID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || customerID <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid customer ID")
		return
	}

	if !canAccessOrder(c, customerID) {
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Not your bookings")
		return
	}

	orders, err := h.service.OrdersForCustomer(c.Request.Context(), customerID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load bookings")
		return
	}

	response.Success(c, http.StatusOK, orders)
}

func (h *Handler) ListOrders(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))

	orders, err := h.service.ListOrders(c.Request.Context(), limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load orders")
		return
	}

	response.Success(c, http.StatusOK, orders)
}

func (h *Handler) Reschedule(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid order ID")
		return
	}

	var req RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	order, err := h.service.Reschedule(c.Request.Context(), id, req)
	if err != nil {
		switch err {
		case ErrInvalidBookingDate, ErrInvalidBookingTime:
			response.Error(c, http.StatusBadRequest, "INVALID_BOOKING_DATETIME", "Invalid booking date or time")
		case ErrOrderNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Order not found")
		case ErrInvalidStatusTransition:
			response.Error(c, http.StatusConflict, "ORDER_LOCKED", "Completed or cancelled orders cannot be rescheduled")
		case ErrSlotTaken:
			response.Error(c, http.StatusConflict, "BOOKING_CONFLICT", "This time slot is already booked")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to reschedule order")
		}
		return
	}

	response.Success(c, http.StatusOK, order)
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid order ID")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	order, err := h.service.UpdateStatus(c.Request.Context(), id, domain.OrderStatus(req.Status))
	if err != nil {
		switch err {
		case ErrOrderNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Order not found")
		case ErrInvalidStatusTransition:
			response.Error(c, http.StatusConflict, "INVALID_STATUS_TRANSITION", "Status transition not allowed")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update status")
		}
		return
	}

	response.Success(c, http.StatusOK, order)
}

// canAccessOrder allows the owning customer and any admin.
func canAccessOrder(c *gin.Context, customerID int64) bool {
	if c.GetString("role") == string(domain.RoleAdmin) {
		return true
	}
	return c.GetInt64("user_id") == customerID
}
