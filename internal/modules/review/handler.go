package review

import (
	"net/http"
	"strconv"

	"skinclinic/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes wires the public review reads and the authenticated write.
func (h *Handler) RegisterRoutes(public, protected *gin.RouterGroup) {
	public.GET("/reviews/featured", h.Featured)
	public.GET("/services/:id/reviews", h.ForService)

	protected.POST("/reviews", h.Create)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	customerID := c.GetInt64("user_id")
	if customerID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	rv, err := h.service.Create(c.Request.Context(), customerID, req)
	if err != nil {
		switch err {
		case ErrInvalidRating:
			response.Error(c, http.StatusBadRequest, "INVALID_RATING", "Rating must be between 1 and 5")
		case ErrServiceNotFound:
			response.Error(c, http.StatusNotFound, "SERVICE_NOT_FOUND", "Service not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create review")
		}
		return
	}

	response.Success(c, http.StatusCreated, rv)
}

func (h *Handler) Featured(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 && v <= 50 {
			limit = v
		}
	}

	reviews, err := h.service.Featured(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load reviews")
		return
	}
	response.Success(c, http.StatusOK, reviews)
}

func (h *Handler) ForService(c *gin.Context) {
	serviceID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || serviceID <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid service ID")
		return
	}

	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))

	reviews, err := h.service.ForService(c.Request.Context(), serviceID, limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load reviews")
		return
	}
	response.Success(c, http.StatusOK, reviews)
}
