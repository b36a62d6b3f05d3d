package admin

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

// RegisterRoutes expects a group already behind the admin-role middleware.
func (h *Handler) RegisterRoutes(admin *gin.RouterGroup) {
	admin.GET("/stats", h.GetStatistics)
	admin.DELETE("/customers/:id", h.DeleteCustomer)
}

func (h *Handler) GetStatistics(c *gin.Context) {
	stats, err := h.service.GetStatistics(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load statistics")
		return
	}
	response.Success(c, http.StatusOK, stats)
}

func (h *Handler) DeleteCustomer(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid customer ID")
		return
	}

	if err := h.service.DeleteCustomer(c.Request.Context(), id); err != nil {
		switch err {
		case ErrCustomerNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Customer not found")
		case ErrNotACustomer:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Only customer accounts can be deleted")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete customer")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
