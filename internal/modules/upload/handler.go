package upload

import (
	"net/http"

	"skinclinic/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Handler handles image uploads. Routes sit behind the admin middleware
// since only staff manage service imagery.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(admin *gin.RouterGroup) {
	uploads := admin.Group("/uploads")
	{
		uploads.POST("", h.Upload)
		uploads.GET("", h.ListMy)
		uploads.GET("/:id", h.GetByID)
		uploads.DELETE("/:id", h.Delete)
	}
}

func (h *Handler) Upload(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "NO_FILE", "No file provided")
		return
	}

	record, err := h.service.Upload(c.Request.Context(), userID, fileHeader)
	if err != nil {
		switch err {
		case ErrEmptyFile, ErrInvalidMimeType:
			response.Error(c, http.StatusBadRequest, "INVALID_FILE", err.Error())
		case ErrFileTooLarge:
			response.Error(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Upload failed")
		}
		return
	}

	response.Success(c, http.StatusCreated, record)
}

func (h *Handler) GetByID(c *gin.Context) {
	record, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Upload not found")
		return
	}
	response.Success(c, http.StatusOK, record)
}

func (h *Handler) Delete(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	if err := h.service.Delete(c.Request.Context(), c.Param("id"), userID); err != nil {
		switch err {
		case ErrUploadNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Upload not found")
		case ErrNotOwner:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You do not own this upload")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Delete failed")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) ListMy(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	uploads, err := h.service.ListByUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list uploads")
		return
	}
	response.Success(c, http.StatusOK, uploads)
}
