package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"skinclinic/internal/database"
	"skinclinic/internal/domain"
	"skinclinic/internal/middleware"
	"skinclinic/internal/modules/admin"
	"skinclinic/internal/modules/auth"
	"skinclinic/internal/modules/booking"
	"skinclinic/internal/modules/catalog"
	"skinclinic/internal/modules/review"
	jwtsvc "skinclinic/internal/pkg/jwt"
	"skinclinic/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type testSuite struct {
	router *gin.Engine
	db     *gorm.DB
	jwt    *jwtsvc.Service
}

type apiResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *errorDetail    `json:"error,omitempty"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func setupSuite(t *testing.T) *testSuite {
	db, err := database.Connect(":memory:")
	require.NoError(t, err, "failed to open test database")
	require.NoError(t, repository.AutoMigrate(db))

	profileRepo := repository.NewProfileRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	j := jwtsvc.New("test_secret_key_32_characters_min", 24*time.Hour)

	authHandler := auth.NewHandler(auth.NewService(profileRepo, j))
	catalogService := catalog.NewService(categoryRepo, serviceRepo)
	catalogHandler := catalog.NewHandler(catalogService)
	bookingHandler := booking.NewHandler(booking.NewService(orderRepo, catalogService, profileRepo))
	reviewHandler := review.NewHandler(review.NewService(reviewRepo, serviceRepo))
	adminHandler := admin.NewHandler(admin.NewService(profileRepo, orderRepo, serviceRepo, categoryRepo))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(gin.Recovery())

	v1 := r.Group("/api/v1")

	protected := v1.Group("/")
	protected.Use(middleware.JWTAuth(j))

	adminGroup := v1.Group("/admin")
	adminGroup.Use(middleware.JWTAuth(j), middleware.AdminOnly())

	authHandler.RegisterRoutes(v1, protected)
	catalogHandler.RegisterRoutes(v1, adminGroup)
	bookingHandler.RegisterRoutes(protected, adminGroup)
	reviewHandler.RegisterRoutes(v1, protected)
	adminHandler.RegisterRoutes(adminGroup)

	return &testSuite{router: r, db: db, jwt: j}
}

func (s *testSuite) request(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) apiResponse {
	t.Helper()
	var resp apiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

// seedAdmin inserts an admin profile directly and returns a token for it.
func (s *testSuite) seedAdmin(t *testing.T) string {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	require.NoError(t, err)

	adminProfile := &domain.Profile{
		Email:        "admin@clinic.test",
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		FirstName:    "Admin",
	}
	require.NoError(t, repository.NewProfileRepository(s.db).Create(context.Background(), adminProfile))

	token, err := s.jwt.GenerateToken(adminProfile.ID, string(domain.RoleAdmin))
	require.NoError(t, err)
	return token
}

func (s *testSuite) registerCustomer(t *testing.T, email string) string {
	t.Helper()

	w := s.request(t, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"email":      email,
		"password":   "secret123",
		"first_name": "Jane",
		"last_name":  "Doe",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var data struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &data))
	require.NotEmpty(t, data.Token)
	return data.Token
}

func (s *testSuite) createService(t *testing.T, adminToken string, basePrice float64) int64 {
	t.Helper()

	w := s.request(t, http.MethodPost, "/api/v1/admin/categories", adminToken, gin.H{
		"name": "Laser Treatments",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var cat struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &cat))

	w = s.request(t, http.MethodPost, "/api/v1/admin/services", adminToken, gin.H{
		"name":        "Laser Hair Removal",
		"category_id": cat.ID,
		"base_price":  basePrice,
		"is_popular":  true,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var svc struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &svc))
	return svc.ID
}

func TestAuthFlow(t *testing.T) {
	s := setupSuite(t)

	token := s.registerCustomer(t, "jane@clinic.test")

	// duplicate registration is rejected
	w := s.request(t, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"email":      "jane@clinic.test",
		"password":   "secret123",
		"first_name": "Jane",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "EMAIL_EXISTS", decode(t, w).Error.Code)

	// login with the right password
	w = s.request(t, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    "jane@clinic.test",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	// and the wrong one
	w = s.request(t, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    "jane@clinic.test",
		"password": "nope",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// /auth/me returns the profile
	w = s.request(t, http.MethodGet, "/api/v1/auth/me", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var me struct {
		Email string `json:"email"`
		Role  string `json:"role"`
	}
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &me))
	assert.Equal(t, "jane@clinic.test", me.Email)
	assert.Equal(t, "customer", me.Role)

	// no token, no profile
	w = s.request(t, http.MethodGet, "/api/v1/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestServiceDetailPricesPackages(t *testing.T) {
	s := setupSuite(t)
	adminToken := s.seedAdmin(t)
	serviceID := s.createService(t, adminToken, 100)

	w := s.request(t, http.MethodGet, fmt.Sprintf("/api/v1/services/%d", serviceID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var detail struct {
		Packages []struct {
			Label           string  `json:"label"`
			SessionCount    int     `json:"session_count"`
			PerSessionPrice float64 `json:"per_session_price"`
			TotalPrice      float64 `json:"total_price"`
		} `json:"packages"`
	}
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &detail))
	require.Len(t, detail.Packages, 4)

	assert.Equal(t, "6 sessions", detail.Packages[2].Label)
	assert.Equal(t, 65.0, detail.Packages[2].PerSessionPrice)
	assert.Equal(t, 390.0, detail.Packages[2].TotalPrice)

	// customers cannot touch the admin CRUD
	customerToken := s.registerCustomer(t, "jane@clinic.test")
	w = s.request(t, http.MethodPost, "/api/v1/admin/services", customerToken, gin.H{
		"name": "Nope", "category_id": 1, "base_price": 1,
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestBookingLifecycle(t *testing.T) {
	s := setupSuite(t)
	adminToken := s.seedAdmin(t)
	serviceID := s.createService(t, adminToken, 100)
	customerToken := s.registerCustomer(t, "jane@clinic.test")

	// free-text date and time arrive normalized and priced
	w := s.request(t, http.MethodPost, "/api/v1/orders", customerToken, gin.H{
		"service_id": serviceID,
		"package":    "6 sessions",
		"date":       "Wed, 24th Dec 2025",
		"time":       "5:15 pm",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var order struct {
		ID           int64   `json:"id"`
		BookingDate  string  `json:"booking_date"`
		BookingTime  string  `json:"booking_time"`
		SessionCount int     `json:"session_count"`
		TotalAmount  float64 `json:"total_amount"`
		Status       string  `json:"status"`
	}
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &order))
	assert.Equal(t, "2025-12-24", order.BookingDate)
	assert.Equal(t, "17:15:00", order.BookingTime)
	assert.Equal(t, 6, order.SessionCount)
	assert.Equal(t, 600.0, order.TotalAmount)
	assert.Equal(t, "pending", order.Status)

	// same slot again is a conflict
	w = s.request(t, http.MethodPost, "/api/v1/orders", customerToken, gin.H{
		"service_id": serviceID,
		"package":    "1 session",
		"date":       "2025-12-24",
		"time":       "17:15",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "BOOKING_CONFLICT", decode(t, w).Error.Code)

	// garbage date never creates anything
	w = s.request(t, http.MethodPost, "/api/v1/orders", customerToken, gin.H{
		"service_id": serviceID,
		"date":       "not a date",
		"time":       "10:00",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// admin walks the order through its lifecycle
	statusPath := fmt.Sprintf("/api/v1/admin/orders/%d/status", order.ID)

	w = s.request(t, http.MethodPatch, statusPath, adminToken, gin.H{"status": "confirmed"})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = s.request(t, http.MethodPatch, statusPath, adminToken, gin.H{"status": "completed"})
	assert.Equal(t, http.StatusOK, w.Code)

	// completed is terminal
	w = s.request(t, http.MethodPatch, statusPath, adminToken, gin.H{"status": "cancelled"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "INVALID_STATUS_TRANSITION", decode(t, w).Error.Code)

	// and a completed order cannot be rescheduled
	w = s.request(t, http.MethodPut, fmt.Sprintf("/api/v1/admin/orders/%d", order.ID), adminToken, gin.H{
		"booking_date": "2026-01-05",
		"booking_time": "10:00",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	// customers cannot drive the lifecycle
	w = s.request(t, http.MethodPatch, statusPath, customerToken, gin.H{"status": "cancelled"})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRescheduleRecomputesTotal(t *testing.T) {
	s := setupSuite(t)
	adminToken := s.seedAdmin(t)
	serviceID := s.createService(t, adminToken, 100)
	customerToken := s.registerCustomer(t, "jane@clinic.test")

	w := s.request(t, http.MethodPost, "/api/v1/orders", customerToken, gin.H{
		"service_id": serviceID,
		"package":    "1 session",
		"date":       "2025-12-24",
		"time":       "10:00",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var order struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &order))

	w = s.request(t, http.MethodPut, fmt.Sprintf("/api/v1/admin/orders/%d", order.ID), adminToken, gin.H{
		"booking_date": "Mon, 29th Dec 2025",
		"booking_time": "2:00 pm",
		"package":      "3 sessions",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var updated struct {
		BookingDate  string  `json:"booking_date"`
		BookingTime  string  `json:"booking_time"`
		SessionCount int     `json:"session_count"`
		TotalAmount  float64 `json:"total_amount"`
	}
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &updated))
	assert.Equal(t, "2025-12-29", updated.BookingDate)
	assert.Equal(t, "14:00:00", updated.BookingTime)
	assert.Equal(t, 3, updated.SessionCount)
	assert.Equal(t, 300.0, updated.TotalAmount)
}

func TestAdminStatsAndReviews(t *testing.T) {
	s := setupSuite(t)
	adminToken := s.seedAdmin(t)
	serviceID := s.createService(t, adminToken, 100)
	customerToken := s.registerCustomer(t, "jane@clinic.test")

	w := s.request(t, http.MethodPost, "/api/v1/reviews", customerToken, gin.H{
		"service_id": serviceID,
		"rating":     5,
		"comment":    "Fantastic results",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = s.request(t, http.MethodPost, "/api/v1/reviews", customerToken, gin.H{
		"service_id": serviceID,
		"rating":     9,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.request(t, http.MethodGet, fmt.Sprintf("/api/v1/services/%d/reviews", serviceID), "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var reviews []struct {
		Rating int `json:"rating"`
	}
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &reviews))
	require.Len(t, reviews, 1)
	assert.Equal(t, 5, reviews[0].Rating)

	w = s.request(t, http.MethodGet, "/api/v1/admin/stats", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stats struct {
		TotalCustomers   int64 `json:"total_customers"`
		ActiveServices   int64 `json:"active_services"`
		ActiveCategories int64 `json:"active_categories"`
	}
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &stats))
	assert.Equal(t, int64(1), stats.TotalCustomers)
	assert.Equal(t, int64(1), stats.ActiveServices)
	assert.Equal(t, int64(1), stats.ActiveCategories)
}

func TestAdminDeleteCustomer(t *testing.T) {
	s := setupSuite(t)
	adminToken := s.seedAdmin(t)
	customerToken := s.registerCustomer(t, "jane@clinic.test")

	w := s.request(t, http.MethodGet, "/api/v1/auth/me", customerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var me struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &me))

	w = s.request(t, http.MethodDelete, fmt.Sprintf("/api/v1/admin/customers/%d", me.ID), adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = s.request(t, http.MethodGet, "/api/v1/auth/me", customerToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
