package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"skinclinic/internal/config"
	"skinclinic/internal/database"
	"skinclinic/internal/middleware"
	"skinclinic/internal/modules/admin"
	"skinclinic/internal/modules/auth"
	"skinclinic/internal/modules/booking"
	"skinclinic/internal/modules/catalog"
	"skinclinic/internal/modules/review"
	"skinclinic/internal/modules/upload"
	jwtsvc "skinclinic/internal/pkg/jwt"
	"skinclinic/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	profileRepo := repository.NewProfileRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	uploadRepo := upload.NewRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	authService := auth.NewService(profileRepo, j)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(categoryRepo, serviceRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	bookingService := booking.NewService(orderRepo, catalogService, profileRepo)
	bookingHandler := booking.NewHandler(bookingService)

	reviewService := review.NewService(reviewRepo, serviceRepo)
	reviewHandler := review.NewHandler(reviewService)

	adminService := admin.NewService(profileRepo, orderRepo, serviceRepo, categoryRepo)
	adminHandler := admin.NewHandler(adminService)

	uploadService := upload.NewService(uploadRepo, cfg.UploadsDir, "")
	uploadHandler := upload.NewHandler(uploadService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.Static(upload.StaticURLBase, cfg.UploadsDir)

	v1 := r.Group("/api/v1")
	{
		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(j))

		adminGroup := v1.Group("/admin")
		adminGroup.Use(middleware.JWTAuth(j), middleware.AdminOnly())

		authHandler.RegisterRoutes(v1, protected)
		catalogHandler.RegisterRoutes(v1, adminGroup)
		bookingHandler.RegisterRoutes(protected, adminGroup)
		reviewHandler.RegisterRoutes(v1, protected)
		adminHandler.RegisterRoutes(adminGroup)
		uploadHandler.RegisterRoutes(adminGroup)
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
