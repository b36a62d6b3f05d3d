package main

import (
	"context"
	"encoding/json"
	"log"
	"os"

	"skinclinic/internal/database"
	"skinclinic/internal/domain"
	"skinclinic/internal/modules/pricing"
	"skinclinic/internal/modules/upload"
	"skinclinic/internal/repository"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "skinclinic.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}
	if err := db.AutoMigrate(&upload.Upload{}); err != nil {
		log.Fatal("AutoMigrate uploads failed:", err)
	}

	// Cleanup in FK-safe order.
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM reviews")
	db.Exec("DELETE FROM orders")
	db.Exec("DELETE FROM services")
	db.Exec("DELETE FROM categories")
	db.Exec("DELETE FROM profiles")

	ctx := context.Background()
	profiles := repository.NewProfileRepository(db)
	categories := repository.NewCategoryRepository(db)
	services := repository.NewServiceRepository(db)
	orders := repository.NewOrderRepository(db)
	reviews := repository.NewReviewRepository(db)

	// ================== PROFILES ==================
	log.Println("Creating profiles...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := &domain.Profile{
		Email:        "admin@skinclinic.local",
		PasswordHash: string(adminHash),
		Role:         domain.RoleAdmin,
		FirstName:    "Clinic",
		LastName:     "Admin",
	}
	must(profiles.Create(ctx, admin))
	log.Println("Admin created: admin@skinclinic.local / admin123")

	customerHash, _ := bcrypt.GenerateFromPassword([]byte("customer123"), bcrypt.DefaultCost)
	customer := &domain.Profile{
		Email:        "jane@example.com",
		PasswordHash: string(customerHash),
		Role:         domain.RoleCustomer,
		FirstName:    "Jane",
		LastName:     "Doe",
		Phone:        "+1 555 010 2030",
	}
	must(profiles.Create(ctx, customer))

	// ================== CATEGORIES ==================
	log.Println("Creating categories...")

	catNames := []struct {
		name, desc string
	}{
		{"Laser Treatments", "Hair removal and skin resurfacing with medical-grade lasers"},
		{"Facials", "Deep cleansing, hydration and anti-aging facials"},
		{"Body Contouring", "Non-invasive sculpting and skin tightening"},
		{"Injectables", "Dermal fillers and wrinkle relaxers"},
	}
	cats := make([]*domain.Category, 0, len(catNames))
	for i, c := range catNames {
		cat := &domain.Category{
			Name:         c.name,
			Description:  c.desc,
			DisplayOrder: i + 1,
			IsActive:     true,
		}
		must(categories.Create(ctx, cat))
		cats = append(cats, cat)
	}

	// ================== SERVICES ==================
	log.Println("Creating services...")

	// session_options is stored in every shape the admin panel has produced
	// over time, so the decoder gets real data to chew on.
	seedServices := []domain.Service{
		{
			CategoryID:     cats[0].ID,
			Name:           "Laser Hair Removal - Full Legs",
			Description:    "Diode laser treatment for full legs",
			BasePrice:      100,
			SessionOptions: json.RawMessage(`["1 session","3 sessions","6 sessions","10 sessions"]`),
			IsPopular:      true,
			IsActive:       true,
		},
		{
			CategoryID:     cats[0].ID,
			Name:           "Laser Skin Resurfacing",
			Description:    "Fractional laser for texture and scarring",
			BasePrice:      250,
			SessionOptions: json.RawMessage(`"[\"1 session\",\"3 sessions\"]"`),
			IsPopular:      true,
			IsActive:       true,
		},
		{
			CategoryID:     cats[1].ID,
			Name:           "HydraFacial",
			Description:    "Cleansing, exfoliation and hydrating serum infusion",
			BasePrice:      120,
			SessionOptions: json.RawMessage(`{"options":["1 session","3 sessions","6 sessions"]}`),
			IsPopular:      true,
			IsActive:       true,
		},
		{
			CategoryID:  cats[2].ID,
			Name:        "Radiofrequency Body Sculpting",
			Description: "RF skin tightening for abdomen and thighs",
			BasePrice:   180,
			// no session_options stored: falls back to the default tiers
			IsActive: true,
		},
		{
			CategoryID:     cats[3].ID,
			Name:           "Anti-Wrinkle Injections",
			Description:    "Per-area wrinkle relaxer treatment",
			BasePrice:      200,
			SessionOptions: json.RawMessage(`{"session_options":["1 session","3 sessions"]}`),
			IsActive:       true,
		},
	}
	for i := range seedServices {
		must(services.Create(ctx, &seedServices[i]))
	}

	// ================== DEMO ORDER ==================
	log.Println("Creating demo order...")

	laser := &seedServices[0]
	quote := pricing.Compute(laser.BasePrice, "6 sessions")
	order := &domain.Order{
		CustomerID:      customer.ID,
		ServiceID:       laser.ID,
		ServiceTitle:    laser.Name,
		CustomerName:    customer.FullName(),
		CustomerEmail:   customer.Email,
		CustomerPhone:   customer.Phone,
		SessionCount:    quote.SessionCount,
		UnitPrice:       laser.BasePrice,
		DiscountPercent: pricing.DiscountFor(quote.SessionCount) * 100,
		TotalAmount:     quote.TotalPrice,
		BookingDate:     "2026-09-14",
		BookingTime:     "15:30:00",
		Status:          domain.OrderConfirmed,
	}
	must(orders.Create(ctx, order))

	// ================== REVIEWS ==================
	log.Println("Creating reviews...")

	seedReviews := []domain.Review{
		{ServiceID: laser.ID, CustomerID: customer.ID, Rating: 5, Comment: "Painless and quick, already seeing results.", IsFeatured: true},
		{ServiceID: seedServices[2].ID, CustomerID: customer.ID, Rating: 5, Comment: "My skin has never felt this clean.", IsFeatured: true},
		{ServiceID: seedServices[1].ID, CustomerID: customer.ID, Rating: 4, Comment: "Great staff, slight redness for a day."},
	}
	for i := range seedReviews {
		must(reviews.Create(ctx, &seedReviews[i]))
	}

	log.Println("Seed complete.")
}

func must(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
