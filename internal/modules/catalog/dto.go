package catalog

import (
	"encoding/json"
	"math"

	"skinclinic/internal/domain"
	"skinclinic/internal/modules/pricing"
)

// ---------- CATEGORIES ----------

type CreateCategoryRequest struct {
	Name         string `json:"name" validate:"required"`
	Description  string `json:"description"`
	DisplayOrder int    `json:"display_order"`
	IsActive     *bool  `json:"is_active,omitempty"`
}

type UpdateCategoryRequest struct {
	Name         *string `json:"name,omitempty"`
	Description  *string `json:"description,omitempty"`
	DisplayOrder *int    `json:"display_order,omitempty"`
	IsActive     *bool   `json:"is_active,omitempty"`
}

// ---------- SERVICES ----------

type CreateServiceRequest struct {
	CategoryID     int64           `json:"category_id" validate:"required,gt=0"`
	Name           string          `json:"name" validate:"required"`
	Description    string          `json:"description"`
	BasePrice      float64         `json:"base_price" validate:"gte=0"`
	SessionOptions json.RawMessage `json:"session_options,omitempty"`
	ImageURL       string          `json:"image_url"`
	IsPopular      bool            `json:"is_popular"`
	IsActive       *bool           `json:"is_active,omitempty"`
}

type UpdateServiceRequest struct {
	CategoryID     *int64          `json:"category_id,omitempty"`
	Name           *string         `json:"name,omitempty"`
	Description    *string         `json:"description,omitempty"`
	BasePrice      *float64        `json:"base_price,omitempty"`
	SessionOptions json.RawMessage `json:"session_options,omitempty"`
	ImageURL       *string         `json:"image_url,omitempty"`
	IsPopular      *bool           `json:"is_popular,omitempty"`
	IsActive       *bool           `json:"is_active,omitempty"`
}

// PackageQuote is one priced row on a service detail page.
type PackageQuote struct {
	Label           string  `json:"label"`
	SessionCount    int     `json:"session_count"`
	DiscountPercent float64 `json:"discount_percent"`
	PerSessionPrice float64 `json:"per_session_price"`
	TotalPrice      float64 `json:"total_price"`
	TotalSavings    float64 `json:"total_savings"`
}

type ServiceDetailResponse struct {
	Service  *domain.Service `json:"service"`
	Packages []PackageQuote  `json:"packages"`
}

// buildPackageQuotes prices every allowed package of a service. Money is
// rounded to cents here, at the response boundary, never earlier.
func buildPackageQuotes(svc *domain.Service) []PackageQuote {
	labels := pricing.ResolveAllowedPackages(svc)
	quotes := make([]PackageQuote, 0, len(labels))
	for _, label := range labels {
		r := pricing.Compute(svc.BasePrice, label)
		quotes = append(quotes, PackageQuote{
			Label:           label,
			SessionCount:    r.SessionCount,
			DiscountPercent: pricing.DiscountFor(r.SessionCount) * 100,
			PerSessionPrice: roundCents(r.PerSessionPrice),
			TotalPrice:      roundCents(r.TotalPrice),
			TotalSavings:    roundCents(r.TotalSavings),
		})
	}
	return quotes
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
