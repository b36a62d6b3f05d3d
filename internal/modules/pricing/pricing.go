package pricing

import (
	"regexp"
	"strconv"
)

// Discount per session count. Counts outside the table book at full price.
var discountTiers = map[int]float64{
	1:  0.00,
	3:  0.25,
	6:  0.35,
	10: 0.45,
}

var firstIntRe = regexp.MustCompile(`\d+`)

type Result struct {
	SessionCount    int     `json:"session_count"`
	PerSessionPrice float64 `json:"per_session_price"`
	TotalPrice      float64 `json:"total_price"`
	TotalSavings    float64 `json:"total_savings"`
}

// SessionCountFromLabel extracts the first integer from a package label like
// "6 sessions". Labels without digits mean a single session; the admin panel
// lets staff edit session options freely, so this never fails.
func SessionCountFromLabel(label string) int {
	m := firstIntRe.FindString(label)
	if m == "" {
		return 1
	}
	n, err := strconv.Atoi(m)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// DiscountFor returns the discount fraction for a session count, 0 when the
// count has no tier.
func DiscountFor(sessionCount int) float64 {
	return discountTiers[sessionCount]
}

// Compute prices a package selection against a service's base price.
// Arithmetic stays in full precision; rounding happens only when a handler
// shapes the response.
func Compute(basePrice float64, label string) Result {
	n := SessionCountFromLabel(label)
	d := DiscountFor(n)

	perSession := basePrice * (1 - d)
	total := perSession * float64(n)

	return Result{
		SessionCount:    n,
		PerSessionPrice: perSession,
		TotalPrice:      total,
		TotalSavings:    basePrice*float64(n) - total,
	}
}
