package domain

import (
	"strings"
	"time"
)

// Coupon represents a fixed-amount discount code
type Coupon struct {
	ID             int64
	Code           string // stored canonical: trimmed, upper-case
	DiscountAmount int64  // non-negative, integer currency units
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Discount returns the discount granted by the coupon,
// zero if the coupon has been deactivated
func (c *Coupon) Discount() int64 {
	if !c.IsActive {
		return 0
	}
	return c.DiscountAmount
}

// NormalizeCouponCode canonicalizes a user-supplied coupon code
// (codes are matched case-insensitively)
func NormalizeCouponCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
