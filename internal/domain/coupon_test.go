package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCouponCode(t *testing.T) {
	assert.Equal(t, "WELCOME20", NormalizeCouponCode("  welcome20 "))
	assert.Equal(t, "WELCOME20", NormalizeCouponCode("WELCOME20"))
	assert.Equal(t, "", NormalizeCouponCode("   "))
}

func TestCoupon_Discount(t *testing.T) {
	active := &Coupon{DiscountAmount: 200, IsActive: true}
	inactive := &Coupon{DiscountAmount: 200, IsActive: false}

	assert.Equal(t, int64(200), active.Discount())
	assert.Equal(t, int64(0), inactive.Discount())
}
