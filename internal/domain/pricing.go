package domain

import (
	"errors"
	"time"
)

var (
	// ErrInvalidRange is returned for a zero or negative-length rental window
	ErrInvalidRange = errors.New("domain: rental end must be after start")

	// ErrRentalTooShort is returned when the window is below the minimum billable unit
	ErrRentalTooShort = errors.New("domain: rental shorter than 24 hours")

	// ErrRentalTooLong is returned when the window exceeds the maximum rental period
	ErrRentalTooLong = errors.New("domain: rental longer than 30 days")
)

// CostBreakdown is the deterministic, auditable cost of a rental window.
// TotalCost = max(0, BaseCost + DriverFee + Tax - Discount).
type CostBreakdown struct {
	BaseCost  int64
	DriverFee int64
	Tax       int64
	Discount  int64
	TotalCost int64
}

// RentalHours returns the window length in fractional hours
func RentalHours(start, end time.Time) float64 {
	return end.Sub(start).Hours()
}

// RentalDays returns the whole 24-hour periods covered by the window,
// used only for policy bound checks
func RentalDays(start, end time.Time) int {
	return int(RentalHours(start, end) / 24)
}

// ValidateRentalWindow checks the window against the duration policy.
// The bounds are inclusive: exactly 24 hours and exactly 30 days are accepted,
// anything past either bound is rejected.
func ValidateRentalWindow(start, end time.Time) error {
	if !end.After(start) {
		return ErrInvalidRange
	}

	hours := RentalHours(start, end)
	if hours < MinRentalHours {
		return ErrRentalTooShort
	}
	if hours > MaxRentalDays*24 {
		return ErrRentalTooLong
	}

	return nil
}

// ComputeCost computes the cost breakdown for a rental window.
// Base cost rounds toward zero on the hours * rate multiplication.
// The same inputs always produce the same breakdown.
func ComputeCost(hourlyRate int64, start, end time.Time, withDriver bool, discount int64) CostBreakdown {
	base := int64(RentalHours(start, end) * float64(hourlyRate))

	var driverFee int64
	if withDriver {
		driverFee = DriverFee
	}

	total := base + driverFee + FixedTax - discount
	if total < 0 {
		total = 0
	}

	return CostBreakdown{
		BaseCost:  base,
		DriverFee: driverFee,
		Tax:       FixedTax,
		Discount:  discount,
		TotalCost: total,
	}
}

// IntervalsOverlap reports whether two half-open intervals [s1,e1) and [s2,e2)
// overlap: s1 < e2 && s2 < e1. Back-to-back intervals do not overlap.
func IntervalsOverlap(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && s2.Before(e1)
}
