package domain

import "time"

// Car represents a vehicle in the rental fleet
type Car struct {
	ID           int64
	Name         string
	Category     string
	HourlyRate   int64 // integer currency units per hour, always > 0
	Transmission *string
	FuelType     *string
	Seats        *int
	Location     *string
	IsAvailable  bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CanBeBooked returns true if the car is listed and has a valid rate
func (c *Car) CanBeBooked() bool {
	return c.IsAvailable && c.HourlyRate > 0
}
