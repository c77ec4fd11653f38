package domain

// Pricing constants (integer currency units)
const (
	// DriverFee fixed surcharge when a driver is requested
	DriverFee = 500

	// FixedTax flat tax applied to every booking
	FixedTax = 648
)

// Rental duration policy
const (
	// MinRentalHours minimum billable rental window
	MinRentalHours = 24

	// MaxRentalDays maximum rental window
	MaxRentalDays = 30
)

// ActiveStatuses список статусов, при которых бронирование занимает интервал
var ActiveStatuses = []BookingStatus{
	StatusConfirmed,
	StatusPaid,
}
