package domain

import "time"

// BookingStatus represents the status of a rental booking
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusPaid      BookingStatus = "paid"
	StatusCancelled BookingStatus = "cancelled"
)

// IsValid returns true if the status is one of the known tags
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusConfirmed, StatusPaid, StatusCancelled:
		return true
	}
	return false
}

// PaymentMethod represents how the booking is paid for
type PaymentMethod string

const (
	PaymentCard       PaymentMethod = "card"
	PaymentUPI        PaymentMethod = "upi"
	PaymentNetbanking PaymentMethod = "netbanking"
	PaymentCash       PaymentMethod = "cash"
	PaymentPayLater   PaymentMethod = "pay_later"
)

// IsValid returns true if the payment method is one of the known tags
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentCard, PaymentUPI, PaymentNetbanking, PaymentCash, PaymentPayLater:
		return true
	}
	return false
}

// IsImmediate returns true if the method settles at commit time
func (m PaymentMethod) IsImmediate() bool {
	switch m {
	case PaymentCard, PaymentUPI, PaymentNetbanking:
		return true
	}
	return false
}

// InitialStatusFor returns the status a freshly committed booking gets:
// paid for immediate payment methods, confirmed for deferred ones
func InitialStatusFor(m PaymentMethod) BookingStatus {
	if m.IsImmediate() {
		return StatusPaid
	}
	return StatusConfirmed
}

// Booking represents a committed rental over a half-open interval [StartAt, EndAt)
type Booking struct {
	ID     int64
	UserID int64
	CarID  int64

	StartAt time.Time
	EndAt   time.Time
	Status  BookingStatus

	// Cost breakdown, fixed at commit time
	BaseCost   int64
	DriverFee  int64
	Tax        int64
	Discount   int64
	TotalCost  int64
	WithDriver bool
	CouponCode *string

	PaymentMethod PaymentMethod

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still occupies its interval
// (cancellation frees the interval immediately)
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusConfirmed || b.Status == StatusPaid
}

// CanBePaid returns true if the booking is awaiting payment
func (b *Booking) CanBePaid() bool {
	return b.Status == StatusConfirmed
}

// Overlaps reports whether the booking interval overlaps [start, end).
// Half-open semantics: a booking ending exactly when another starts does not overlap.
func (b *Booking) Overlaps(start, end time.Time) bool {
	return IntervalsOverlap(b.StartAt, b.EndAt, start, end)
}

// CarBookingsFilter фильтр для получения бронирований автомобиля
type CarBookingsFilter struct {
	CarID            int64          // Обязательный параметр
	From             *time.Time     // Начало периода (опционально)
	To               *time.Time     // Конец периода (опционально)
	Status           *BookingStatus // Фильтр по статусу (опционально)
	IncludeCancelled bool           // Включать ли отменённые бронирования
}
