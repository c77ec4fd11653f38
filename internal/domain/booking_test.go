package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPaymentMethod_IsValid(t *testing.T) {
	for _, m := range []PaymentMethod{PaymentCard, PaymentUPI, PaymentNetbanking, PaymentCash, PaymentPayLater} {
		assert.True(t, m.IsValid(), string(m))
	}

	assert.False(t, PaymentMethod("bitcoin").IsValid())
	assert.False(t, PaymentMethod("").IsValid())
}

func TestInitialStatusFor(t *testing.T) {
	// Мгновенные способы оплаты дают paid
	assert.Equal(t, StatusPaid, InitialStatusFor(PaymentCard))
	assert.Equal(t, StatusPaid, InitialStatusFor(PaymentUPI))
	assert.Equal(t, StatusPaid, InitialStatusFor(PaymentNetbanking))

	// Отложенные дают confirmed
	assert.Equal(t, StatusConfirmed, InitialStatusFor(PaymentCash))
	assert.Equal(t, StatusConfirmed, InitialStatusFor(PaymentPayLater))
}

func TestBooking_Overlaps(t *testing.T) {
	b := &Booking{
		StartAt: ts("2026-03-01T10:00:00Z"),
		EndAt:   ts("2026-03-02T10:00:00Z"),
	}

	// Аренда, начинающаяся ровно в момент окончания, не пересекается
	assert.False(t, b.Overlaps(b.EndAt, b.EndAt.Add(24*time.Hour)))
	assert.True(t, b.Overlaps(b.StartAt.Add(time.Hour), b.EndAt.Add(time.Hour)))
}

func TestBooking_StatusTransitions(t *testing.T) {
	confirmed := &Booking{Status: StatusConfirmed}
	paid := &Booking{Status: StatusPaid}
	cancelled := &Booking{Status: StatusCancelled}

	assert.True(t, confirmed.CanBeCancelled())
	assert.True(t, paid.CanBeCancelled())
	assert.False(t, cancelled.CanBeCancelled())

	assert.True(t, confirmed.CanBePaid())
	assert.False(t, paid.CanBePaid())
	assert.False(t, cancelled.CanBePaid())

	// Отменённое бронирование не занимает интервал
	assert.True(t, confirmed.IsActive())
	assert.True(t, paid.IsActive())
	assert.False(t, cancelled.IsActive())
}
