package check_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/DriveX-RentalService/internal/domain"
	carRepo "github.com/m04kA/DriveX-RentalService/internal/infra/storage/car"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) FindOverlapping(_ context.Context, carID int64, start, end time.Time) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range f.bookings {
		if b.CarID == carID && b.IsActive() && b.Overlaps(start, end) {
			out = append(out, b)
		}
	}
	return out, nil
}

type fakeCarRepo struct {
	cars map[int64]*domain.Car
}

func (f *fakeCarRepo) GetByID(_ context.Context, id int64) (*domain.Car, error) {
	car, ok := f.cars[id]
	if !ok {
		return nil, carRepo.ErrCarNotFound
	}
	return car, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func ts(t *testing.T, s string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, s)
	require.NoError(t, err)
	return parsed
}

func newTestUseCase(bookings []*domain.Booking) *UseCase {
	cars := map[int64]*domain.Car{1: {ID: 1, Name: "Swift", HourlyRate: 100}}
	return NewUseCase(&fakeBookingRepo{bookings: bookings}, &fakeCarRepo{cars: cars}, nopLogger{})
}

func TestCheckAvailability_FreeSlot(t *testing.T) {
	uc := newTestUseCase(nil)

	resp, err := uc.Execute(context.Background(), &Request{
		CarID: 1,
		Start: ts(t, "2026-03-01T10:00:00Z"),
		End:   ts(t, "2026-03-02T10:00:00Z"),
	})
	require.NoError(t, err)

	assert.True(t, resp.Available)
	assert.Nil(t, resp.ConflictStart)
	assert.Nil(t, resp.ConflictEnd)
}

func TestCheckAvailability_ConflictCarriesInterval(t *testing.T) {
	busyStart := ts(t, "2026-03-01T12:00:00Z")
	busyEnd := ts(t, "2026-03-02T12:00:00Z")
	uc := newTestUseCase([]*domain.Booking{
		{ID: 7, CarID: 1, StartAt: busyStart, EndAt: busyEnd, Status: domain.StatusConfirmed},
	})

	resp, err := uc.Execute(context.Background(), &Request{
		CarID: 1,
		Start: ts(t, "2026-03-01T10:00:00Z"),
		End:   ts(t, "2026-03-02T10:00:00Z"),
	})
	require.NoError(t, err)

	assert.False(t, resp.Available)
	require.NotNil(t, resp.ConflictStart)
	require.NotNil(t, resp.ConflictEnd)
	assert.Equal(t, busyStart, *resp.ConflictStart)
	assert.Equal(t, busyEnd, *resp.ConflictEnd)
}

func TestCheckAvailability_BackToBackIsFree(t *testing.T) {
	busyStart := ts(t, "2026-03-01T10:00:00Z")
	busyEnd := ts(t, "2026-03-02T10:00:00Z")
	uc := newTestUseCase([]*domain.Booking{
		{ID: 7, CarID: 1, StartAt: busyStart, EndAt: busyEnd, Status: domain.StatusPaid},
	})

	// Начало ровно в момент окончания существующей брони
	resp, err := uc.Execute(context.Background(), &Request{
		CarID: 1,
		Start: busyEnd,
		End:   busyEnd.Add(24 * time.Hour),
	})
	require.NoError(t, err)

	assert.True(t, resp.Available)
}

func TestCheckAvailability_CancelledBookingFreesSlot(t *testing.T) {
	busyStart := ts(t, "2026-03-01T10:00:00Z")
	busyEnd := ts(t, "2026-03-02T10:00:00Z")
	uc := newTestUseCase([]*domain.Booking{
		{ID: 7, CarID: 1, StartAt: busyStart, EndAt: busyEnd, Status: domain.StatusCancelled},
	})

	resp, err := uc.Execute(context.Background(), &Request{
		CarID: 1,
		Start: busyStart,
		End:   busyEnd,
	})
	require.NoError(t, err)

	assert.True(t, resp.Available)
}

func TestCheckAvailability_CarNotFound(t *testing.T) {
	uc := newTestUseCase(nil)

	_, err := uc.Execute(context.Background(), &Request{
		CarID: 999,
		Start: ts(t, "2026-03-01T10:00:00Z"),
		End:   ts(t, "2026-03-02T10:00:00Z"),
	})
	require.ErrorIs(t, err, ErrCarNotFound)
}

func TestCheckAvailability_InvalidRange(t *testing.T) {
	uc := newTestUseCase(nil)
	start := ts(t, "2026-03-01T10:00:00Z")

	_, err := uc.Execute(context.Background(), &Request{CarID: 1, Start: start, End: start})
	require.ErrorIs(t, err, ErrInvalidRange)
}
