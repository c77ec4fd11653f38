package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/DriveX-RentalService/internal/domain"
	bookingRepo "github.com/m04kA/DriveX-RentalService/internal/infra/storage/booking"
	"github.com/m04kA/DriveX-RentalService/internal/integrations/identityservice"
	"github.com/m04kA/DriveX-RentalService/internal/service/bookings/models"
	"github.com/m04kA/DriveX-RentalService/pkg/ptr"
)

type fakeRepo struct {
	bookings map[int64]*domain.Booking
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeRepo) GetByUserID(_ context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range f.bookings {
		if b.UserID != userID {
			continue
		}
		if status != nil && b.Status != *status {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeRepo) GetByCarWithFilter(_ context.Context, filter domain.CarBookingsFilter) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range f.bookings {
		if b.CarID != filter.CarID {
			continue
		}
		if !filter.IncludeCancelled && b.Status == domain.StatusCancelled {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	b, ok := f.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.Status = status
	return nil
}

func (f *fakeRepo) Cancel(_ context.Context, id int64, reason string) error {
	b, ok := f.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	now := time.Now()
	b.Status = domain.StatusCancelled
	b.CancellationReason = &reason
	b.CancelledAt = &now
	return nil
}

type fakeIdentity struct {
	users map[int64]*identityservice.User
}

func (f *fakeIdentity) GetUser(_ context.Context, userID int64) (*identityservice.User, error) {
	user, ok := f.users[userID]
	if !ok {
		return nil, identityservice.ErrUserNotFound
	}
	return user, nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const (
	ownerID    = int64(10)
	strangerID = int64(20)
	adminID    = int64(30)
)

func newTestService() (*Service, *fakeRepo) {
	repo := &fakeRepo{bookings: map[int64]*domain.Booking{
		1: {ID: 1, UserID: ownerID, CarID: 1, Status: domain.StatusConfirmed},
		2: {ID: 2, UserID: ownerID, CarID: 1, Status: domain.StatusPaid},
		3: {ID: 3, UserID: ownerID, CarID: 2, Status: domain.StatusCancelled},
	}}
	identity := &fakeIdentity{users: map[int64]*identityservice.User{
		ownerID:    {ID: ownerID},
		strangerID: {ID: strangerID},
		adminID:    {ID: adminID, IsAdmin: true},
	}}
	return NewService(repo, identity, fakeTxManager{}, nopLogger{}), repo
}

func TestGetByID_Permissions(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	// Владелец видит свою бронь
	got, err := svc.GetByID(ctx, ownerID, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)

	// Администратор видит чужую
	_, err = svc.GetByID(ctx, adminID, 1)
	require.NoError(t, err)

	// Посторонний не видит
	_, err = svc.GetByID(ctx, strangerID, 1)
	require.ErrorIs(t, err, ErrPermissionDenied)
}

func TestGetByID_NotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.GetByID(context.Background(), ownerID, 999)
	require.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetUserBookings(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	// Владелец видит свою историю
	got, err := svc.GetUserBookings(ctx, models.UserBookingsQuery{RequesterID: ownerID, UserID: ownerID})
	require.NoError(t, err)
	assert.Len(t, got.Bookings, 3)

	// Фильтр по статусу
	got, err = svc.GetUserBookings(ctx, models.UserBookingsQuery{
		RequesterID: ownerID,
		UserID:      ownerID,
		Status:      ptr.Ptr("paid"),
	})
	require.NoError(t, err)
	require.Len(t, got.Bookings, 1)
	assert.Equal(t, "paid", got.Bookings[0].Status)

	// Некорректный статус отклоняется
	_, err = svc.GetUserBookings(ctx, models.UserBookingsQuery{
		RequesterID: ownerID,
		UserID:      ownerID,
		Status:      ptr.Ptr("unknown"),
	})
	require.ErrorIs(t, err, ErrInvalidStatus)

	// Чужую историю видит только администратор
	_, err = svc.GetUserBookings(ctx, models.UserBookingsQuery{RequesterID: strangerID, UserID: ownerID})
	require.ErrorIs(t, err, ErrPermissionDenied)

	_, err = svc.GetUserBookings(ctx, models.UserBookingsQuery{RequesterID: adminID, UserID: ownerID})
	require.NoError(t, err)
}

func TestGetCarBookings_AdminOnly(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.GetCarBookings(ctx, ownerID, models.CarBookingsQuery{CarID: 1})
	require.ErrorIs(t, err, ErrPermissionDenied)

	got, err := svc.GetCarBookings(ctx, adminID, models.CarBookingsQuery{CarID: 1})
	require.NoError(t, err)
	assert.Len(t, got.Bookings, 2)
}

func TestCancel(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	// Владелец отменяет подтверждённую бронь
	got, err := svc.Cancel(ctx, ownerID, 1, "планы изменились")
	require.NoError(t, err)
	assert.Equal(t, "cancelled", got.Status)
	require.NotNil(t, got.CancellationReason)
	assert.Equal(t, "планы изменились", *got.CancellationReason)
	assert.NotNil(t, got.CancelledAt)
	assert.Equal(t, domain.StatusCancelled, repo.bookings[1].Status)

	// Повторная отмена отклоняется
	_, err = svc.Cancel(ctx, ownerID, 1, "ещё раз")
	require.ErrorIs(t, err, ErrAlreadyCancelled)

	// Посторонний не может отменить чужую бронь
	_, err = svc.Cancel(ctx, strangerID, 2, "")
	require.ErrorIs(t, err, ErrPermissionDenied)

	// Администратор может
	_, err = svc.Cancel(ctx, adminID, 2, "по запросу поддержки")
	require.NoError(t, err)
}

func TestMarkPaid(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	// Только владелец может оплатить
	_, err := svc.MarkPaid(ctx, adminID, 1)
	require.ErrorIs(t, err, ErrPermissionDenied)

	got, err := svc.MarkPaid(ctx, ownerID, 1)
	require.NoError(t, err)
	assert.Equal(t, "paid", got.Status)
	assert.Equal(t, domain.StatusPaid, repo.bookings[1].Status)

	// Уже оплаченную нельзя оплатить повторно
	_, err = svc.MarkPaid(ctx, ownerID, 2)
	require.ErrorIs(t, err, ErrNotPayable)

	// Отменённую нельзя оплатить
	_, err = svc.MarkPaid(ctx, ownerID, 3)
	require.ErrorIs(t, err, ErrNotPayable)
}
