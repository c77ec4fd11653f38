package commit_booking

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/DriveX-RentalService/internal/domain"
	"github.com/m04kA/DriveX-RentalService/internal/infra/carlock"
	carRepo "github.com/m04kA/DriveX-RentalService/internal/infra/storage/car"
	couponRepo "github.com/m04kA/DriveX-RentalService/internal/infra/storage/coupon"
	"github.com/m04kA/DriveX-RentalService/internal/integrations/identityservice"
	getQuote "github.com/m04kA/DriveX-RentalService/internal/usecase/get_quote"
	"github.com/m04kA/DriveX-RentalService/pkg/txmanager"
)

// Фейки хранилищ

type fakeBookingRepo struct {
	mu       sync.Mutex
	nextID   int64
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) FindOverlapping(_ context.Context, carID int64, start, end time.Time) ([]*domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []*domain.Booking
	for _, b := range f.bookings {
		if b.CarID == carID && b.IsActive() && b.Overlaps(start, end) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.nextID++
	created := *b
	created.ID = f.nextID
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	f.bookings = append(f.bookings, &created)

	out := created
	return &out, nil
}

func (f *fakeBookingRepo) all() []*domain.Booking {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*domain.Booking(nil), f.bookings...)
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

type fakeCouponRepo struct{}

func (fakeCouponRepo) GetByCode(_ context.Context, _ string) (*domain.Coupon, error) {
	return nil, couponRepo.ErrCouponNotFound
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

// fakeLocker повторяет семантику carlock.Locker на мьютексе
type fakeLocker struct {
	mu   sync.Mutex
	held map[int64]bool
}

func newFakeLocker() *fakeLocker {
	return &fakeLocker{held: make(map[int64]bool)}
}

func (l *fakeLocker) Acquire(_ context.Context, carID int64, wait time.Duration) (func(), error) {
	deadline := time.Now().Add(wait)
	for {
		l.mu.Lock()
		if !l.held[carID] {
			l.held[carID] = true
			l.mu.Unlock()
			return func() {
				l.mu.Lock()
				delete(l.held, carID)
				l.mu.Unlock()
			}, nil
		}
		l.mu.Unlock()

		if time.Now().After(deadline) {
			return nil, carlock.ErrLockBusy
		}
		time.Sleep(time.Millisecond)
	}
}

type busyLocker struct{}

func (busyLocker) Acquire(_ context.Context, _ int64, _ time.Duration) (func(), error) {
	return nil, carlock.ErrLockBusy
}

type fakeTxManager struct {
	err error
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if f.err != nil {
		return f.err
	}
	return fn(ctx)
}

type fakeMetrics struct {
	mu        sync.Mutex
	created   map[string]int
	conflicts int
	lockBusy  int
}

func newFakeMetrics() *fakeMetrics {
	return &fakeMetrics{created: make(map[string]int)}
}

func (f *fakeMetrics) IncBookingCreated(status string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created[status]++
}

func (f *fakeMetrics) IncBookingConflict() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.conflicts++
}

func (f *fakeMetrics) IncLockContention() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lockBusy++
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Сборка use case

type fixture struct {
	uc       *UseCase
	bookings *fakeBookingRepo
	metrics  *fakeMetrics
	quotes   *getQuote.UseCase
}

func newFixture(t *testing.T, opts ...func(*fixtureConfig)) *fixture {
	t.Helper()

	cfg := &fixtureConfig{
		locker:    newFakeLocker(),
		txManager: &fakeTxManager{},
		users: map[int64]*identityservice.User{
			10: {ID: 10, Name: "Arjun", KYCStatus: identityservice.KYCStatusApproved},
			11: {ID: 11, Name: "Priya", KYCStatus: identityservice.KYCStatusPending},
		},
	}
	for _, opt := range opts {
		opt(cfg)
	}

	cars := &fakeCarRepo{cars: map[int64]*domain.Car{
		1: {ID: 1, Name: "Swift", HourlyRate: 100, IsAvailable: true},
		2: {ID: 2, Name: "Innova", HourlyRate: 200, IsAvailable: false},
	}}
	bookings := &fakeBookingRepo{}
	metrics := newFakeMetrics()
	quotes := getQuote.NewUseCase(cars, fakeCouponRepo{}, nopLogger{})

	uc := NewUseCase(
		bookings,
		cars,
		quotes,
		&fakeIdentity{users: cfg.users},
		cfg.locker,
		cfg.txManager,
		metrics,
		nopLogger{},
		100*time.Millisecond,
	)

	return &fixture{uc: uc, bookings: bookings, metrics: metrics, quotes: quotes}
}

type fixtureConfig struct {
	locker    CarLocker
	txManager TransactionManager
	users     map[int64]*identityservice.User
}

func ts(t *testing.T, s string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, s)
	require.NoError(t, err)
	return parsed
}

func validRequest(t *testing.T) *Request {
	return &Request{
		UserID:        10,
		CarID:         1,
		Start:         ts(t, "2026-03-01T10:00:00Z"),
		End:           ts(t, "2026-03-02T10:00:00Z"),
		PaymentMethod: "card",
	}
}

// Тесты

func TestCommitBooking_ImmediatePaymentGetsPaidStatus(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.Execute(context.Background(), validRequest(t))
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusPaid), resp.Status)
	assert.Equal(t, int64(3048), resp.TotalCost)
	assert.Equal(t, 1, f.metrics.created["paid"])
}

func TestCommitBooking_DeferredPaymentGetsConfirmedStatus(t *testing.T) {
	f := newFixture(t)

	req := validRequest(t)
	req.PaymentMethod = "cash"

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, 1, f.metrics.created["confirmed"])
}

func TestCommitBooking_CostMatchesQuote(t *testing.T) {
	f := newFixture(t)
	req := validRequest(t)
	req.WithDriver = true

	quote, err := f.quotes.Execute(context.Background(), &getQuote.Request{
		CarID:      req.CarID,
		Start:      req.Start,
		End:        req.End,
		WithDriver: true,
	})
	require.NoError(t, err)

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	// Коммит пересчитывает стоимость тем же кодом, что и предварительный расчёт
	assert.Equal(t, quote.BaseCost, resp.BaseCost)
	assert.Equal(t, quote.DriverFee, resp.DriverFee)
	assert.Equal(t, quote.Tax, resp.Tax)
	assert.Equal(t, quote.TotalCost, resp.TotalCost)
}

func TestCommitBooking_ConflictCarriesInterval(t *testing.T) {
	f := newFixture(t)

	first, err := f.uc.Execute(context.Background(), validRequest(t))
	require.NoError(t, err)

	// Второй коммит на пересекающийся интервал
	req := validRequest(t)
	req.Start = req.Start.Add(2 * time.Hour)
	req.End = req.End.Add(2 * time.Hour)

	_, err = f.uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrSlotUnavailable)

	var conflict *SlotConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, first.Start, conflict.ConflictStart)
	assert.Equal(t, first.End, conflict.ConflictEnd)
	assert.Equal(t, 1, f.metrics.conflicts)
}

func TestCommitBooking_BackToBackSucceeds(t *testing.T) {
	f := newFixture(t)

	first, err := f.uc.Execute(context.Background(), validRequest(t))
	require.NoError(t, err)

	// Начало ровно в момент окончания первой брони
	req := validRequest(t)
	req.Start = first.End
	req.End = first.End.Add(24 * time.Hour)

	_, err = f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
}

func TestCommitBooking_LockBusy(t *testing.T) {
	f := newFixture(t, func(cfg *fixtureConfig) {
		cfg.locker = busyLocker{}
	})

	_, err := f.uc.Execute(context.Background(), validRequest(t))
	require.ErrorIs(t, err, ErrBusy)
	assert.Equal(t, 1, f.metrics.lockBusy)
	assert.Empty(t, f.bookings.all())
}

func TestCommitBooking_SerializationRetriesExhausted(t *testing.T) {
	f := newFixture(t, func(cfg *fixtureConfig) {
		cfg.txManager = &fakeTxManager{
			err: fmt.Errorf("%w: giving up after retries", txmanager.ErrSerialization),
		}
	})

	_, err := f.uc.Execute(context.Background(), validRequest(t))
	require.ErrorIs(t, err, ErrBusy)
}

func TestCommitBooking_UserChecks(t *testing.T) {
	f := newFixture(t)

	req := validRequest(t)
	req.UserID = 11 // KYC pending
	_, err := f.uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrUserNotVerified)

	req.UserID = 999
	_, err = f.uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestCommitBooking_CarChecks(t *testing.T) {
	f := newFixture(t)

	req := validRequest(t)
	req.CarID = 999
	_, err := f.uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrCarNotFound)

	req.CarID = 2 // снят с линии
	_, err = f.uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrCarNotAvailable)
}

func TestCommitBooking_InvalidPaymentMethod(t *testing.T) {
	f := newFixture(t)

	req := validRequest(t)
	req.PaymentMethod = "bitcoin"

	_, err := f.uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrInvalidPaymentMethod)
}

func TestCommitBooking_DurationPolicy(t *testing.T) {
	f := newFixture(t)

	req := validRequest(t)
	req.End = req.Start.Add(23 * time.Hour)
	_, err := f.uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrDurationTooShort)

	req.End = req.Start.Add(31 * 24 * time.Hour)
	_, err = f.uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrDurationTooLong)
}

// Конкурентные коммиты одного интервала: ровно один успех,
// и в хранилище никогда не появляется пара пересекающихся активных броней.
func TestCommitBooking_ConcurrentCommitsExactlyOneSucceeds(t *testing.T) {
	f := newFixture(t)

	const workers = 8
	var wg sync.WaitGroup
	results := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.uc.Execute(context.Background(), validRequest(t))
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var succeeded, conflicted, busy int
	for err := range results {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, ErrSlotUnavailable):
			conflicted++
		case errors.Is(err, ErrBusy):
			busy++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, workers-1, conflicted+busy)

	// Инвариант: активные брони одного автомобиля попарно не пересекаются
	stored := f.bookings.all()
	require.Len(t, stored, 1)
	for i := 0; i < len(stored); i++ {
		for j := i + 1; j < len(stored); j++ {
			a, b := stored[i], stored[j]
			if a.CarID == b.CarID && a.IsActive() && b.IsActive() {
				assert.False(t, a.Overlaps(b.StartAt, b.EndAt),
					"bookings %d and %d overlap", a.ID, b.ID)
			}
		}
	}
}
