package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/DriveX-RentalService/internal/domain"
	carRepo "github.com/m04kA/DriveX-RentalService/internal/infra/storage/car"
	couponRepo "github.com/m04kA/DriveX-RentalService/internal/infra/storage/coupon"
	"github.com/m04kA/DriveX-RentalService/internal/integrations/identityservice"
	"github.com/m04kA/DriveX-RentalService/internal/service/catalog/models"
	"github.com/m04kA/DriveX-RentalService/pkg/ptr"
)

type fakeCarRepo struct {
	nextID int64
	cars   map[int64]*domain.Car
}

func (f *fakeCarRepo) GetByID(_ context.Context, id int64) (*domain.Car, error) {
	car, ok := f.cars[id]
	if !ok {
		return nil, carRepo.ErrCarNotFound
	}
	copied := *car
	return &copied, nil
}

func (f *fakeCarRepo) List(_ context.Context, onlyAvailable bool) ([]*domain.Car, error) {
	var out []*domain.Car
	for _, car := range f.cars {
		if onlyAvailable && !car.IsAvailable {
			continue
		}
		out = append(out, car)
	}
	return out, nil
}

func (f *fakeCarRepo) Create(_ context.Context, c *domain.Car) (*domain.Car, error) {
	f.nextID++
	created := *c
	created.ID = f.nextID
	f.cars[created.ID] = &created
	return &created, nil
}

func (f *fakeCarRepo) Update(_ context.Context, id int64, c *domain.Car) (*domain.Car, error) {
	if _, ok := f.cars[id]; !ok {
		return nil, carRepo.ErrCarNotFound
	}
	updated := *c
	updated.ID = id
	f.cars[id] = &updated
	return &updated, nil
}

type fakeCouponRepo struct {
	coupons map[string]*domain.Coupon
}

func (f *fakeCouponRepo) GetByCode(_ context.Context, code string) (*domain.Coupon, error) {
	coupon, ok := f.coupons[code]
	if !ok {
		return nil, couponRepo.ErrCouponNotFound
	}
	return coupon, nil
}

func (f *fakeCouponRepo) List(_ context.Context) ([]*domain.Coupon, error) {
	var out []*domain.Coupon
	for _, c := range f.coupons {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCouponRepo) Create(_ context.Context, c *domain.Coupon) (*domain.Coupon, error) {
	if _, ok := f.coupons[c.Code]; ok {
		return nil, couponRepo.ErrDuplicateCoupon
	}
	created := *c
	created.ID = int64(len(f.coupons) + 1)
	f.coupons[created.Code] = &created
	return &created, nil
}

func (f *fakeCouponRepo) Deactivate(_ context.Context, code string) error {
	coupon, ok := f.coupons[code]
	if !ok {
		return couponRepo.ErrCouponNotFound
	}
	coupon.IsActive = false
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

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const (
	userID  = int64(10)
	adminID = int64(30)
)

func newTestService() (*Service, *fakeCarRepo, *fakeCouponRepo) {
	cars := &fakeCarRepo{nextID: 1, cars: map[int64]*domain.Car{
		1: {ID: 1, Name: "Swift", HourlyRate: 100, IsAvailable: true},
	}}
	coupons := &fakeCouponRepo{coupons: map[string]*domain.Coupon{
		"WELCOME20": {ID: 1, Code: "WELCOME20", DiscountAmount: 200, IsActive: true},
	}}
	identity := &fakeIdentity{users: map[int64]*identityservice.User{
		userID:  {ID: userID},
		adminID: {ID: adminID, IsAdmin: true},
	}}
	return NewService(cars, coupons, identity, nopLogger{}), cars, coupons
}

func TestCreateCar_AdminOnly(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	req := models.CreateCarRequest{Name: "Innova", HourlyRate: 200, IsAvailable: true}

	_, err := svc.CreateCar(ctx, userID, req)
	require.ErrorIs(t, err, ErrPermissionDenied)

	got, err := svc.CreateCar(ctx, adminID, req)
	require.NoError(t, err)
	assert.Equal(t, "Innova", got.Name)
}

func TestCreateCar_Validation(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.CreateCar(ctx, adminID, models.CreateCarRequest{HourlyRate: 100})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.CreateCar(ctx, adminID, models.CreateCarRequest{Name: "Swift", HourlyRate: 0})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateCar_PartialUpdate(t *testing.T) {
	svc, cars, _ := newTestService()
	ctx := context.Background()

	got, err := svc.UpdateCar(ctx, adminID, 1, models.UpdateCarRequest{
		HourlyRate:  ptr.Ptr(int64(150)),
		IsAvailable: ptr.Ptr(false),
	})
	require.NoError(t, err)

	// Изменённые поля обновлены, остальные сохранены
	assert.Equal(t, int64(150), got.HourlyRate)
	assert.False(t, got.IsAvailable)
	assert.Equal(t, "Swift", got.Name)
	assert.Equal(t, int64(150), cars.cars[1].HourlyRate)
}

func TestUpdateCar_NotFound(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.UpdateCar(context.Background(), adminID, 999, models.UpdateCarRequest{})
	require.ErrorIs(t, err, ErrCarNotFound)
}

func TestCreateCoupon(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	// Код нормализуется при создании
	got, err := svc.CreateCoupon(ctx, adminID, models.CreateCouponRequest{
		Code:           "  summer10 ",
		DiscountAmount: 100,
	})
	require.NoError(t, err)
	assert.Equal(t, "SUMMER10", got.Code)
	assert.True(t, got.IsActive)

	// Дубликат отклоняется
	_, err = svc.CreateCoupon(ctx, adminID, models.CreateCouponRequest{
		Code:           "welcome20",
		DiscountAmount: 300,
	})
	require.ErrorIs(t, err, ErrDuplicateCoupon)

	// Не администратор не может
	_, err = svc.CreateCoupon(ctx, userID, models.CreateCouponRequest{Code: "X", DiscountAmount: 1})
	require.ErrorIs(t, err, ErrPermissionDenied)
}

func TestDeactivateCoupon(t *testing.T) {
	svc, _, coupons := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.DeactivateCoupon(ctx, adminID, "welcome20"))
	assert.False(t, coupons.coupons["WELCOME20"].IsActive)

	require.ErrorIs(t, svc.DeactivateCoupon(ctx, adminID, "NOPE"), ErrCouponNotFound)
	require.ErrorIs(t, svc.DeactivateCoupon(ctx, userID, "welcome20"), ErrPermissionDenied)
}

func TestListCars_OnlyAvailable(t *testing.T) {
	svc, cars, _ := newTestService()
	cars.cars[2] = &domain.Car{ID: 2, Name: "Innova", HourlyRate: 200, IsAvailable: false}

	got, err := svc.ListCars(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, got.Cars, 1)
	assert.Equal(t, "Swift", got.Cars[0].Name)

	got, err = svc.ListCars(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, got.Cars, 2)
}
