package catalog

import (
	"context"

	"github.com/m04kA/DriveX-RentalService/internal/domain"
	"github.com/m04kA/DriveX-RentalService/internal/integrations/identityservice"
)

// CarRepository интерфейс репозитория автомобилей
type CarRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Car, error)
	List(ctx context.Context, onlyAvailable bool) ([]*domain.Car, error)
	Create(ctx context.Context, c *domain.Car) (*domain.Car, error)
	Update(ctx context.Context, id int64, c *domain.Car) (*domain.Car, error)
}

// CouponRepository интерфейс репозитория купонов
type CouponRepository interface {
	GetByCode(ctx context.Context, code string) (*domain.Coupon, error)
	List(ctx context.Context) ([]*domain.Coupon, error)
	Create(ctx context.Context, c *domain.Coupon) (*domain.Coupon, error)
	Deactivate(ctx context.Context, code string) error
}

// IdentityClient интерфейс клиента IdentityService
type IdentityClient interface {
	GetUser(ctx context.Context, userID int64) (*identityservice.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
