package commit_booking

import (
	"context"
	"time"

	"github.com/m04kA/DriveX-RentalService/internal/domain"
	"github.com/m04kA/DriveX-RentalService/internal/integrations/identityservice"
	getQuote "github.com/m04kA/DriveX-RentalService/internal/usecase/get_quote"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	FindOverlapping(ctx context.Context, carID int64, start, end time.Time) ([]*domain.Booking, error)
}

// CarRepository интерфейс репозитория автомобилей
type CarRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Car, error)
}

// QuoteProvider интерфейс расчёта стоимости.
// Коммит повторяет расчёт тем же usecase, которым строился предварительный
// расчёт для пользователя: переданная клиентом детализация не принимается.
type QuoteProvider interface {
	Execute(ctx context.Context, req *getQuote.Request) (*getQuote.Response, error)
}

// IdentityClient интерфейс клиента IdentityService
type IdentityClient interface {
	GetUser(ctx context.Context, userID int64) (*identityservice.User, error)
}

// CarLocker интерфейс per-car замка, сериализующего коммиты по одному автомобилю
type CarLocker interface {
	Acquire(ctx context.Context, carID int64, wait time.Duration) (func(), error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// MetricsRecorder интерфейс счётчиков исходов коммита (опционально, может быть nil)
type MetricsRecorder interface {
	IncBookingCreated(status string)
	IncBookingConflict()
	IncLockContention()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
