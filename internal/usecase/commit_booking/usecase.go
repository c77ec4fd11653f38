package commit_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/DriveX-RentalService/internal/domain"
	"github.com/m04kA/DriveX-RentalService/internal/infra/carlock"
	carRepo "github.com/m04kA/DriveX-RentalService/internal/infra/storage/car"
	"github.com/m04kA/DriveX-RentalService/internal/integrations/identityservice"
	getQuote "github.com/m04kA/DriveX-RentalService/internal/usecase/get_quote"
	"github.com/m04kA/DriveX-RentalService/pkg/txmanager"
)

// UseCase use case коммита бронирования
type UseCase struct {
	bookingRepo BookingRepository
	carRepo     CarRepository
	quotes      QuoteProvider
	identity    IdentityClient
	locker      CarLocker
	txManager   TransactionManager
	metrics     MetricsRecorder
	logger      Logger

	lockWait time.Duration
}

// NewUseCase создает новый экземпляр use case.
// metrics может быть nil, если сбор метрик отключён.
func NewUseCase(
	bookingRepo BookingRepository,
	carRepo CarRepository,
	quotes QuoteProvider,
	identity IdentityClient,
	locker CarLocker,
	txManager TransactionManager,
	metrics MetricsRecorder,
	logger Logger,
	lockWait time.Duration,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		carRepo:     carRepo,
		quotes:      quotes,
		identity:    identity,
		locker:      locker,
		txManager:   txManager,
		metrics:     metrics,
		logger:      logger,
		lockWait:    lockWait,
	}
}

// Execute атомарно создаёт бронирование.
//
// Протокол коммита:
//  1. per-car замок в Redis сериализует коммиты по одному автомобилю;
//  2. стоимость пересчитывается на сервере тем же кодом, что и
//     предварительный расчёт;
//  3. сериализуемая транзакция перечитывает пересечения с блокировкой
//     строк и вставляет бронирование.
//
// Проверка пересечений и вставка происходят в одной транзакции:
// окно между проверкой и записью закрыто.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CommitBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем пользователя и статус KYC верификации
	user, err := uc.identity.GetUser(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, identityservice.ErrUserNotFound) {
			uc.logger.Warn("CommitBooking: user id=%d not found", req.UserID)
			return nil, ErrUserNotFound
		}
		uc.logger.Error("CommitBooking: failed to get user id=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}
	if !user.IsKYCApproved() {
		uc.logger.Warn("CommitBooking: user id=%d kyc status=%s, booking rejected", req.UserID, user.KYCStatus)
		return nil, ErrUserNotVerified
	}

	// 3. Проверяем, что автомобиль существует и доступен для брони
	car, err := uc.carRepo.GetByID(ctx, req.CarID)
	if err != nil {
		if errors.Is(err, carRepo.ErrCarNotFound) {
			uc.logger.Warn("CommitBooking: car id=%d not found", req.CarID)
			return nil, ErrCarNotFound
		}
		uc.logger.Error("CommitBooking: failed to get car id=%d: %v", req.CarID, err)
		return nil, fmt.Errorf("%w: failed to get car: %v", ErrInternal, err)
	}
	if !car.CanBeBooked() {
		uc.logger.Warn("CommitBooking: car id=%d is not available for booking", req.CarID)
		return nil, ErrCarNotAvailable
	}

	// 4. Берём per-car замок: коммиты по одному автомобилю идут по очереди
	release, err := uc.locker.Acquire(ctx, req.CarID, uc.lockWait)
	if err != nil {
		if errors.Is(err, carlock.ErrLockBusy) {
			uc.logger.Warn("CommitBooking: car id=%d lock is busy", req.CarID)
			uc.incLockContention()
			return nil, ErrBusy
		}
		uc.logger.Error("CommitBooking: failed to acquire lock for car id=%d: %v", req.CarID, err)
		return nil, fmt.Errorf("%w: failed to acquire car lock: %v", ErrInternal, err)
	}
	defer release()

	// 5. Пересчитываем стоимость на сервере. Детализация из запроса клиента
	// не принимается ни в каком виде.
	quote, err := uc.quotes.Execute(ctx, &getQuote.Request{
		CarID:      req.CarID,
		Start:      req.Start,
		End:        req.End,
		WithDriver: req.WithDriver,
		CouponCode: req.CouponCode,
	})
	if err != nil {
		return nil, mapQuoteErr(err)
	}

	booking := &domain.Booking{
		UserID:        req.UserID,
		CarID:         req.CarID,
		StartAt:       req.Start,
		EndAt:         req.End,
		Status:        domain.InitialStatusFor(domain.PaymentMethod(req.PaymentMethod)),
		BaseCost:      quote.BaseCost,
		DriverFee:     quote.DriverFee,
		Tax:           quote.Tax,
		Discount:      quote.Discount,
		TotalCost:     quote.TotalCost,
		WithDriver:    req.WithDriver,
		CouponCode:    quote.CouponCode,
		PaymentMethod: domain.PaymentMethod(req.PaymentMethod),
	}

	// 6. Сериализуемая транзакция: перечитываем пересечения с FOR UPDATE
	// и вставляем бронирование
	var created *domain.Booking
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		overlapping, err := uc.bookingRepo.FindOverlapping(txCtx, req.CarID, req.Start, req.End)
		if err != nil {
			return fmt.Errorf("failed to find overlapping bookings: %w", err)
		}
		if len(overlapping) > 0 {
			conflict := overlapping[0]
			return &SlotConflictError{
				ConflictStart: conflict.StartAt,
				ConflictEnd:   conflict.EndAt,
			}
		}

		created, err = uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}
		return nil
	})
	if err != nil {
		var conflict *SlotConflictError
		switch {
		case errors.As(err, &conflict):
			uc.logger.Warn("CommitBooking: car id=%d slot [%s, %s) conflicts with [%s, %s)",
				req.CarID, req.Start.Format(time.RFC3339), req.End.Format(time.RFC3339),
				conflict.ConflictStart.Format(time.RFC3339), conflict.ConflictEnd.Format(time.RFC3339))
			uc.incBookingConflict()
			return nil, conflict
		case errors.Is(err, txmanager.ErrSerialization):
			uc.logger.Warn("CommitBooking: car id=%d serialization retries exhausted", req.CarID)
			uc.incLockContention()
			return nil, ErrBusy
		default:
			uc.logger.Error("CommitBooking: transaction failed for car id=%d: %v", req.CarID, err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("CommitBooking: booking id=%d created, car=%d, user=%d, status=%s, total=%d",
		created.ID, created.CarID, created.UserID, created.Status, created.TotalCost)
	uc.incBookingCreated(string(created.Status))

	return &Response{
		ID:            created.ID,
		UserID:        created.UserID,
		CarID:         created.CarID,
		Start:         created.StartAt,
		End:           created.EndAt,
		Status:        string(created.Status),
		BaseCost:      created.BaseCost,
		DriverFee:     created.DriverFee,
		Tax:           created.Tax,
		Discount:      created.Discount,
		TotalCost:     created.TotalCost,
		WithDriver:    created.WithDriver,
		CouponApplied: created.CouponCode != nil,
		CouponCode:    created.CouponCode,
		PaymentMethod: string(created.PaymentMethod),
		CreatedAt:     created.CreatedAt,
		UpdatedAt:     created.UpdatedAt,
	}, nil
}

// mapQuoteErr переводит ошибки расчёта стоимости в ошибки коммита
func mapQuoteErr(err error) error {
	switch {
	case errors.Is(err, getQuote.ErrCarNotFound):
		return ErrCarNotFound
	case errors.Is(err, getQuote.ErrInvalidRange):
		return ErrInvalidRange
	case errors.Is(err, getQuote.ErrDurationTooShort):
		return ErrDurationTooShort
	case errors.Is(err, getQuote.ErrDurationTooLong):
		return ErrDurationTooLong
	case errors.Is(err, getQuote.ErrInvalidInput):
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	default:
		return fmt.Errorf("%w: failed to compute quote: %v", ErrInternal, err)
	}
}

func (uc *UseCase) incBookingCreated(status string) {
	if uc.metrics != nil {
		uc.metrics.IncBookingCreated(status)
	}
}

func (uc *UseCase) incBookingConflict() {
	if uc.metrics != nil {
		uc.metrics.IncBookingConflict()
	}
}

func (uc *UseCase) incLockContention() {
	if uc.metrics != nil {
		uc.metrics.IncLockContention()
	}
}
