package check_availability

import (
	"context"
	"errors"
	"fmt"

	carRepo "github.com/m04kA/DriveX-RentalService/internal/infra/storage/car"
)

// UseCase use case проверки доступности автомобиля на интервал
type UseCase struct {
	bookingRepo BookingRepository
	carRepo     CarRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, carRepo CarRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		carRepo:     carRepo,
		logger:      logger,
	}
}

// Execute выполняет проверку доступности.
// Операция только читает: её можно вызывать многократно и конкурентно,
// окончательная проверка всё равно выполняется при коммите бронирования.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: car=%d, start=%s, end=%s",
		req.CarID, req.Start.Format(timeFormat), req.End.Format(timeFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование автомобиля
	if _, err := uc.carRepo.GetByID(ctx, req.CarID); err != nil {
		if errors.Is(err, carRepo.ErrCarNotFound) {
			uc.logger.Warn("CheckAvailability: car id=%d not found", req.CarID)
			return nil, ErrCarNotFound
		}
		uc.logger.Error("CheckAvailability: failed to get car id=%d: %v", req.CarID, err)
		return nil, fmt.Errorf("%w: failed to get car: %v", ErrInternal, err)
	}

	// 3. Ищем пересечения с активными бронированиями
	overlapping, err := uc.bookingRepo.FindOverlapping(ctx, req.CarID, req.Start, req.End)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to find overlapping bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to find overlapping bookings: %v", ErrInternal, err)
	}

	resp := &Response{
		CarID:     req.CarID,
		Start:     req.Start,
		End:       req.End,
		Available: len(overlapping) == 0,
	}

	if !resp.Available {
		// Возвращаем первый конфликт для отображения пользователю
		conflict := overlapping[0]
		resp.ConflictStart = &conflict.StartAt
		resp.ConflictEnd = &conflict.EndAt
		uc.logger.Info("CheckAvailability: car=%d busy, conflict [%s, %s)",
			req.CarID, conflict.StartAt.Format(timeFormat), conflict.EndAt.Format(timeFormat))
	} else {
		uc.logger.Info("CheckAvailability: car=%d available", req.CarID)
	}

	return resp, nil
}
