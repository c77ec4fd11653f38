package commit_booking

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrUserNotFound возвращается, когда пользователь не найден в IdentityService
	ErrUserNotFound = errors.New("commit_booking: user not found")

	// ErrUserNotVerified возвращается, когда KYC верификация пользователя
	// не находится в статусе approved
	ErrUserNotVerified = errors.New("commit_booking: user is not verified")

	// ErrCarNotFound возвращается, когда автомобиль не найден
	ErrCarNotFound = errors.New("commit_booking: car not found")

	// ErrCarNotAvailable возвращается, когда автомобиль снят с линии
	ErrCarNotAvailable = errors.New("commit_booking: car is not available for booking")

	// ErrInvalidRange возвращается при пустом или перевёрнутом интервале
	ErrInvalidRange = errors.New("commit_booking: invalid time range")

	// ErrDurationTooShort возвращается, когда интервал короче 24 часов
	ErrDurationTooShort = errors.New("commit_booking: rental shorter than 24 hours")

	// ErrDurationTooLong возвращается, когда интервал превышает 30 дней
	ErrDurationTooLong = errors.New("commit_booking: rental longer than 30 days")

	// ErrInvalidPaymentMethod возвращается при неизвестном способе оплаты
	ErrInvalidPaymentMethod = errors.New("commit_booking: invalid payment method")

	// ErrSlotUnavailable возвращается, когда интервал пересекается с активным
	// бронированием. Конкретный конфликт несёт SlotConflictError.
	ErrSlotUnavailable = errors.New("commit_booking: slot is not available")

	// ErrBusy возвращается, когда не удалось взять per-car замок или
	// сериализуемая транзакция исчерпала повторы. Ошибка retryable:
	// вызывающий повторяет весь цикл quote-then-commit с backoff.
	ErrBusy = errors.New("commit_booking: car is busy, retry later")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("commit_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("commit_booking: internal error")
)

// SlotConflictError ошибка пересечения интервалов.
// Несёт границы конфликтующего бронирования для отображения пользователю.
// errors.Is(err, ErrSlotUnavailable) == true.
type SlotConflictError struct {
	ConflictStart time.Time
	ConflictEnd   time.Time
}

func (e *SlotConflictError) Error() string {
	return fmt.Sprintf("commit_booking: slot is not available, conflicts with [%s, %s)",
		e.ConflictStart.Format(time.RFC3339), e.ConflictEnd.Format(time.RFC3339))
}

func (e *SlotConflictError) Unwrap() error {
	return ErrSlotUnavailable
}
