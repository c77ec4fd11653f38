package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("service/bookings: booking not found")

	// ErrPermissionDenied возвращается, когда у пользователя нет прав на операцию
	ErrPermissionDenied = errors.New("service/bookings: permission denied")

	// ErrAlreadyCancelled возвращается при повторной отмене бронирования
	ErrAlreadyCancelled = errors.New("service/bookings: booking is already cancelled")

	// ErrNotPayable возвращается, когда бронирование нельзя оплатить
	// (отменено или уже оплачено)
	ErrNotPayable = errors.New("service/bookings: booking cannot be paid")

	// ErrInvalidStatus возвращается при неизвестном статусе в фильтре
	ErrInvalidStatus = errors.New("service/bookings: invalid booking status")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service/bookings: internal error")
)
