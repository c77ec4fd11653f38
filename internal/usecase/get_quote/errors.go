package get_quote

import "errors"

var (
	// ErrCarNotFound возвращается, когда автомобиль не найден
	ErrCarNotFound = errors.New("get_quote: car not found")

	// ErrInvalidRange возвращается при пустом или перевёрнутом интервале
	ErrInvalidRange = errors.New("get_quote: invalid time range")

	// ErrDurationTooShort возвращается, когда интервал короче минимальной
	// расчётной единицы (24 часа)
	ErrDurationTooShort = errors.New("get_quote: rental shorter than 24 hours")

	// ErrDurationTooLong возвращается, когда интервал превышает 30 дней
	ErrDurationTooLong = errors.New("get_quote: rental longer than 30 days")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_quote: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_quote: internal error")
)
