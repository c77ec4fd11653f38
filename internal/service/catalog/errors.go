package catalog

import "errors"

var (
	// ErrCarNotFound возвращается, когда автомобиль не найден
	ErrCarNotFound = errors.New("service/catalog: car not found")

	// ErrCouponNotFound возвращается, когда купон не найден
	ErrCouponNotFound = errors.New("service/catalog: coupon not found")

	// ErrDuplicateCoupon возвращается при создании купона с существующим кодом
	ErrDuplicateCoupon = errors.New("service/catalog: coupon code already exists")

	// ErrPermissionDenied возвращается, когда операция требует прав администратора
	ErrPermissionDenied = errors.New("service/catalog: permission denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("service/catalog: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service/catalog: internal error")
)
