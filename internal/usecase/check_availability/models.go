package check_availability

import "time"

// Request модель запроса проверки доступности
type Request struct {
	CarID int64     // ID автомобиля
	Start time.Time // Начало интервала (включительно)
	End   time.Time // Конец интервала (не включительно)
}

// Response модель ответа проверки доступности
type Response struct {
	CarID     int64
	Start     time.Time
	End       time.Time
	Available bool

	// Первый конфликтующий интервал, если слот занят
	ConflictStart *time.Time
	ConflictEnd   *time.Time
}
