package get_quote

import "time"

// Request модель запроса расчёта стоимости
type Request struct {
	CarID      int64     // ID автомобиля
	Start      time.Time // Начало аренды (включительно)
	End        time.Time // Конец аренды (не включительно)
	WithDriver bool      // Аренда с водителем
	CouponCode *string   // Код купона (опционально)
}

// Response модель ответа с детализацией стоимости.
// Детерминирована: одинаковые входные данные дают одинаковую детализацию.
type Response struct {
	CarID         int64
	Start         time.Time
	End           time.Time
	DurationHours float64
	DurationDays  int

	// Детализация стоимости (целые денежные единицы)
	BaseCost  int64
	DriverFee int64
	Tax       int64
	Discount  int64
	TotalCost int64

	// Применился ли купон. Несуществующий или отключённый купон
	// не является ошибкой: скидка просто равна нулю.
	CouponApplied bool
	CouponCode    *string // Канонический код применённого купона
}
