package commit_booking

import "time"

// Request модель запроса на коммит бронирования
type Request struct {
	UserID        int64     // ID аутентифицированного пользователя
	CarID         int64     // ID автомобиля
	Start         time.Time // Начало аренды (включительно)
	End           time.Time // Конец аренды (не включительно)
	WithDriver    bool      // Аренда с водителем
	CouponCode    *string   // Код купона (опционально)
	PaymentMethod string    // Способ оплаты (card, upi, netbanking, cash, pay_later)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID     int64
	UserID int64
	CarID  int64

	Start  time.Time
	End    time.Time
	Status string

	// Детализация стоимости, зафиксированная при коммите
	BaseCost      int64
	DriverFee     int64
	Tax           int64
	Discount      int64
	TotalCost     int64
	WithDriver    bool
	CouponApplied bool
	CouponCode    *string

	PaymentMethod string

	CreatedAt time.Time
	UpdatedAt time.Time
}
