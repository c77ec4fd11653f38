package create_booking

import (
	"time"

	commitBooking "github.com/m04kA/DriveX-RentalService/internal/usecase/commit_booking"
)

// CreateBookingRequest HTTP request model.
// Детализация стоимости в теле не принимается: сервер пересчитывает
// её сам при коммите.
type CreateBookingRequest struct {
	CarID         int64   `json:"carId"`
	Start         string  `json:"start"` // ISO 8601
	End           string  `json:"end"`   // ISO 8601
	WithDriver    bool    `json:"withDriver"`
	CouponCode    *string `json:"couponCode,omitempty"`
	PaymentMethod string  `json:"paymentMethod"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID     int64  `json:"id"`
	UserID int64  `json:"userId"`
	CarID  int64  `json:"carId"`
	Start  string `json:"start"`
	End    string `json:"end"`
	Status string `json:"status"`

	BaseCost   int64 `json:"baseCost"`
	DriverFee  int64 `json:"driverFee"`
	Tax        int64 `json:"tax"`
	Discount   int64 `json:"discount"`
	TotalCost  int64 `json:"totalCost"`
	WithDriver bool  `json:"withDriver"`

	CouponApplied bool    `json:"couponApplied"`
	CouponCode    *string `json:"couponCode,omitempty"`
	PaymentMethod string  `json:"paymentMethod"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ConflictResponse HTTP модель ответа при занятом слоте
type ConflictResponse struct {
	Error         string `json:"error"`
	ConflictStart string `json:"conflictStart"`
	ConflictEnd   string `json:"conflictEnd"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*commitBooking.Request, error) {
	start, err := time.Parse(time.RFC3339, r.Start)
	if err != nil {
		return nil, err
	}

	end, err := time.Parse(time.RFC3339, r.End)
	if err != nil {
		return nil, err
	}

	return &commitBooking.Request{
		UserID:        userID,
		CarID:         r.CarID,
		Start:         start,
		End:           end,
		WithDriver:    r.WithDriver,
		CouponCode:    r.CouponCode,
		PaymentMethod: r.PaymentMethod,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *commitBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:            resp.ID,
		UserID:        resp.UserID,
		CarID:         resp.CarID,
		Start:         resp.Start.Format(time.RFC3339),
		End:           resp.End.Format(time.RFC3339),
		Status:        resp.Status,
		BaseCost:      resp.BaseCost,
		DriverFee:     resp.DriverFee,
		Tax:           resp.Tax,
		Discount:      resp.Discount,
		TotalCost:     resp.TotalCost,
		WithDriver:    resp.WithDriver,
		CouponApplied: resp.CouponApplied,
		CouponCode:    resp.CouponCode,
		PaymentMethod: resp.PaymentMethod,
		CreatedAt:     resp.CreatedAt,
		UpdatedAt:     resp.UpdatedAt,
	}
}
