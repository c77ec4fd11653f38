package get_quote

import (
	"time"

	getQuote "github.com/m04kA/DriveX-RentalService/internal/usecase/get_quote"
)

// QuoteRequest HTTP request model
type QuoteRequest struct {
	CarID      int64   `json:"carId"`
	Start      string  `json:"start"` // ISO 8601
	End        string  `json:"end"`   // ISO 8601
	WithDriver bool    `json:"withDriver"`
	CouponCode *string `json:"couponCode,omitempty"`
}

// QuoteResponse HTTP response model
type QuoteResponse struct {
	CarID         int64   `json:"carId"`
	Start         string  `json:"start"`
	End           string  `json:"end"`
	DurationHours float64 `json:"durationHours"`
	DurationDays  int     `json:"durationDays"`

	BaseCost  int64 `json:"baseCost"`
	DriverFee int64 `json:"driverFee"`
	Tax       int64 `json:"tax"`
	Discount  int64 `json:"discount"`
	TotalCost int64 `json:"totalCost"`

	CouponApplied bool    `json:"couponApplied"`
	CouponCode    *string `json:"couponCode,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *QuoteRequest) ToUseCaseRequest() (*getQuote.Request, error) {
	start, err := time.Parse(time.RFC3339, r.Start)
	if err != nil {
		return nil, err
	}

	end, err := time.Parse(time.RFC3339, r.End)
	if err != nil {
		return nil, err
	}

	return &getQuote.Request{
		CarID:      r.CarID,
		Start:      start,
		End:        end,
		WithDriver: r.WithDriver,
		CouponCode: r.CouponCode,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *getQuote.Response) *QuoteResponse {
	return &QuoteResponse{
		CarID:         resp.CarID,
		Start:         resp.Start.Format(time.RFC3339),
		End:           resp.End.Format(time.RFC3339),
		DurationHours: resp.DurationHours,
		DurationDays:  resp.DurationDays,
		BaseCost:      resp.BaseCost,
		DriverFee:     resp.DriverFee,
		Tax:           resp.Tax,
		Discount:      resp.Discount,
		TotalCost:     resp.TotalCost,
		CouponApplied: resp.CouponApplied,
		CouponCode:    resp.CouponCode,
	}
}
