package commit_booking

import (
	"errors"
	"fmt"

	"github.com/m04kA/DriveX-RentalService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.CarID <= 0 {
		return fmt.Errorf("%w: carID must be positive", ErrInvalidInput)
	}

	if req.Start.IsZero() {
		return fmt.Errorf("%w: start is required", ErrInvalidInput)
	}

	if req.End.IsZero() {
		return fmt.Errorf("%w: end is required", ErrInvalidInput)
	}

	if !domain.PaymentMethod(req.PaymentMethod).IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidPaymentMethod, req.PaymentMethod)
	}

	if err := domain.ValidateRentalWindow(req.Start, req.End); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidRange):
			return ErrInvalidRange
		case errors.Is(err, domain.ErrRentalTooShort):
			return ErrDurationTooShort
		case errors.Is(err, domain.ErrRentalTooLong):
			return ErrDurationTooLong
		default:
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}

	return nil
}
