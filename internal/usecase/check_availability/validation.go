package check_availability

import (
	"fmt"
	"time"
)

const timeFormat = time.RFC3339

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CarID <= 0 {
		return fmt.Errorf("%w: carID must be positive", ErrInvalidInput)
	}

	if req.Start.IsZero() {
		return fmt.Errorf("%w: start is required", ErrInvalidInput)
	}

	if req.End.IsZero() {
		return fmt.Errorf("%w: end is required", ErrInvalidInput)
	}

	// Полуоткрытый интервал [start, end) должен иметь положительную длину
	if !req.End.After(req.Start) {
		return fmt.Errorf("%w: end must be after start", ErrInvalidRange)
	}

	return nil
}
