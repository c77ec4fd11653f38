package check_availability

import (
	"time"

	checkAvailability "github.com/m04kA/DriveX-RentalService/internal/usecase/check_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	CarID         int64   `json:"carId"`
	Start         string  `json:"start"` // ISO 8601
	End           string  `json:"end"`   // ISO 8601
	Available     bool    `json:"available"`
	ConflictStart *string `json:"conflictStart,omitempty"`
	ConflictEnd   *string `json:"conflictEnd,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *checkAvailability.Response) *AvailabilityResponse {
	out := &AvailabilityResponse{
		CarID:     resp.CarID,
		Start:     resp.Start.Format(time.RFC3339),
		End:       resp.End.Format(time.RFC3339),
		Available: resp.Available,
	}

	if resp.ConflictStart != nil {
		s := resp.ConflictStart.Format(time.RFC3339)
		out.ConflictStart = &s
	}
	if resp.ConflictEnd != nil {
		e := resp.ConflictEnd.Format(time.RFC3339)
		out.ConflictEnd = &e
	}

	return out
}
