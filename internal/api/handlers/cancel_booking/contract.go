package cancel_booking

import (
	"context"

	"github.com/m04kA/DriveX-RentalService/internal/service/bookings/models"
)

type BookingService interface {
	Cancel(ctx context.Context, requesterID, bookingID int64, reason string) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
