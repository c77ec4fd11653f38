package pay_booking

import (
	"context"

	"github.com/m04kA/DriveX-RentalService/internal/service/bookings/models"
)

type BookingService interface {
	MarkPaid(ctx context.Context, requesterID, bookingID int64) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
