package get_car_bookings

import (
	"context"

	"github.com/m04kA/DriveX-RentalService/internal/service/bookings/models"
)

type BookingService interface {
	GetCarBookings(ctx context.Context, requesterID int64, q models.CarBookingsQuery) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
