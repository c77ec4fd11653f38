package create_car

import (
	"context"

	"github.com/m04kA/DriveX-RentalService/internal/service/catalog/models"
)

type CatalogService interface {
	CreateCar(ctx context.Context, requesterID int64, req models.CreateCarRequest) (*models.CarResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
