package list_cars

import (
	"context"

	"github.com/m04kA/DriveX-RentalService/internal/service/catalog/models"
)

type CatalogService interface {
	ListCars(ctx context.Context, onlyAvailable bool) (*models.CarListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
