package create_coupon

import (
	"context"

	"github.com/m04kA/DriveX-RentalService/internal/service/catalog/models"
)

type CatalogService interface {
	CreateCoupon(ctx context.Context, requesterID int64, req models.CreateCouponRequest) (*models.CouponResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
