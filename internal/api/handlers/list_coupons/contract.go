package list_coupons

import (
	"context"

	"github.com/m04kA/DriveX-RentalService/internal/service/catalog/models"
)

type CatalogService interface {
	ListCoupons(ctx context.Context, requesterID int64) (*models.CouponListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
