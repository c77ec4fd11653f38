package deactivate_coupon

import "context"

type CatalogService interface {
	DeactivateCoupon(ctx context.Context, requesterID int64, code string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
