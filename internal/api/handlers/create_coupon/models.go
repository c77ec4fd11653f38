package create_coupon

import "github.com/m04kA/DriveX-RentalService/internal/service/catalog/models"

// CreateCouponRequest HTTP request model
type CreateCouponRequest struct {
	Code           string `json:"code"`
	DiscountAmount int64  `json:"discountAmount"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateCouponRequest) ToServiceRequest() models.CreateCouponRequest {
	return models.CreateCouponRequest{
		Code:           r.Code,
		DiscountAmount: r.DiscountAmount,
	}
}
