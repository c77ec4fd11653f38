package models

import (
	"time"

	"github.com/m04kA/DriveX-RentalService/internal/domain"
)

// Request модели

// CreateCarRequest модель запроса на добавление автомобиля
type CreateCarRequest struct {
	Name         string
	Category     string
	HourlyRate   int64
	Transmission *string
	FuelType     *string
	Seats        *int
	Location     *string
	IsAvailable  bool
}

// UpdateCarRequest модель запроса на обновление автомобиля.
// Nil-поля не изменяются.
type UpdateCarRequest struct {
	Name         *string
	Category     *string
	HourlyRate   *int64
	Transmission *string
	FuelType     *string
	Seats        *int
	Location     *string
	IsAvailable  *bool
}

// CreateCouponRequest модель запроса на создание купона
type CreateCouponRequest struct {
	Code           string
	DiscountAmount int64
}

// Response модели

// CarResponse ответ с данными автомобиля
type CarResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	HourlyRate   int64     `json:"hourlyRate"`
	Transmission *string   `json:"transmission,omitempty"`
	FuelType     *string   `json:"fuelType,omitempty"`
	Seats        *int      `json:"seats,omitempty"`
	Location     *string   `json:"location,omitempty"`
	IsAvailable  bool      `json:"isAvailable"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// CarListResponse ответ со списком автомобилей
type CarListResponse struct {
	Cars []CarResponse `json:"cars"`
}

// CouponResponse ответ с данными купона
type CouponResponse struct {
	ID             int64     `json:"id"`
	Code           string    `json:"code"`
	DiscountAmount int64     `json:"discountAmount"`
	IsActive       bool      `json:"isActive"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// CouponListResponse ответ со списком купонов
type CouponListResponse struct {
	Coupons []CouponResponse `json:"coupons"`
}

// Методы конвертации

// FromDomainCar конвертирует domain модель в DTO
func FromDomainCar(c *domain.Car) *CarResponse {
	if c == nil {
		return nil
	}

	return &CarResponse{
		ID:           c.ID,
		Name:         c.Name,
		Category:     c.Category,
		HourlyRate:   c.HourlyRate,
		Transmission: c.Transmission,
		FuelType:     c.FuelType,
		Seats:        c.Seats,
		Location:     c.Location,
		IsAvailable:  c.IsAvailable,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

// FromDomainCarList конвертирует список domain моделей в DTO
func FromDomainCarList(cars []*domain.Car) *CarListResponse {
	resp := &CarListResponse{
		Cars: make([]CarResponse, 0, len(cars)),
	}

	for _, car := range cars {
		if carResp := FromDomainCar(car); carResp != nil {
			resp.Cars = append(resp.Cars, *carResp)
		}
	}

	return resp
}

// FromDomainCoupon конвертирует domain модель в DTO
func FromDomainCoupon(c *domain.Coupon) *CouponResponse {
	if c == nil {
		return nil
	}

	return &CouponResponse{
		ID:             c.ID,
		Code:           c.Code,
		DiscountAmount: c.DiscountAmount,
		IsActive:       c.IsActive,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

// FromDomainCouponList конвертирует список domain моделей в DTO
func FromDomainCouponList(coupons []*domain.Coupon) *CouponListResponse {
	resp := &CouponListResponse{
		Coupons: make([]CouponResponse, 0, len(coupons)),
	}

	for _, coupon := range coupons {
		if couponResp := FromDomainCoupon(coupon); couponResp != nil {
			resp.Coupons = append(resp.Coupons, *couponResp)
		}
	}

	return resp
}
