package models

import (
	"time"

	"github.com/m04kA/DriveX-RentalService/internal/domain"
)

// Request модели

// UserBookingsQuery параметры выборки бронирований пользователя
type UserBookingsQuery struct {
	RequesterID int64   // ID аутентифицированного пользователя
	UserID      int64   // Чьи бронирования запрашиваются
	Status      *string // Фильтр по статусу (опционально)
}

// CarBookingsQuery параметры выборки бронирований по автомобилю
type CarBookingsQuery struct {
	CarID            int64
	From             *time.Time // Начало периода (опционально)
	To               *time.Time // Конец периода (опционально)
	Status           *string    // Фильтр по статусу (опционально)
	IncludeCancelled bool
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID     int64  `json:"id"`
	UserID int64  `json:"userId"`
	CarID  int64  `json:"carId"`
	Start  string `json:"start"` // ISO 8601
	End    string `json:"end"`   // ISO 8601
	Status string `json:"status"`

	// Детализация стоимости, зафиксированная при коммите
	BaseCost   int64 `json:"baseCost"`
	DriverFee  int64 `json:"driverFee"`
	Tax        int64 `json:"tax"`
	Discount   int64 `json:"discount"`
	TotalCost  int64 `json:"totalCost"`
	WithDriver bool  `json:"withDriver"`

	CouponCode    *string `json:"couponCode,omitempty"`
	PaymentMethod string  `json:"paymentMethod"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                 b.ID,
		UserID:             b.UserID,
		CarID:              b.CarID,
		Start:              b.StartAt.Format(time.RFC3339),
		End:                b.EndAt.Format(time.RFC3339),
		Status:             string(b.Status),
		BaseCost:           b.BaseCost,
		DriverFee:          b.DriverFee,
		Tax:                b.Tax,
		Discount:           b.Discount,
		TotalCost:          b.TotalCost,
		WithDriver:         b.WithDriver,
		CouponCode:         b.CouponCode,
		PaymentMethod:      string(b.PaymentMethod),
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}
