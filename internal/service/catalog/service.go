package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/DriveX-RentalService/internal/domain"
	carRepo "github.com/m04kA/DriveX-RentalService/internal/infra/storage/car"
	couponRepo "github.com/m04kA/DriveX-RentalService/internal/infra/storage/coupon"
	"github.com/m04kA/DriveX-RentalService/internal/service/catalog/models"
)

// Service сервис каталога: автомобили и купоны.
// Чтение публичное, изменения только для администраторов.
type Service struct {
	cars     CarRepository
	coupons  CouponRepository
	identity IdentityClient
	logger   Logger
}

// NewService создает новый экземпляр сервиса
func NewService(cars CarRepository, coupons CouponRepository, identity IdentityClient, logger Logger) *Service {
	return &Service{
		cars:     cars,
		coupons:  coupons,
		identity: identity,
		logger:   logger,
	}
}

// ListCars возвращает автомобили каталога.
// onlyAvailable=true отфильтровывает снятые с линии.
func (s *Service) ListCars(ctx context.Context, onlyAvailable bool) (*models.CarListResponse, error) {
	list, err := s.cars.List(ctx, onlyAvailable)
	if err != nil {
		s.logger.Error("Catalog.ListCars: %v", err)
		return nil, fmt.Errorf("%w: failed to list cars: %v", ErrInternal, err)
	}
	return models.FromDomainCarList(list), nil
}

// GetCar возвращает автомобиль по ID
func (s *Service) GetCar(ctx context.Context, id int64) (*models.CarResponse, error) {
	car, err := s.getCar(ctx, id)
	if err != nil {
		return nil, err
	}
	return models.FromDomainCar(car), nil
}

func (s *Service) getCar(ctx context.Context, id int64) (*domain.Car, error) {
	car, err := s.cars.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, carRepo.ErrCarNotFound) {
			return nil, ErrCarNotFound
		}
		s.logger.Error("Catalog.getCar: id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get car: %v", ErrInternal, err)
	}
	return car, nil
}

// CreateCar добавляет автомобиль в каталог. Только для администраторов.
func (s *Service) CreateCar(ctx context.Context, requesterID int64, req models.CreateCarRequest) (*models.CarResponse, error) {
	if err := s.checkAdminAccess(ctx, requesterID); err != nil {
		return nil, err
	}

	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if req.HourlyRate <= 0 {
		return nil, fmt.Errorf("%w: hourly rate must be positive", ErrInvalidInput)
	}

	car, err := s.cars.Create(ctx, &domain.Car{
		Name:         req.Name,
		Category:     req.Category,
		HourlyRate:   req.HourlyRate,
		Transmission: req.Transmission,
		FuelType:     req.FuelType,
		Seats:        req.Seats,
		Location:     req.Location,
		IsAvailable:  req.IsAvailable,
	})
	if err != nil {
		s.logger.Error("Catalog.CreateCar: %v", err)
		return nil, fmt.Errorf("%w: failed to create car: %v", ErrInternal, err)
	}

	s.logger.Info("Catalog.CreateCar: car id=%d created by user id=%d", car.ID, requesterID)
	return models.FromDomainCar(car), nil
}

// UpdateCar частично обновляет автомобиль. Nil-поля запроса не изменяются.
// Только для администраторов.
func (s *Service) UpdateCar(ctx context.Context, requesterID, carID int64, req models.UpdateCarRequest) (*models.CarResponse, error) {
	if err := s.checkAdminAccess(ctx, requesterID); err != nil {
		return nil, err
	}

	car, err := s.getCar(ctx, carID)
	if err != nil {
		return nil, err
	}

	applyCarUpdate(car, req)
	if car.HourlyRate <= 0 {
		return nil, fmt.Errorf("%w: hourly rate must be positive", ErrInvalidInput)
	}

	updated, err := s.cars.Update(ctx, carID, car)
	if err != nil {
		if errors.Is(err, carRepo.ErrCarNotFound) {
			return nil, ErrCarNotFound
		}
		s.logger.Error("Catalog.UpdateCar: id=%d: %v", carID, err)
		return nil, fmt.Errorf("%w: failed to update car: %v", ErrInternal, err)
	}

	s.logger.Info("Catalog.UpdateCar: car id=%d updated by user id=%d", carID, requesterID)
	return models.FromDomainCar(updated), nil
}

// ListCoupons возвращает все купоны. Только для администраторов.
func (s *Service) ListCoupons(ctx context.Context, requesterID int64) (*models.CouponListResponse, error) {
	if err := s.checkAdminAccess(ctx, requesterID); err != nil {
		return nil, err
	}

	list, err := s.coupons.List(ctx)
	if err != nil {
		s.logger.Error("Catalog.ListCoupons: %v", err)
		return nil, fmt.Errorf("%w: failed to list coupons: %v", ErrInternal, err)
	}
	return models.FromDomainCouponList(list), nil
}

// CreateCoupon создает купон. Код приводится к каноническому виду.
// Только для администраторов.
func (s *Service) CreateCoupon(ctx context.Context, requesterID int64, req models.CreateCouponRequest) (*models.CouponResponse, error) {
	if err := s.checkAdminAccess(ctx, requesterID); err != nil {
		return nil, err
	}

	code := domain.NormalizeCouponCode(req.Code)
	if code == "" {
		return nil, fmt.Errorf("%w: code is required", ErrInvalidInput)
	}
	if req.DiscountAmount <= 0 {
		return nil, fmt.Errorf("%w: discount amount must be positive", ErrInvalidInput)
	}

	coupon, err := s.coupons.Create(ctx, &domain.Coupon{
		Code:           code,
		DiscountAmount: req.DiscountAmount,
		IsActive:       true,
	})
	if err != nil {
		if errors.Is(err, couponRepo.ErrDuplicateCoupon) {
			return nil, ErrDuplicateCoupon
		}
		s.logger.Error("Catalog.CreateCoupon: code=%q: %v", code, err)
		return nil, fmt.Errorf("%w: failed to create coupon: %v", ErrInternal, err)
	}

	s.logger.Info("Catalog.CreateCoupon: coupon %q created by user id=%d", code, requesterID)
	return models.FromDomainCoupon(coupon), nil
}

// DeactivateCoupon отключает купон по коду. Только для администраторов.
func (s *Service) DeactivateCoupon(ctx context.Context, requesterID int64, code string) error {
	if err := s.checkAdminAccess(ctx, requesterID); err != nil {
		return err
	}

	normalized := domain.NormalizeCouponCode(code)
	if normalized == "" {
		return fmt.Errorf("%w: code is required", ErrInvalidInput)
	}

	if err := s.coupons.Deactivate(ctx, normalized); err != nil {
		if errors.Is(err, couponRepo.ErrCouponNotFound) {
			return ErrCouponNotFound
		}
		s.logger.Error("Catalog.DeactivateCoupon: code=%q: %v", normalized, err)
		return fmt.Errorf("%w: failed to deactivate coupon: %v", ErrInternal, err)
	}

	s.logger.Info("Catalog.DeactivateCoupon: coupon %q deactivated by user id=%d", normalized, requesterID)
	return nil
}

// checkAdminAccess проверяет права администратора через IdentityService
func (s *Service) checkAdminAccess(ctx context.Context, userID int64) error {
	user, err := s.identity.GetUser(ctx, userID)
	if err != nil {
		s.logger.Error("Catalog.checkAdminAccess: user id=%d: %v", userID, err)
		return ErrPermissionDenied
	}
	if !user.IsAdmin {
		return ErrPermissionDenied
	}
	return nil
}

func applyCarUpdate(car *domain.Car, req models.UpdateCarRequest) {
	if req.Name != nil {
		car.Name = *req.Name
	}
	if req.Category != nil {
		car.Category = *req.Category
	}
	if req.HourlyRate != nil {
		car.HourlyRate = *req.HourlyRate
	}
	if req.Transmission != nil {
		car.Transmission = req.Transmission
	}
	if req.FuelType != nil {
		car.FuelType = req.FuelType
	}
	if req.Seats != nil {
		car.Seats = req.Seats
	}
	if req.Location != nil {
		car.Location = req.Location
	}
	if req.IsAvailable != nil {
		car.IsAvailable = *req.IsAvailable
	}
}
