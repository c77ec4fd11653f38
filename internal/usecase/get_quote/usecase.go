package get_quote

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/DriveX-RentalService/internal/domain"
	carRepo "github.com/m04kA/DriveX-RentalService/internal/infra/storage/car"
	couponRepo "github.com/m04kA/DriveX-RentalService/internal/infra/storage/coupon"
	"github.com/m04kA/DriveX-RentalService/pkg/ptr"
)

// UseCase use case расчёта стоимости аренды
type UseCase struct {
	carRepo    CarRepository
	couponRepo CouponRepository
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(carRepo CarRepository, couponRepo CouponRepository, logger Logger) *UseCase {
	return &UseCase{
		carRepo:    carRepo,
		couponRepo: couponRepo,
		logger:     logger,
	}
}

// Execute рассчитывает детализацию стоимости аренды.
// Функция чистая относительно хранилища: ничего не пишет, повторный вызов
// с теми же входными данными даёт идентичный результат. Именно этот расчёт
// повторяется при коммите бронирования — детализация от клиента не принимается.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetQuote: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем интервал против политики длительности
	if err := domain.ValidateRentalWindow(req.Start, req.End); err != nil {
		uc.logger.Warn("GetQuote: rental window rejected: %v", err)
		return nil, mapDomainErr(err)
	}

	// 3. Получаем автомобиль (ставка аренды)
	car, err := uc.carRepo.GetByID(ctx, req.CarID)
	if err != nil {
		if errors.Is(err, carRepo.ErrCarNotFound) {
			uc.logger.Warn("GetQuote: car id=%d not found", req.CarID)
			return nil, ErrCarNotFound
		}
		uc.logger.Error("GetQuote: failed to get car id=%d: %v", req.CarID, err)
		return nil, fmt.Errorf("%w: failed to get car: %v", ErrInternal, err)
	}

	// 4. Разрешаем купон (невалидный купон не фатален)
	discount, appliedCode, err := uc.resolveCoupon(ctx, req.CouponCode)
	if err != nil {
		return nil, err
	}

	// 5. Считаем детализацию
	breakdown := domain.ComputeCost(car.HourlyRate, req.Start, req.End, req.WithDriver, discount)

	uc.logger.Info("GetQuote: car=%d, hours=%.2f, total=%d (base=%d, driver=%d, tax=%d, discount=%d)",
		req.CarID, domain.RentalHours(req.Start, req.End), breakdown.TotalCost,
		breakdown.BaseCost, breakdown.DriverFee, breakdown.Tax, breakdown.Discount)

	return &Response{
		CarID:         req.CarID,
		Start:         req.Start,
		End:           req.End,
		DurationHours: domain.RentalHours(req.Start, req.End),
		DurationDays:  domain.RentalDays(req.Start, req.End),
		BaseCost:      breakdown.BaseCost,
		DriverFee:     breakdown.DriverFee,
		Tax:           breakdown.Tax,
		Discount:      breakdown.Discount,
		TotalCost:     breakdown.TotalCost,
		CouponApplied: appliedCode != nil,
		CouponCode:    appliedCode,
	}, nil
}

// resolveCoupon находит активный купон по коду.
// Ненайденный или отключённый купон даёт нулевую скидку и applied=nil —
// бронирование может продолжаться без скидки.
func (uc *UseCase) resolveCoupon(ctx context.Context, code *string) (int64, *string, error) {
	if code == nil {
		return 0, nil, nil
	}

	normalized := domain.NormalizeCouponCode(*code)
	if normalized == "" {
		return 0, nil, nil
	}

	coupon, err := uc.couponRepo.GetByCode(ctx, normalized)
	if err != nil {
		if errors.Is(err, couponRepo.ErrCouponNotFound) {
			uc.logger.Warn("GetQuote: coupon %q not found, proceeding without discount", normalized)
			return 0, nil, nil
		}
		uc.logger.Error("GetQuote: failed to get coupon %q: %v", normalized, err)
		return 0, nil, fmt.Errorf("%w: failed to get coupon: %v", ErrInternal, err)
	}

	if !coupon.IsActive {
		uc.logger.Warn("GetQuote: coupon %q is inactive, proceeding without discount", normalized)
		return 0, nil, nil
	}

	return coupon.Discount(), ptr.Ptr(normalized), nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CarID <= 0 {
		return fmt.Errorf("%w: carID must be positive", ErrInvalidInput)
	}

	if req.Start.IsZero() {
		return fmt.Errorf("%w: start is required", ErrInvalidInput)
	}

	if req.End.IsZero() {
		return fmt.Errorf("%w: end is required", ErrInvalidInput)
	}

	return nil
}

// mapDomainErr переводит ошибки политики длительности в ошибки usecase
func mapDomainErr(err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidRange):
		return ErrInvalidRange
	case errors.Is(err, domain.ErrRentalTooShort):
		return ErrDurationTooShort
	case errors.Is(err, domain.ErrRentalTooLong):
		return ErrDurationTooLong
	default:
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
