package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/DriveX-RentalService/internal/domain"
	bookingRepo "github.com/m04kA/DriveX-RentalService/internal/infra/storage/booking"
	"github.com/m04kA/DriveX-RentalService/internal/service/bookings/models"
)

// Service сервис работы с существующими бронированиями.
// Создание бронирований живёт в usecase коммита, здесь только чтение
// и смена статусов.
type Service struct {
	repo      BookingRepository
	identity  IdentityClient
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый экземпляр сервиса
func NewService(repo BookingRepository, identity IdentityClient, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		repo:      repo,
		identity:  identity,
		txManager: txManager,
		logger:    logger,
	}
}

// GetByID возвращает бронирование по ID.
// Доступно владельцу бронирования и администраторам.
func (s *Service) GetByID(ctx context.Context, requesterID, bookingID int64) (*models.BookingResponse, error) {
	booking, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if booking.UserID != requesterID {
		if err := s.checkAdminAccess(ctx, requesterID); err != nil {
			return nil, err
		}
	}

	return models.FromDomainBooking(booking), nil
}

// GetUserBookings возвращает бронирования пользователя, опционально по статусу.
// Свою историю видит владелец, чужую только администратор.
func (s *Service) GetUserBookings(ctx context.Context, q models.UserBookingsQuery) (*models.BookingListResponse, error) {
	if q.RequesterID != q.UserID {
		if err := s.checkAdminAccess(ctx, q.RequesterID); err != nil {
			return nil, err
		}
	}

	status, err := parseStatus(q.Status)
	if err != nil {
		return nil, err
	}

	list, err := s.repo.GetByUserID(ctx, q.UserID, status)
	if err != nil {
		s.logger.Error("Bookings.GetUserBookings: user id=%d: %v", q.UserID, err)
		return nil, fmt.Errorf("%w: failed to get user bookings: %v", ErrInternal, err)
	}

	return models.FromDomainBookingList(list), nil
}

// GetCarBookings возвращает бронирования автомобиля за период.
// Только для администраторов.
func (s *Service) GetCarBookings(ctx context.Context, requesterID int64, q models.CarBookingsQuery) (*models.BookingListResponse, error) {
	if err := s.checkAdminAccess(ctx, requesterID); err != nil {
		return nil, err
	}

	status, err := parseStatus(q.Status)
	if err != nil {
		return nil, err
	}

	list, err := s.repo.GetByCarWithFilter(ctx, domain.CarBookingsFilter{
		CarID:            q.CarID,
		From:             q.From,
		To:               q.To,
		Status:           status,
		IncludeCancelled: q.IncludeCancelled,
	})
	if err != nil {
		s.logger.Error("Bookings.GetCarBookings: car id=%d: %v", q.CarID, err)
		return nil, fmt.Errorf("%w: failed to get car bookings: %v", ErrInternal, err)
	}

	return models.FromDomainBookingList(list), nil
}

// Cancel отменяет бронирование. Доступно владельцу и администраторам.
// Отмена освобождает интервал: слот сразу доступен для новых бронирований.
func (s *Service) Cancel(ctx context.Context, requesterID, bookingID int64, reason string) (*models.BookingResponse, error) {
	var cancelled *domain.Booking

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := s.getBooking(txCtx, bookingID)
		if err != nil {
			return err
		}

		if booking.UserID != requesterID {
			if err := s.checkAdminAccess(txCtx, requesterID); err != nil {
				return err
			}
		}

		if !booking.CanBeCancelled() {
			return ErrAlreadyCancelled
		}

		if err := s.repo.Cancel(txCtx, bookingID, reason); err != nil {
			return fmt.Errorf("%w: failed to cancel booking: %v", ErrInternal, err)
		}

		cancelled, err = s.getBooking(txCtx, bookingID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Bookings.Cancel: booking id=%d cancelled by user id=%d", bookingID, requesterID)
	return models.FromDomainBooking(cancelled), nil
}

// MarkPaid переводит подтверждённое бронирование в статус paid.
// Доступно только владельцу бронирования.
func (s *Service) MarkPaid(ctx context.Context, requesterID, bookingID int64) (*models.BookingResponse, error) {
	var paid *domain.Booking

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := s.getBooking(txCtx, bookingID)
		if err != nil {
			return err
		}

		if booking.UserID != requesterID {
			return ErrPermissionDenied
		}

		if !booking.CanBePaid() {
			return ErrNotPayable
		}

		if err := s.repo.UpdateStatus(txCtx, bookingID, domain.StatusPaid); err != nil {
			return fmt.Errorf("%w: failed to update booking status: %v", ErrInternal, err)
		}

		paid, err = s.getBooking(txCtx, bookingID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Bookings.MarkPaid: booking id=%d marked paid by user id=%d", bookingID, requesterID)
	return models.FromDomainBooking(paid), nil
}

func (s *Service) getBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	booking, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Bookings.getBooking: id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}
	return booking, nil
}

// checkAdminAccess проверяет права администратора через IdentityService
func (s *Service) checkAdminAccess(ctx context.Context, userID int64) error {
	user, err := s.identity.GetUser(ctx, userID)
	if err != nil {
		s.logger.Error("Bookings.checkAdminAccess: user id=%d: %v", userID, err)
		return ErrPermissionDenied
	}
	if !user.IsAdmin {
		return ErrPermissionDenied
	}
	return nil
}

func parseStatus(raw *string) (*domain.BookingStatus, error) {
	if raw == nil {
		return nil, nil
	}
	status := domain.BookingStatus(*raw)
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, *raw)
	}
	return &status, nil
}
