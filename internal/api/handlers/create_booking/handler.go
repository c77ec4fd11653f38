package create_booking

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/DriveX-RentalService/internal/api/handlers"
	"github.com/m04kA/DriveX-RentalService/internal/api/middleware"
	commitBooking "github.com/m04kA/DriveX-RentalService/internal/usecase/commit_booking"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDateTime      = "некорректный формат даты, ожидается RFC 3339"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgUserNotFound         = "пользователь не найден"
	msgUserNotVerified      = "для бронирования требуется подтверждённая верификация"
	msgCarNotFound          = "автомобиль не найден"
	msgCarNotAvailable      = "автомобиль недоступен для бронирования"
	msgInvalidRange         = "конец аренды должен быть позже начала"
	msgTooShort             = "минимальный срок аренды 24 часа"
	msgTooLong              = "максимальный срок аренды 30 дней"
	msgInvalidPaymentMethod = "некорректный способ оплаты"
	msgSlotUnavailable      = "выбранный интервал уже занят"
	msgBusy                 = "автомобиль бронируется другим пользователем, повторите попытку"
)

type Handler struct {
	useCase CommitBookingUseCase
	logger  Logger
}

func NewHandler(useCase CommitBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var conflict *commitBooking.SlotConflictError
		switch {
		case errors.As(err, &conflict):
			h.logger.Warn("POST /bookings - Slot conflict: user_id=%d, car_id=%d", userID, req.CarID)
			handlers.RespondJSON(w, http.StatusConflict, ConflictResponse{
				Error:         msgSlotUnavailable,
				ConflictStart: conflict.ConflictStart.Format(time.RFC3339),
				ConflictEnd:   conflict.ConflictEnd.Format(time.RFC3339),
			})

		case errors.Is(err, commitBooking.ErrSlotUnavailable):
			h.logger.Warn("POST /bookings - Slot unavailable: user_id=%d, car_id=%d", userID, req.CarID)
			handlers.RespondError(w, http.StatusConflict, msgSlotUnavailable)

		case errors.Is(err, commitBooking.ErrBusy):
			h.logger.Warn("POST /bookings - Car busy: user_id=%d, car_id=%d", userID, req.CarID)
			w.Header().Set("Retry-After", "1")
			handlers.RespondError(w, http.StatusServiceUnavailable, msgBusy)

		case errors.Is(err, commitBooking.ErrUserNotFound):
			h.logger.Warn("POST /bookings - User not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, commitBooking.ErrUserNotVerified):
			h.logger.Warn("POST /bookings - User not verified: user_id=%d", userID)
			handlers.RespondForbidden(w, msgUserNotVerified)

		case errors.Is(err, commitBooking.ErrCarNotFound):
			h.logger.Warn("POST /bookings - Car not found: car_id=%d", req.CarID)
			handlers.RespondNotFound(w, msgCarNotFound)

		case errors.Is(err, commitBooking.ErrCarNotAvailable):
			h.logger.Warn("POST /bookings - Car not available: car_id=%d", req.CarID)
			handlers.RespondError(w, http.StatusConflict, msgCarNotAvailable)

		case errors.Is(err, commitBooking.ErrInvalidRange):
			h.logger.Warn("POST /bookings - Invalid range: user_id=%d, car_id=%d", userID, req.CarID)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, commitBooking.ErrDurationTooShort):
			h.logger.Warn("POST /bookings - Rental too short: user_id=%d, car_id=%d", userID, req.CarID)
			handlers.RespondBadRequest(w, msgTooShort)

		case errors.Is(err, commitBooking.ErrDurationTooLong):
			h.logger.Warn("POST /bookings - Rental too long: user_id=%d, car_id=%d", userID, req.CarID)
			handlers.RespondBadRequest(w, msgTooLong)

		case errors.Is(err, commitBooking.ErrInvalidPaymentMethod):
			h.logger.Warn("POST /bookings - Invalid payment method: %q", req.PaymentMethod)
			handlers.RespondBadRequest(w, msgInvalidPaymentMethod)

		case errors.Is(err, commitBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /bookings - Failed to commit booking: user_id=%d, car_id=%d, error=%v",
				userID, req.CarID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%d, user_id=%d, car_id=%d, status=%s",
		result.ID, userID, req.CarID, result.Status)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
