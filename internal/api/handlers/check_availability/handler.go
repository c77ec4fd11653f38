package check_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/DriveX-RentalService/internal/api/handlers"
	checkAvailability "github.com/m04kA/DriveX-RentalService/internal/usecase/check_availability"
)

const (
	msgInvalidCarID  = "некорректный ID автомобиля"
	msgInvalidPeriod = "некорректный интервал, ожидаются параметры start и end в формате RFC 3339"
	msgInvalidRange  = "конец интервала должен быть позже начала"
	msgCarNotFound   = "автомобиль не найден"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/cars/{carId}/availability?start=...&end=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	carID, err := strconv.ParseInt(vars["carId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /cars/{carId}/availability - Invalid car ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCarID)
		return
	}

	query := r.URL.Query()
	start, err := time.Parse(time.RFC3339, query.Get("start"))
	if err != nil {
		h.logger.Warn("GET /cars/{carId}/availability - Invalid start: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}
	end, err := time.Parse(time.RFC3339, query.Get("end"))
	if err != nil {
		h.logger.Warn("GET /cars/{carId}/availability - Invalid end: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &checkAvailability.Request{
		CarID: carID,
		Start: start,
		End:   end,
	})
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrCarNotFound):
			h.logger.Warn("GET /cars/{carId}/availability - Car not found: car_id=%d", carID)
			handlers.RespondNotFound(w, msgCarNotFound)

		case errors.Is(err, checkAvailability.ErrInvalidRange):
			h.logger.Warn("GET /cars/{carId}/availability - Invalid range: car_id=%d", carID)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("GET /cars/{carId}/availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		default:
			h.logger.Error("GET /cars/{carId}/availability - Failed: car_id=%d, error=%v", carID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /cars/{carId}/availability - car_id=%d, available=%t", carID, result.Available)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
