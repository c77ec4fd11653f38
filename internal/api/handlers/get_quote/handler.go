package get_quote

import (
	"errors"
	"net/http"

	"github.com/m04kA/DriveX-RentalService/internal/api/handlers"
	getQuote "github.com/m04kA/DriveX-RentalService/internal/usecase/get_quote"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateTime    = "некорректный формат даты, ожидается RFC 3339"
	msgInvalidRange       = "конец аренды должен быть позже начала"
	msgTooShort           = "минимальный срок аренды 24 часа"
	msgTooLong            = "максимальный срок аренды 30 дней"
	msgCarNotFound        = "автомобиль не найден"
)

type Handler struct {
	useCase GetQuoteUseCase
	logger  Logger
}

func NewHandler(useCase GetQuoteUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/quotes
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /quotes - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /quotes - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getQuote.ErrCarNotFound):
			h.logger.Warn("POST /quotes - Car not found: car_id=%d", req.CarID)
			handlers.RespondNotFound(w, msgCarNotFound)

		case errors.Is(err, getQuote.ErrInvalidRange):
			h.logger.Warn("POST /quotes - Invalid range: car_id=%d", req.CarID)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, getQuote.ErrDurationTooShort):
			h.logger.Warn("POST /quotes - Rental too short: car_id=%d", req.CarID)
			handlers.RespondBadRequest(w, msgTooShort)

		case errors.Is(err, getQuote.ErrDurationTooLong):
			h.logger.Warn("POST /quotes - Rental too long: car_id=%d", req.CarID)
			handlers.RespondBadRequest(w, msgTooLong)

		case errors.Is(err, getQuote.ErrInvalidInput):
			h.logger.Warn("POST /quotes - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /quotes - Failed to compute quote: car_id=%d, error=%v", req.CarID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /quotes - Quote computed: car_id=%d, total=%d", result.CarID, result.TotalCost)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
