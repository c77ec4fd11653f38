package create_coupon

import (
	"errors"
	"net/http"

	"github.com/m04kA/DriveX-RentalService/internal/api/handlers"
	"github.com/m04kA/DriveX-RentalService/internal/api/middleware"
	"github.com/m04kA/DriveX-RentalService/internal/service/catalog"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgDuplicateCoupon    = "купон с таким кодом уже существует"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgForbidden          = "требуются права администратора"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/coupons
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /coupons - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateCouponRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /coupons - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateCoupon(r.Context(), userID, req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrDuplicateCoupon):
			h.logger.Warn("POST /coupons - Duplicate coupon: code=%q", req.Code)
			handlers.RespondError(w, http.StatusConflict, msgDuplicateCoupon)

		case errors.Is(err, catalog.ErrPermissionDenied):
			h.logger.Warn("POST /coupons - Permission denied: user_id=%d", userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("POST /coupons - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /coupons - Failed to create coupon: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /coupons - Coupon created: code=%q, user_id=%d", result.Code, userID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
