package deactivate_coupon

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/DriveX-RentalService/internal/api/handlers"
	"github.com/m04kA/DriveX-RentalService/internal/api/middleware"
	"github.com/m04kA/DriveX-RentalService/internal/service/catalog"
)

const (
	msgInvalidCode   = "некорректный код купона"
	msgNotFound      = "купон не найден"
	msgMissingUserID = "отсутствует ID пользователя"
	msgForbidden     = "требуются права администратора"
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

// Handle DELETE /api/v1/coupons/{code}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	code := vars["code"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /coupons/{code} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.service.DeactivateCoupon(r.Context(), userID, code); err != nil {
		switch {
		case errors.Is(err, catalog.ErrCouponNotFound):
			h.logger.Warn("DELETE /coupons/{code} - Coupon not found: code=%q", code)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, catalog.ErrPermissionDenied):
			h.logger.Warn("DELETE /coupons/{code} - Permission denied: user_id=%d", userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("DELETE /coupons/{code} - Invalid code: %q", code)
			handlers.RespondBadRequest(w, msgInvalidCode)

		default:
			h.logger.Error("DELETE /coupons/{code} - Failed to deactivate coupon: code=%q, error=%v", code, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /coupons/{code} - Coupon deactivated: code=%q, user_id=%d", code, userID)
	w.WriteHeader(http.StatusNoContent)
}
