package list_coupons

import (
	"errors"
	"net/http"

	"github.com/m04kA/DriveX-RentalService/internal/api/handlers"
	"github.com/m04kA/DriveX-RentalService/internal/api/middleware"
	"github.com/m04kA/DriveX-RentalService/internal/service/catalog"
)

const (
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

// Handle GET /api/v1/coupons
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /coupons - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.service.ListCoupons(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrPermissionDenied):
			h.logger.Warn("GET /coupons - Permission denied: user_id=%d", userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /coupons - Failed to list coupons: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /coupons - Retrieved %d coupons: user_id=%d", len(result.Coupons), userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
