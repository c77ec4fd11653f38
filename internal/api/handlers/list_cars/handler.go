package list_cars

import (
	"net/http"

	"github.com/m04kA/DriveX-RentalService/internal/api/handlers"
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

// Handle GET /api/v1/cars?onlyAvailable=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	onlyAvailable := r.URL.Query().Get("onlyAvailable") == "true"

	result, err := h.service.ListCars(r.Context(), onlyAvailable)
	if err != nil {
		h.logger.Error("GET /cars - Failed to list cars: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /cars - Retrieved %d cars", len(result.Cars))
	handlers.RespondJSON(w, http.StatusOK, result)
}
