package get_catalog

import (
	"net/http"

	"github.com/layananku/LSP-BookingGateway/internal/api/handlers"
)

const msgCatalogUnavailable = "каталог временно недоступен"

// Handler публичные ручки каталога
// Проксирует справочники, которыми формы заполняют варианты выбора
type Handler struct {
	client CatalogServiceClient
	logger Logger
}

func NewHandler(client CatalogServiceClient, logger Logger) *Handler {
	return &Handler{
		client: client,
		logger: logger,
	}
}

// HandleDoctors GET /api/v1/catalog/doctors
func (h *Handler) HandleDoctors(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.client.GetDoctors(r.Context())
	if err != nil {
		h.logger.Error("GET /catalog/doctors - Failed to fetch doctors: %v", err)
		handlers.RespondError(w, http.StatusBadGateway, msgCatalogUnavailable)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, doctors)
}

// HandleDurations GET /api/v1/catalog/durations
func (h *Handler) HandleDurations(w http.ResponseWriter, r *http.Request) {
	durations, err := h.client.GetDurations(r.Context())
	if err != nil {
		h.logger.Error("GET /catalog/durations - Failed to fetch durations: %v", err)
		handlers.RespondError(w, http.StatusBadGateway, msgCatalogUnavailable)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, durations)
}

// HandleWorkshops GET /api/v1/catalog/workshops
func (h *Handler) HandleWorkshops(w http.ResponseWriter, r *http.Request) {
	workshops, err := h.client.GetWorkshops(r.Context())
	if err != nil {
		h.logger.Error("GET /catalog/workshops - Failed to fetch workshops: %v", err)
		handlers.RespondError(w, http.StatusBadGateway, msgCatalogUnavailable)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, workshops)
}

// HandleDailyServices GET /api/v1/catalog/daily-services
func (h *Handler) HandleDailyServices(w http.ResponseWriter, r *http.Request) {
	offerings, err := h.client.GetDailyServices(r.Context())
	if err != nil {
		h.logger.Error("GET /catalog/daily-services - Failed to fetch offerings: %v", err)
		handlers.RespondError(w, http.StatusBadGateway, msgCatalogUnavailable)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, offerings)
}
