package get_warehouses

import (
	"errors"
	"net/http"

	"github.com/m04kA/WMS-DockService/internal/api/handlers"
	"github.com/m04kA/WMS-DockService/internal/api/middleware"
	"github.com/m04kA/WMS-DockService/internal/service/warehouses"
)

const (
	msgMissingAPIKey   = "отсутствует API-ключ"
	msgCompanyNotFound = "компания не найдена"
)

type Handler struct {
	service WarehouseService
	logger  Logger
}

func NewHandler(service WarehouseService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/integration/warehouses
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем companyID из контекста (через middleware IntegrationAuth)
	companyID, ok := middleware.GetCompanyID(r.Context())
	if !ok {
		h.logger.Warn("GET /integration/warehouses - Missing company ID")
		handlers.RespondUnauthorized(w, msgMissingAPIKey)
		return
	}

	result, err := h.service.List(r.Context(), companyID)
	if err != nil {
		switch {
		case errors.Is(err, warehouses.ErrCompanyNotFound):
			h.logger.Warn("GET /integration/warehouses - Company not found: company_id=%d", companyID)
			handlers.RespondNotFound(w, msgCompanyNotFound)

		default:
			h.logger.Error("GET /integration/warehouses - Failed to get warehouses: company_id=%d, error=%v",
				companyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /integration/warehouses - Warehouses retrieved successfully: company_id=%d, count=%d",
		companyID, len(result.Warehouses))
	handlers.RespondJSON(w, http.StatusOK, result)
}
