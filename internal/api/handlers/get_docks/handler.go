package get_docks

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/WMS-DockService/internal/api/handlers"
	"github.com/m04kA/WMS-DockService/internal/api/middleware"
)

const (
	msgInvalidCompanyID   = "некорректный ID компании"
	msgInvalidWarehouseID = "некорректный ID склада"
	msgMissingUserID      = "отсутствует ID пользователя"
)

type Handler struct {
	service DockService
	logger  Logger
}

func NewHandler(service DockService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/companies/{companyId}/warehouses/{warehouseId}/docks
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем идентификаторы из URL
	vars := mux.Vars(r)

	companyID, err := strconv.ParseInt(vars["companyId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /warehouses/{id}/docks - Invalid company ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCompanyID)
		return
	}

	warehouseID, err := strconv.ParseInt(vars["warehouseId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /warehouses/{id}/docks - Invalid warehouse ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWarehouseID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /warehouses/{id}/docks - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.service.ListByWarehouse(r.Context(), companyID, warehouseID)
	if err != nil {
		h.logger.Error("GET /warehouses/{id}/docks - Failed to get docks: warehouse_id=%d, error=%v",
			warehouseID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /warehouses/{id}/docks - Docks retrieved successfully: warehouse_id=%d, user_id=%d, count=%d",
		warehouseID, userID, len(result.Docks))
	handlers.RespondJSON(w, http.StatusOK, result)
}
