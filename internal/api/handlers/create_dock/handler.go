package create_dock

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/WMS-DockService/internal/api/handlers"
	"github.com/m04kA/WMS-DockService/internal/api/middleware"
	"github.com/m04kA/WMS-DockService/internal/service/docks"
)

const (
	msgInvalidCompanyID   = "некорректный ID компании"
	msgInvalidWarehouseID = "некорректный ID склада"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidParams      = "некорректные параметры дока"
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

// Handle POST /api/v1/companies/{companyId}/warehouses/{warehouseId}/docks
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем идентификаторы из URL
	vars := mux.Vars(r)

	companyID, err := strconv.ParseInt(vars["companyId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /warehouses/{id}/docks - Invalid company ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCompanyID)
		return
	}

	warehouseID, err := strconv.ParseInt(vars["warehouseId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /warehouses/{id}/docks - Invalid warehouse ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWarehouseID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /warehouses/{id}/docks - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateDockRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /warehouses/{id}/docks - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), warehouseID, req.ToServiceRequest(companyID, warehouseID))
	if err != nil {
		switch {
		case errors.Is(err, docks.ErrInvalidInput):
			h.logger.Warn("POST /warehouses/{id}/docks - Invalid dock parameters: warehouse_id=%d, error=%v",
				warehouseID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("POST /warehouses/{id}/docks - Failed to create dock: warehouse_id=%d, error=%v",
				warehouseID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /warehouses/{id}/docks - Dock created successfully: dock_id=%d, warehouse_id=%d, user_id=%d",
		result.ID, warehouseID, userID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
