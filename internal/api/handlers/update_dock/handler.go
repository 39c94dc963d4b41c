package update_dock

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
	msgInvalidDockID      = "некорректный ID дока"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidParams      = "некорректные параметры дока"
	msgNotFound           = "док не найден"
	msgForbidden          = "доступ запрещен"
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

// Handle PUT /api/v1/docks/{dockId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем dockId из URL
	vars := mux.Vars(r)

	dockID, err := strconv.ParseInt(vars["dockId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /docks/{id} - Invalid dock ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDockID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /docks/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdateDockRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /docks/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), dockID, req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, docks.ErrDockNotFound):
			h.logger.Warn("PUT /docks/{id} - Dock not found: dock_id=%d", dockID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, docks.ErrAccessDenied):
			h.logger.Warn("PUT /docks/{id} - Access denied: dock_id=%d, company_id=%d", dockID, req.CompanyID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, docks.ErrInvalidInput):
			h.logger.Warn("PUT /docks/{id} - Invalid dock parameters: dock_id=%d, error=%v", dockID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("PUT /docks/{id} - Failed to update dock: dock_id=%d, error=%v", dockID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /docks/{id} - Dock updated successfully: dock_id=%d, user_id=%d", dockID, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
