package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/WMS-DockService/internal/api/handlers"
	"github.com/m04kA/WMS-DockService/internal/api/middleware"
	getAvailableSlots "github.com/m04kA/WMS-DockService/internal/usecase/get_available_slots"
)

const (
	msgInvalidCompanyID   = "некорректный ID компании"
	msgInvalidWarehouseID = "некорректный ID склада"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidParams      = "некорректные параметры запроса"
	msgCompanyNotFound    = "компания не найдена"
	msgWarehouseNotFound  = "склад не найден"
	msgVehicleNotFound    = "тип транспорта не найден"
	msgTooManyPallets     = "количество паллет превышает вместимость транспорта"
	msgInvalidDate        = "некорректная дата бронирования"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/companies/{companyId}/warehouses/{warehouseId}/available-slots
// Query params: date, vehicleTypeId, movementType, palletCount
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем идентификаторы из URL
	vars := mux.Vars(r)

	companyID, err := strconv.ParseInt(vars["companyId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid company ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCompanyID)
		return
	}

	warehouseID, err := strconv.ParseInt(vars["warehouseId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid warehouse ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWarehouseID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /available-slots - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Собираем запрос из query параметров
	query := r.URL.Query()
	useCaseReq, err := ToUseCaseRequest(
		userID, companyID, warehouseID,
		query.Get("vehicleTypeId"),
		query.Get("movementType"),
		query.Get("palletCount"),
		query.Get("date"),
	)
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrCompanyNotFound):
			h.logger.Warn("GET /available-slots - Company not found: company_id=%d", companyID)
			handlers.RespondNotFound(w, msgCompanyNotFound)

		case errors.Is(err, getAvailableSlots.ErrWarehouseNotFound):
			h.logger.Warn("GET /available-slots - Warehouse not found: warehouse_id=%d", warehouseID)
			handlers.RespondNotFound(w, msgWarehouseNotFound)

		case errors.Is(err, getAvailableSlots.ErrVehicleTypeNotFound):
			h.logger.Warn("GET /available-slots - Vehicle type not found: company_id=%d", companyID)
			handlers.RespondNotFound(w, msgVehicleNotFound)

		case errors.Is(err, getAvailableSlots.ErrPalletCountExceedsCapacity):
			h.logger.Warn("GET /available-slots - Pallet count exceeds capacity: company_id=%d", companyID)
			handlers.RespondBadRequest(w, msgTooManyPallets)

		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /available-slots - Invalid date: company_id=%d", companyID)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /available-slots - Failed to get slots: company_id=%d, warehouse_id=%d, error=%v",
				companyID, warehouseID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /available-slots - Slots retrieved successfully: company_id=%d, warehouse_id=%d, count=%d",
		companyID, warehouseID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
