package request_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/WMS-DockService/internal/api/handlers"
	"github.com/m04kA/WMS-DockService/internal/api/middleware"
	requestBooking "github.com/m04kA/WMS-DockService/internal/usecase/request_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingAPIKey      = "отсутствует API-ключ"
	msgInvalidParams      = "некорректные параметры запроса"
	msgCompanyNotFound    = "компания не найдена"
	msgWarehouseNotFound  = "склад не найден"
	msgVehicleNotFound    = "тип транспорта не найден"
	msgCarrierNotFound    = "перевозчик не найден"
	msgTooManyPallets     = "количество паллет превышает вместимость транспорта"
	msgInvalidDate        = "некорректная дата бронирования"
	msgNoSlotAvailable    = "на выбранную дату нет свободных слотов"
)

type Handler struct {
	useCase RequestBookingUseCase
	logger  Logger
}

func NewHandler(useCase RequestBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/integration/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем companyID из контекста (через middleware IntegrationAuth)
	companyID, ok := middleware.GetCompanyID(r.Context())
	if !ok {
		h.logger.Warn("POST /integration/bookings - Missing company ID")
		handlers.RespondUnauthorized(w, msgMissingAPIKey)
		return
	}

	var req RequestBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /integration/bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты)
	useCaseReq, err := req.ToUseCaseRequest(companyID)
	if err != nil {
		h.logger.Warn("POST /integration/bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, requestBooking.ErrNoSlotAvailable):
			h.logger.Warn("POST /integration/bookings - No slot available: company_id=%d, warehouse=%s, date=%s",
				companyID, req.WarehouseCode, req.BookingDate)
			handlers.RespondError(w, http.StatusConflict, msgNoSlotAvailable)

		case errors.Is(err, requestBooking.ErrCompanyNotFound):
			h.logger.Warn("POST /integration/bookings - Company not found: company_id=%d", companyID)
			handlers.RespondNotFound(w, msgCompanyNotFound)

		case errors.Is(err, requestBooking.ErrWarehouseNotFound):
			h.logger.Warn("POST /integration/bookings - Warehouse not found: company_id=%d, warehouse=%s",
				companyID, req.WarehouseCode)
			handlers.RespondNotFound(w, msgWarehouseNotFound)

		case errors.Is(err, requestBooking.ErrVehicleTypeNotFound):
			h.logger.Warn("POST /integration/bookings - Vehicle type not found: company_id=%d, vehicle_type=%s",
				companyID, req.VehicleTypeCode)
			handlers.RespondNotFound(w, msgVehicleNotFound)

		case errors.Is(err, requestBooking.ErrCarrierNotFound):
			h.logger.Warn("POST /integration/bookings - Carrier not found: company_id=%d, carrier=%s",
				companyID, req.CarrierName)
			handlers.RespondNotFound(w, msgCarrierNotFound)

		case errors.Is(err, requestBooking.ErrPalletCountExceedsCapacity):
			h.logger.Warn("POST /integration/bookings - Pallet count exceeds capacity: company_id=%d", companyID)
			handlers.RespondBadRequest(w, msgTooManyPallets)

		case errors.Is(err, requestBooking.ErrInvalidDate):
			h.logger.Warn("POST /integration/bookings - Invalid booking date: company_id=%d, date=%s",
				companyID, req.BookingDate)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, requestBooking.ErrInvalidInput):
			h.logger.Warn("POST /integration/bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("POST /integration/bookings - Failed to request booking: company_id=%d, error=%v",
				companyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /integration/bookings - Provisional booking created: booking_id=%d, company_id=%d, confirmation=%s",
		result.BookingID, companyID, result.ConfirmationID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
