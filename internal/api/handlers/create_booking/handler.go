package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/WMS-DockService/internal/api/handlers"
	"github.com/m04kA/WMS-DockService/internal/api/middleware"
	createBooking "github.com/m04kA/WMS-DockService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidParams      = "некорректные параметры запроса"
	msgCompanyNotFound    = "компания не найдена"
	msgWarehouseNotFound  = "склад не найден"
	msgVehicleNotFound    = "тип транспорта не найден"
	msgTooManyPallets     = "количество паллет превышает вместимость транспорта"
	msgInvalidDate        = "некорректная дата бронирования"
	msgInvalidTimeSlot    = "некорректный временной слот"
	msgSlotNotAvailable   = "выбранный временной слот больше недоступен"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotNoLongerAvailable):
			h.logger.Warn("POST /bookings - Slot no longer available: user_id=%d, company_id=%d", userID, req.CompanyID)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrCompanyNotFound):
			h.logger.Warn("POST /bookings - Company not found: company_id=%d", req.CompanyID)
			handlers.RespondNotFound(w, msgCompanyNotFound)

		case errors.Is(err, createBooking.ErrWarehouseNotFound):
			h.logger.Warn("POST /bookings - Warehouse not found: warehouse_id=%d", req.WarehouseID)
			handlers.RespondNotFound(w, msgWarehouseNotFound)

		case errors.Is(err, createBooking.ErrVehicleTypeNotFound):
			h.logger.Warn("POST /bookings - Vehicle type not found: vehicle_type_id=%d", req.VehicleTypeID)
			handlers.RespondNotFound(w, msgVehicleNotFound)

		case errors.Is(err, createBooking.ErrPalletCountExceedsCapacity):
			h.logger.Warn("POST /bookings - Pallet count exceeds capacity: user_id=%d, company_id=%d", userID, req.CompanyID)
			handlers.RespondBadRequest(w, msgTooManyPallets)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid booking date: user_id=%d, company_id=%d", userID, req.CompanyID)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createBooking.ErrInvalidTimeSlot):
			h.logger.Warn("POST /bookings - Invalid time slot: user_id=%d, company_id=%d", userID, req.CompanyID)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, company_id=%d, error=%v",
				userID, req.CompanyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, user_id=%d, company_id=%d",
		result.ID, userID, req.CompanyID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
