package update_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/WMS-DockService/internal/api/handlers"
	"github.com/m04kA/WMS-DockService/internal/api/middleware"
	confirmBooking "github.com/m04kA/WMS-DockService/internal/usecase/confirm_booking"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgMissingAPIKey       = "отсутствует API-ключ"
	msgInvalidParams       = "некорректные параметры запроса"
	msgUnknownConfirmation = "неизвестный идентификатор подтверждения"
	msgReservationExpired  = "окно подтверждения истекло, запросите бронирование заново"
	msgSlotNotAvailable    = "выбранный временной слот больше недоступен"
)

type Handler struct {
	useCase ConfirmBookingUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/integration/bookings/{confirmationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем confirmationId из URL
	vars := mux.Vars(r)
	confirmationID := vars["confirmationId"]

	// Получаем companyID из контекста (через middleware IntegrationAuth)
	companyID, ok := middleware.GetCompanyID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /integration/bookings/{id} - Missing company ID")
		handlers.RespondUnauthorized(w, msgMissingAPIKey)
		return
	}

	var req UpdateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /integration/bookings/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом времени)
	useCaseReq, err := req.ToUseCaseRequest(companyID, confirmationID)
	if err != nil {
		h.logger.Warn("PATCH /integration/bookings/{id} - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, confirmBooking.ErrUnknownConfirmation):
			h.logger.Warn("PATCH /integration/bookings/{id} - Unknown confirmation: company_id=%d, confirmation=%s",
				companyID, confirmationID)
			handlers.RespondNotFound(w, msgUnknownConfirmation)

		case errors.Is(err, confirmBooking.ErrReservationExpired):
			h.logger.Warn("PATCH /integration/bookings/{id} - Reservation expired: company_id=%d, confirmation=%s",
				companyID, confirmationID)
			handlers.RespondError(w, http.StatusGone, msgReservationExpired)

		case errors.Is(err, confirmBooking.ErrSlotNoLongerAvailable):
			h.logger.Warn("PATCH /integration/bookings/{id} - Slot no longer available: company_id=%d, confirmation=%s",
				companyID, confirmationID)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, confirmBooking.ErrInvalidInput):
			h.logger.Warn("PATCH /integration/bookings/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("PATCH /integration/bookings/{id} - Failed to confirm booking: company_id=%d, error=%v",
				companyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /integration/bookings/{id} - Booking confirmed: booking_id=%d, company_id=%d, dock=%s",
		result.BookingID, companyID, result.DockName)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
