package confirm_booking

import (
	"time"

	"github.com/m04kA/WMS-DockService/pkg/types"
)

// Request модель запроса на подтверждение provisional-бронирования
type Request struct {
	CompanyID      int64  // ID компании (из API-ключа)
	ConfirmationID string // Идентификатор из ответа на запрос бронирования

	// Желаемое время начала - исходный или один из альтернативных слотов.
	// Пустое значение подтверждает исходный слот
	PreferredStartTime types.TimeString
}

// Response модель ответа с подтверждённым бронированием
type Response struct {
	BookingID      int64
	ConfirmationID string
	DockName       string
	BookingDate    time.Time
	StartTime      types.TimeString
	EndTime        types.TimeString
	Status         string
}
