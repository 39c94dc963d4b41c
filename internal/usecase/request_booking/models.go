package request_booking

import (
	"time"

	"github.com/m04kA/WMS-DockService/internal/domain"
	"github.com/m04kA/WMS-DockService/pkg/types"
)

// Request модель запроса на предварительное бронирование (машинный API)
// Время не указывается - система сама подбирает самый ранний свободный слот
type Request struct {
	CompanyID       int64               // ID компании (из API-ключа)
	WarehouseCode   string              // Код склада
	VehicleTypeCode string              // Код типа транспорта
	MovementType    domain.MovementType // Направление движения (inwards/outwards)
	CarrierName     string              // Название перевозчика
	PalletCount     int                 // Количество паллет
	Date            time.Time           // Дата бронирования (без времени)

	// Денормализуемые данные для истории (опционально)
	SenderName      *string
	ReferenceNumber *string
}

// AssignedSlot назначенный слот с данными дока для интегратора
type AssignedSlot struct {
	DockName  string
	StartTime types.TimeString
	EndTime   types.TimeString
	ImageURL  *string
	Notes     *string
}

// AlternativeSlot альтернативный свободный слот того же дня
type AlternativeSlot struct {
	DockName  string
	StartTime types.TimeString
}

// Response модель ответа с предварительным бронированием
type Response struct {
	BookingID      int64
	ConfirmationID string
	ExpiresAt      time.Time

	AssignedSlot   AssignedSlot
	AvailableSlots []AlternativeSlot

	CompanyName      string
	WarehouseName    string
	WarehouseAddress string
}
