package create_booking

import (
	"time"

	"github.com/m04kA/WMS-DockService/internal/domain"
	"github.com/m04kA/WMS-DockService/pkg/types"
)

// Request модель запроса на создание бронирования (интерактивный поток)
// Слот выбран пользователем заранее; доступность проверяется повторно
// в момент записи
type Request struct {
	UserID        int64               // ID пользователя (для логирования)
	CompanyID     int64               // ID компании
	WarehouseID   int64               // ID склада
	VehicleTypeID int64               // ID типа транспорта
	MovementType  domain.MovementType // Направление движения (inwards/outwards)
	PalletCount   int                 // Количество паллет
	Date          time.Time           // Дата бронирования (без времени)
	StartTime     types.TimeString    // Время начала слота (например, "10:00")

	// Денормализуемые данные для истории (опционально)
	CarrierName     *string
	SenderName      *string
	ReferenceNumber *string
	Notes           *string
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              int64
	CompanyID       int64
	WarehouseID     int64
	DockID          int64
	BookingDate     time.Time
	StartTime       types.TimeString
	EndTime         types.TimeString
	DurationMinutes int
	PalletCount     int
	VehicleTypeID   int64
	MovementType    domain.MovementType
	Status          string

	CarrierName     *string
	SenderName      *string
	ReferenceNumber *string
	Notes           *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
