package get_available_slots

import (
	"time"

	"github.com/m04kA/WMS-DockService/internal/domain"
	"github.com/m04kA/WMS-DockService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	UserID        int64               // ID пользователя (для логирования, не влияет на результат)
	CompanyID     int64               // ID компании
	WarehouseID   int64               // ID склада
	VehicleTypeID int64               // ID типа транспорта
	MovementType  domain.MovementType // Направление движения (inwards/outwards)
	PalletCount   int                 // Количество паллет
	Date          time.Time           // Дата для получения слотов (без времени)
}

// Response модель ответа со списком слотов дня
type Response struct {
	Date            time.Time // Дата, на которую запрашивались слоты
	CompanyID       int64     // ID компании
	WarehouseID     int64     // ID склада
	DurationMinutes int       // Рассчитанная длительность операции
	Slots           []Slot    // Все слоты дня с признаком доступности
}

// Slot модель временного слота
// Недоступные слоты не содержат информации о причине или доке - наружу
// отдается только сам факт недоступности
type Slot struct {
	StartTime       types.TimeString // Время начала слота (например, "10:00")
	DurationMinutes int              // Длительность операции в минутах
	Available       bool             // Есть ли свободный совместимый док
}
