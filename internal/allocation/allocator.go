package allocation

import (
	"time"

	"github.com/m04kA/WMS-DockService/internal/domain"
)

// AllocateDock выбирает конкретный док для подтверждённого слота
//
// Доки перебираются в порядке переданного списка, возвращается первый
// подходящий (рабочие часы + отсутствие конфликтов). Детерминированность
// выбора обеспечивается стабильным порядком списка - репозиторий доков
// возвращает их отсортированными по id.
//
// excludeBookingID исключает собственное бронирование из проверки конфликтов
// при переназначении слота (0 - не исключать).
//
// Второе возвращаемое значение false означает, что ни один док не подошёл.
// Это штатный исход (например, проигранная гонка), а не ошибка.
func AllocateDock(
	start int,
	durationMinutes int,
	docks []*domain.Dock,
	bookings []*domain.Booking,
	excludeBookingID int64,
	now time.Time,
) (*domain.Dock, bool) {
	for _, dock := range docks {
		if dockFits(start, durationMinutes, dock, bookings, excludeBookingID, now) {
			return dock, true
		}
	}
	return nil, false
}

// FilterDocks отбирает активные доки, совместимые с направлением движения
// и типом транспорта, сохраняя порядок исходного списка
func FilterDocks(docks []*domain.Dock, movement domain.MovementType, vehicleTypeID int64) []*domain.Dock {
	filtered := make([]*domain.Dock, 0, len(docks))
	for _, dock := range docks {
		if !dock.IsActive {
			continue
		}
		if !dock.AcceptsMovement(movement) {
			continue
		}
		if !dock.AcceptsVehicleType(vehicleTypeID) {
			continue
		}
		filtered = append(filtered, dock)
	}
	return filtered
}
