package allocation

import (
	"time"

	"github.com/m04kA/WMS-DockService/internal/domain"
	"github.com/m04kA/WMS-DockService/pkg/interval"
)

// CheckAvailability проверяет, что хотя бы один док может принять операцию
// [start, start+duration) без конфликтов
//
// Док подходит, если интервал целиком лежит в его рабочих часах и ни одно
// занимающее док бронирование не пересекается с интервалом. Просроченные
// provisional-бронирования док не занимают.
func CheckAvailability(
	start int,
	durationMinutes int,
	docks []*domain.Dock,
	bookings []*domain.Booking,
	now time.Time,
) bool {
	for _, dock := range docks {
		if dockFits(start, durationMinutes, dock, bookings, 0, now) {
			return true
		}
	}
	return false
}

// dockFits проверяет один док: попадание в рабочие часы и отсутствие конфликтов
// Бронирование с ID excludeBookingID не учитывается (используется при
// переназначении слота существующего бронирования)
func dockFits(
	start int,
	durationMinutes int,
	dock *domain.Dock,
	bookings []*domain.Booking,
	excludeBookingID int64,
	now time.Time,
) bool {
	end := start + durationMinutes

	if !interval.Within(start, end, dock.OpenMinutes(), dock.CloseMinutes()) {
		return false
	}

	for _, booking := range bookings {
		if booking.DockID != dock.ID {
			continue
		}
		if excludeBookingID != 0 && booking.ID == excludeBookingID {
			continue
		}
		if !booking.Occupies(now) {
			continue
		}
		if interval.Overlaps(start, end, booking.StartTime.Minutes(), booking.EndTime.Minutes()) {
			return false
		}
	}

	return true
}
