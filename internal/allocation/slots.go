package allocation

import (
	"time"

	"github.com/m04kA/WMS-DockService/internal/domain"
	"github.com/m04kA/WMS-DockService/pkg/types"
)

// GenerateSlots генерирует кандидатные времена начала слотов на день
// в минутах от начала суток
//
// Границы - объединение рабочих часов переданных доков: от самого раннего
// открытия до самого позднего закрытия, с фиксированным шагом intervalMinutes.
// Попадание слота в часы конкретного дока здесь не проверяется - этим
// занимается проверка доступности.
//
// Если дата бронирования - сегодня, кандидаты строго раньше текущего времени
// отбрасываются. Для пустого списка доков возвращается пустой список.
func GenerateSlots(date time.Time, docks []*domain.Dock, intervalMinutes int, now time.Time) []int {
	if len(docks) == 0 || intervalMinutes <= 0 {
		return []int{}
	}

	earliestOpen := docks[0].OpenMinutes()
	latestClose := docks[0].CloseMinutes()
	for _, dock := range docks[1:] {
		if dock.OpenMinutes() < earliestOpen {
			earliestOpen = dock.OpenMinutes()
		}
		if dock.CloseMinutes() > latestClose {
			latestClose = dock.CloseMinutes()
		}
	}

	// Для сегодняшней даты слоты в прошлом не предлагаются
	cutoff := -1
	if isSameDay(date, now) {
		cutoff = now.Hour()*60 + now.Minute()
	}

	slots := make([]int, 0)
	for start := earliestOpen; start < latestClose; start += intervalMinutes {
		if start < cutoff {
			continue
		}
		slots = append(slots, start)
	}

	return slots
}

// AnnotateSlots возвращает все слоты дня с признаком доступности
// для операции указанной длительности
func AnnotateSlots(
	date time.Time,
	docks []*domain.Dock,
	bookings []*domain.Booking,
	durationMinutes int,
	intervalMinutes int,
	now time.Time,
) []domain.Slot {
	starts := GenerateSlots(date, docks, intervalMinutes, now)

	slots := make([]domain.Slot, len(starts))
	for i, start := range starts {
		startTime, err := types.NewTimeStringFromMinutes(start)
		if err != nil {
			continue
		}
		slots[i] = domain.Slot{
			StartTime:       startTime,
			DurationMinutes: durationMinutes,
			Available:       CheckAvailability(start, durationMinutes, docks, bookings, now),
		}
	}

	return slots
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
