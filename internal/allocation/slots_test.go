package allocation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/WMS-DockService/internal/domain"
	"github.com/m04kA/WMS-DockService/pkg/types"
)

func testDock(id int64, name string, startHour, endHour int) *domain.Dock {
	return &domain.Dock{
		ID:           id,
		CompanyID:    1,
		WarehouseID:  1,
		Name:         name,
		StartHour:    startHour,
		EndHour:      endHour,
		MovementType: domain.MovementBoth,
		IsActive:     true,
	}
}

func testBooking(id, dockID int64, start, end types.TimeString, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:              id,
		CompanyID:       1,
		WarehouseID:     1,
		DockID:          dockID,
		StartTime:       start,
		EndTime:         end,
		DurationMinutes: end.Minutes() - start.Minutes(),
		Status:          status,
	}
}

var (
	futureDate = time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	// За день до бронируемой даты, та же временная зона
	dayBefore = time.Date(2026, 9, 9, 12, 0, 0, 0, time.UTC)
)

func TestGenerateSlots_UnionOfDockHours(t *testing.T) {
	docks := []*domain.Dock{
		testDock(1, "Dock-1", 9, 12),
		testDock(2, "Dock-2", 7, 11),
	}

	starts := GenerateSlots(futureDate, docks, 30, dayBefore)

	require.NotEmpty(t, starts)
	assert.Equal(t, 7*60, starts[0], "первый слот от самого раннего открытия")
	assert.Equal(t, 12*60-30, starts[len(starts)-1], "последний слот перед самым поздним закрытием")
	assert.Len(t, starts, 10) // 07:00..11:30 с шагом 30
}

func TestGenerateSlots_SameDayCutoff(t *testing.T) {
	docks := []*domain.Dock{testDock(1, "Dock-1", 7, 17)}

	now := time.Date(2026, 9, 10, 10, 10, 0, 0, time.UTC)
	starts := GenerateSlots(futureDate, docks, 30, now)

	require.NotEmpty(t, starts)
	assert.Equal(t, 10*60+30, starts[0], "слоты раньше текущего времени отбрасываются")
}

func TestGenerateSlots_EmptyDocks(t *testing.T) {
	assert.Empty(t, GenerateSlots(futureDate, nil, 30, dayBefore))
	assert.Empty(t, GenerateSlots(futureDate, []*domain.Dock{}, 30, dayBefore))
}

func TestCheckAvailability_BusyDockFreeDock(t *testing.T) {
	docks := []*domain.Dock{
		testDock(1, "Dock-1", 7, 17),
		testDock(2, "Dock-2", 7, 17),
	}
	bookings := []*domain.Booking{
		testBooking(100, 1, "10:00", "10:45", domain.StatusConfirmed),
	}

	// Dock-1 занят, но Dock-2 свободен
	assert.True(t, CheckAvailability(10*60+15, 30, docks, bookings, dayBefore))

	// Без Dock-2 слот недоступен
	assert.False(t, CheckAvailability(10*60+15, 30, docks[:1], bookings, dayBefore))

	// Слот, примыкающий к концу бронирования, доступен и на Dock-1
	assert.True(t, CheckAvailability(10*60+45, 30, docks[:1], bookings, dayBefore))
}

func TestCheckAvailability_DockClosingTime(t *testing.T) {
	docks := []*domain.Dock{testDock(1, "Dock-1", 7, 17)}

	// 16:45 + 30 минут упирается ровно в закрытие - допустимо
	assert.False(t, CheckAvailability(16*60+45, 30, docks, nil, dayBefore))
	assert.True(t, CheckAvailability(16*60+30, 30, docks, nil, dayBefore))

	// 16:45 + 45 минут выходит за закрытие
	assert.False(t, CheckAvailability(16*60+45, 45, docks, nil, dayBefore))
}

func TestCheckAvailability_ExpiredProvisionalDoesNotOccupy(t *testing.T) {
	docks := []*domain.Dock{testDock(1, "Dock-1", 7, 17)}

	expiresAt := time.Date(2026, 9, 9, 11, 0, 0, 0, time.UTC)
	provisional := testBooking(100, 1, "10:00", "10:45", domain.StatusProvisional)
	provisional.ConfirmationExpiresAt = &expiresAt

	// До истечения окна подтверждения бронирование занимает док
	before := expiresAt.Add(-time.Minute)
	assert.False(t, CheckAvailability(10*60, 30, docks, []*domain.Booking{provisional}, before))

	// После истечения - не занимает
	after := expiresAt.Add(time.Minute)
	assert.True(t, CheckAvailability(10*60, 30, docks, []*domain.Booking{provisional}, after))
}

func TestCheckAvailability_CancelledDoesNotOccupy(t *testing.T) {
	docks := []*domain.Dock{testDock(1, "Dock-1", 7, 17)}
	bookings := []*domain.Booking{
		testBooking(100, 1, "10:00", "10:45", domain.StatusCancelled),
	}

	assert.True(t, CheckAvailability(10*60, 30, docks, bookings, dayBefore))
}

func TestAnnotateSlots(t *testing.T) {
	docks := []*domain.Dock{testDock(1, "Dock-1", 9, 11)}
	bookings := []*domain.Booking{
		testBooking(100, 1, "09:30", "10:00", domain.StatusConfirmed),
	}

	slots := AnnotateSlots(futureDate, docks, bookings, 30, 30, dayBefore)

	require.Len(t, slots, 4) // 09:00, 09:30, 10:00, 10:30
	assert.Equal(t, types.TimeString("09:00"), slots[0].StartTime)
	assert.True(t, slots[0].Available)
	assert.False(t, slots[1].Available, "09:30 занят бронированием")
	assert.True(t, slots[2].Available)
	assert.True(t, slots[3].Available)
}
