package allocation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/WMS-DockService/internal/domain"
)

func TestAllocateDock_FirstFreeDockInOrder(t *testing.T) {
	docks := []*domain.Dock{
		testDock(1, "Dock-1", 7, 17),
		testDock(2, "Dock-2", 7, 17),
		testDock(3, "Dock-3", 7, 17),
	}
	bookings := []*domain.Booking{
		testBooking(100, 1, "10:00", "10:30", domain.StatusConfirmed),
	}

	dock, ok := AllocateDock(10*60, 30, docks, bookings, 0, dayBefore)
	require.True(t, ok)
	assert.Equal(t, int64(2), dock.ID, "первый свободный док в порядке списка")

	// На свободном времени выбирается первый док
	dock, ok = AllocateDock(11*60, 30, docks, bookings, 0, dayBefore)
	require.True(t, ok)
	assert.Equal(t, int64(1), dock.ID)
}

func TestAllocateDock_NoDockAvailable(t *testing.T) {
	docks := []*domain.Dock{testDock(1, "Dock-1", 7, 17)}
	bookings := []*domain.Booking{
		testBooking(100, 1, "10:00", "11:00", domain.StatusConfirmed),
	}

	_, ok := AllocateDock(10*60+30, 30, docks, bookings, 0, dayBefore)
	assert.False(t, ok)

	// Вне рабочих часов дока
	_, ok = AllocateDock(6*60, 30, docks, nil, 0, dayBefore)
	assert.False(t, ok)
}

func TestAllocateDock_ExcludeOwnBooking(t *testing.T) {
	docks := []*domain.Dock{testDock(1, "Dock-1", 7, 17)}
	own := testBooking(100, 1, "10:00", "10:45", domain.StatusProvisional)

	// Без исключения собственное бронирование блокирует слот
	_, ok := AllocateDock(10*60, 45, docks, []*domain.Booking{own}, 0, dayBefore)
	assert.False(t, ok)

	// С исключением - слот свободен для переназначения
	dock, ok := AllocateDock(10*60, 45, docks, []*domain.Booking{own}, 100, dayBefore)
	require.True(t, ok)
	assert.Equal(t, int64(1), dock.ID)
}

// Слот, занятый выделенным бронированием, при повторной проверке недоступен
func TestAllocateDock_ThenRecheckUnavailable(t *testing.T) {
	docks := []*domain.Dock{testDock(1, "Dock-1", 7, 17)}

	dock, ok := AllocateDock(10*60, 45, docks, nil, 0, dayBefore)
	require.True(t, ok)

	created := testBooking(200, dock.ID, "10:00", "10:45", domain.StatusConfirmed)

	_, ok = AllocateDock(10*60, 45, docks, []*domain.Booking{created}, 0, dayBefore)
	assert.False(t, ok)
	assert.False(t, CheckAvailability(10*60, 45, docks, []*domain.Booking{created}, dayBefore))
}

func TestFilterDocks(t *testing.T) {
	inactive := testDock(1, "Dock-1", 7, 17)
	inactive.IsActive = false

	inwardsOnly := testDock(2, "Dock-2", 7, 17)
	inwardsOnly.MovementType = domain.MovementInwards

	restricted := testDock(3, "Dock-3", 7, 17)
	restricted.CompatibleVehicleTypeIDs = []int64{10, 20}

	universal := testDock(4, "Dock-4", 7, 17)

	docks := []*domain.Dock{inactive, inwardsOnly, restricted, universal}

	t.Run("неактивные доки отбрасываются", func(t *testing.T) {
		filtered := FilterDocks(docks, domain.MovementInwards, 10)
		for _, d := range filtered {
			assert.True(t, d.IsActive)
		}
	})

	t.Run("направление движения", func(t *testing.T) {
		filtered := FilterDocks(docks, domain.MovementOutwards, 10)
		require.Len(t, filtered, 2)
		assert.Equal(t, int64(3), filtered[0].ID)
		assert.Equal(t, int64(4), filtered[1].ID)
	})

	t.Run("тип транспорта", func(t *testing.T) {
		filtered := FilterDocks(docks, domain.MovementInwards, 99)
		require.Len(t, filtered, 2)
		assert.Equal(t, int64(2), filtered[0].ID)
		assert.Equal(t, int64(4), filtered[1].ID, "док без ограничений совместим с любым типом")
	})

	t.Run("порядок списка сохраняется", func(t *testing.T) {
		filtered := FilterDocks(docks, domain.MovementInwards, 10)
		require.Len(t, filtered, 3)
		assert.Equal(t, []int64{2, 3, 4}, []int64{filtered[0].ID, filtered[1].ID, filtered[2].ID})
	})
}
