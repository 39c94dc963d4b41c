package confirm_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/WMS-DockService/internal/domain"
	storage "github.com/m04kA/WMS-DockService/internal/infra/storage/booking"
	"github.com/m04kA/WMS-DockService/pkg/types"
)

type fakeBookingRepo struct {
	byConfirmation map[string]*domain.Booking
	bookings       []*domain.Booking

	confirmedID    int64
	confirmedDock  int64
	confirmedStart types.TimeString
	confirmedEnd   types.TimeString
	confirmErr     error

	deletedIDs []int64
}

func (f *fakeBookingRepo) GetByConfirmationID(_ context.Context, confirmationID string) (*domain.Booking, error) {
	booking, ok := f.byConfirmation[confirmationID]
	if !ok {
		return nil, storage.ErrBookingNotFound
	}
	return booking, nil
}

func (f *fakeBookingRepo) ListForDate(_ context.Context, _, _ int64, _ time.Time) ([]*domain.Booking, error) {
	return f.bookings, nil
}

func (f *fakeBookingRepo) Confirm(_ context.Context, id, dockID int64, startTime, endTime types.TimeString) error {
	if f.confirmErr != nil {
		return f.confirmErr
	}
	f.confirmedID = id
	f.confirmedDock = dockID
	f.confirmedStart = startTime
	f.confirmedEnd = endTime
	return nil
}

func (f *fakeBookingRepo) Delete(_ context.Context, id int64) error {
	f.deletedIDs = append(f.deletedIDs, id)
	return nil
}

type fakeDockRepo struct {
	docks []*domain.Dock
}

func (f *fakeDockRepo) ListActive(_ context.Context, _, _ int64) ([]*domain.Dock, error) {
	return f.docks, nil
}

type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeTimeProvider struct {
	now time.Time
}

func (f *fakeTimeProvider) Now() time.Time {
	return f.now
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

var (
	testNow  = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	testDate = time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
)

func provisionalBooking() *domain.Booking {
	confirmationID := "conf-123"
	expiresAt := testNow.Add(15 * time.Minute)
	return &domain.Booking{
		ID:                    42,
		CompanyID:             1,
		WarehouseID:           7,
		DockID:                1,
		BookingDate:           testDate,
		StartTime:             "09:00",
		EndTime:               "09:45",
		DurationMinutes:       45,
		PalletCount:           9,
		VehicleTypeID:         3,
		MovementType:          domain.MovementInwards,
		Status:                domain.StatusProvisional,
		ConfirmationID:        &confirmationID,
		ConfirmationExpiresAt: &expiresAt,
	}
}

func testDock(id int64, name string) *domain.Dock {
	return &domain.Dock{
		ID:           id,
		CompanyID:    1,
		WarehouseID:  7,
		Name:         name,
		StartHour:    7,
		EndHour:      17,
		MovementType: domain.MovementBoth,
		IsActive:     true,
	}
}

func testUseCase(bookingRepo *fakeBookingRepo, dockRepo *fakeDockRepo) *UseCase {
	uc := NewUseCase(bookingRepo, dockRepo, &fakeTxManager{}, noopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: testNow}
	return uc
}

func TestExecute_ConfirmsOriginalSlot(t *testing.T) {
	booking := provisionalBooking()
	bookingRepo := &fakeBookingRepo{
		byConfirmation: map[string]*domain.Booking{"conf-123": booking},
		bookings:       []*domain.Booking{booking},
	}
	dockRepo := &fakeDockRepo{docks: []*domain.Dock{testDock(1, "Dock-1")}}

	uc := testUseCase(bookingRepo, dockRepo)

	resp, err := uc.Execute(context.Background(), &Request{CompanyID: 1, ConfirmationID: "conf-123"})
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.BookingID)
	assert.Equal(t, "Dock-1", resp.DockName)
	assert.Equal(t, types.TimeString("09:00"), resp.StartTime)
	assert.Equal(t, types.TimeString("09:45"), resp.EndTime)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)

	assert.Equal(t, int64(42), bookingRepo.confirmedID)
	assert.Equal(t, int64(1), bookingRepo.confirmedDock)
}

func TestExecute_PreferredStartTime(t *testing.T) {
	booking := provisionalBooking()
	bookingRepo := &fakeBookingRepo{
		byConfirmation: map[string]*domain.Booking{"conf-123": booking},
		bookings:       []*domain.Booking{booking},
	}
	dockRepo := &fakeDockRepo{docks: []*domain.Dock{testDock(1, "Dock-1")}}

	uc := testUseCase(bookingRepo, dockRepo)

	resp, err := uc.Execute(context.Background(), &Request{
		CompanyID:          1,
		ConfirmationID:     "conf-123",
		PreferredStartTime: "11:30",
	})
	require.NoError(t, err)

	assert.Equal(t, types.TimeString("11:30"), resp.StartTime)
	assert.Equal(t, types.TimeString("12:15"), resp.EndTime)
	assert.Equal(t, types.TimeString("11:30"), bookingRepo.confirmedStart)
	assert.Equal(t, types.TimeString("12:15"), bookingRepo.confirmedEnd)
}

func TestExecute_OwnProvisionalDoesNotBlockSlot(t *testing.T) {
	// Единственное занимающее слот бронирование - собственный provisional.
	// Подтверждение исходного времени должно пройти
	booking := provisionalBooking()
	bookingRepo := &fakeBookingRepo{
		byConfirmation: map[string]*domain.Booking{"conf-123": booking},
		bookings:       []*domain.Booking{booking},
	}
	dockRepo := &fakeDockRepo{docks: []*domain.Dock{testDock(1, "Dock-1")}}

	uc := testUseCase(bookingRepo, dockRepo)

	_, err := uc.Execute(context.Background(), &Request{CompanyID: 1, ConfirmationID: "conf-123"})
	assert.NoError(t, err)
}

func TestExecute_UnknownConfirmation(t *testing.T) {
	bookingRepo := &fakeBookingRepo{byConfirmation: map[string]*domain.Booking{}}

	uc := testUseCase(bookingRepo, &fakeDockRepo{})

	_, err := uc.Execute(context.Background(), &Request{CompanyID: 1, ConfirmationID: "missing"})
	assert.ErrorIs(t, err, ErrUnknownConfirmation)
}

func TestExecute_ForeignConfirmationIndistinguishable(t *testing.T) {
	booking := provisionalBooking()
	bookingRepo := &fakeBookingRepo{
		byConfirmation: map[string]*domain.Booking{"conf-123": booking},
	}

	uc := testUseCase(bookingRepo, &fakeDockRepo{})

	_, err := uc.Execute(context.Background(), &Request{CompanyID: 99, ConfirmationID: "conf-123"})
	assert.ErrorIs(t, err, ErrUnknownConfirmation)
}

func TestExecute_AlreadyFinalized(t *testing.T) {
	booking := provisionalBooking()
	booking.Status = domain.StatusConfirmed
	bookingRepo := &fakeBookingRepo{
		byConfirmation: map[string]*domain.Booking{"conf-123": booking},
	}

	uc := testUseCase(bookingRepo, &fakeDockRepo{})

	_, err := uc.Execute(context.Background(), &Request{CompanyID: 1, ConfirmationID: "conf-123"})
	assert.ErrorIs(t, err, ErrUnknownConfirmation)
}

func TestExecute_ReservationExpired(t *testing.T) {
	booking := provisionalBooking()
	bookingRepo := &fakeBookingRepo{
		byConfirmation: map[string]*domain.Booking{"conf-123": booking},
	}
	dockRepo := &fakeDockRepo{docks: []*domain.Dock{testDock(1, "Dock-1")}}

	uc := testUseCase(bookingRepo, dockRepo)
	// Попытка подтверждения через 16 минут после создания
	uc.timeProvider = &fakeTimeProvider{now: testNow.Add(16 * time.Minute)}

	_, err := uc.Execute(context.Background(), &Request{CompanyID: 1, ConfirmationID: "conf-123"})
	assert.ErrorIs(t, err, ErrReservationExpired)
	assert.Equal(t, []int64{42}, bookingRepo.deletedIDs, "просроченное бронирование удаляется")
	assert.Zero(t, bookingRepo.confirmedID)
}

func TestExecute_SlotNoLongerAvailable(t *testing.T) {
	// Конкурент занял желаемое время на единственном доке
	booking := provisionalBooking()
	competitor := &domain.Booking{
		ID:        77,
		CompanyID: 1,
		DockID:    1,
		StartTime: "11:30",
		EndTime:   "12:30",
		Status:    domain.StatusConfirmed,
	}
	bookingRepo := &fakeBookingRepo{
		byConfirmation: map[string]*domain.Booking{"conf-123": booking},
		bookings:       []*domain.Booking{booking, competitor},
	}
	dockRepo := &fakeDockRepo{docks: []*domain.Dock{testDock(1, "Dock-1")}}

	uc := testUseCase(bookingRepo, dockRepo)

	_, err := uc.Execute(context.Background(), &Request{
		CompanyID:          1,
		ConfirmationID:     "conf-123",
		PreferredStartTime: "11:30",
	})
	assert.ErrorIs(t, err, ErrSlotNoLongerAvailable)
	assert.Zero(t, bookingRepo.confirmedID, "бронирование не подтверждается")
	assert.Empty(t, bookingRepo.deletedIDs, "provisional-бронирование сохраняется для повторной попытки")
}

func TestExecute_ConcurrentFinalization(t *testing.T) {
	booking := provisionalBooking()
	bookingRepo := &fakeBookingRepo{
		byConfirmation: map[string]*domain.Booking{"conf-123": booking},
		bookings:       []*domain.Booking{booking},
		confirmErr:     storage.ErrBookingNotFound,
	}
	dockRepo := &fakeDockRepo{docks: []*domain.Dock{testDock(1, "Dock-1")}}

	uc := testUseCase(bookingRepo, dockRepo)

	_, err := uc.Execute(context.Background(), &Request{CompanyID: 1, ConfirmationID: "conf-123"})
	assert.ErrorIs(t, err, ErrUnknownConfirmation)
}

func TestExecute_SlotCrossesMidnight(t *testing.T) {
	booking := provisionalBooking()
	bookingRepo := &fakeBookingRepo{
		byConfirmation: map[string]*domain.Booking{"conf-123": booking},
	}

	uc := testUseCase(bookingRepo, &fakeDockRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		CompanyID:          1,
		ConfirmationID:     "conf-123",
		PreferredStartTime: "23:30",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_ValidationErrors(t *testing.T) {
	uc := testUseCase(&fakeBookingRepo{}, &fakeDockRepo{})

	_, err := uc.Execute(context.Background(), &Request{CompanyID: 0, ConfirmationID: "conf-123"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{CompanyID: 1, ConfirmationID: " "})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{
		CompanyID:          1,
		ConfirmationID:     "conf-123",
		PreferredStartTime: "9:5",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
