package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/WMS-DockService/internal/domain"
	"github.com/m04kA/WMS-DockService/internal/integrations/companyservice"
	"github.com/m04kA/WMS-DockService/pkg/types"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
	created  []*domain.Booking
	nextID   int64
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	f.nextID++
	copied := *booking
	copied.ID = f.nextID
	f.created = append(f.created, &copied)
	return &copied, nil
}

func (f *fakeBookingRepo) ListForDate(_ context.Context, _, _ int64, _ time.Time) ([]*domain.Booking, error) {
	return f.bookings, nil
}

type fakeDockRepo struct {
	docks []*domain.Dock
}

func (f *fakeDockRepo) ListActive(_ context.Context, _, _ int64) ([]*domain.Dock, error) {
	return f.docks, nil
}

type fakeCompanyClient struct {
	company     *companyservice.Company
	warehouse   *companyservice.Warehouse
	vehicleType *companyservice.VehicleType
}

func (f *fakeCompanyClient) GetCompany(_ context.Context, _ int64) (*companyservice.Company, error) {
	return f.company, nil
}

func (f *fakeCompanyClient) GetWarehouse(_ context.Context, _, _ int64) (*companyservice.Warehouse, error) {
	return f.warehouse, nil
}

func (f *fakeCompanyClient) GetVehicleType(_ context.Context, _, _ int64) (*companyservice.VehicleType, error) {
	return f.vehicleType, nil
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

func testClient() *fakeCompanyClient {
	return &fakeCompanyClient{
		company: &companyservice.Company{
			ID:                1,
			Name:              "Логистик Плюс",
			MinBookingMinutes: 15,
			Tiers: []companyservice.TierRule{
				{PalletBreak: 10, TimePerPallet: 5},
				{PalletBreak: 25, TimePerPallet: 3},
			},
		},
		warehouse:   &companyservice.Warehouse{ID: 7, CompanyID: 1, Code: "MSK-01", Name: "Склад Москва"},
		vehicleType: &companyservice.VehicleType{ID: 3, CompanyID: 1, Code: "TRUCK-20", MaxPallets: 33},
	}
}

func testUseCase(bookingRepo *fakeBookingRepo, dockRepo *fakeDockRepo, client *fakeCompanyClient) *UseCase {
	uc := NewUseCase(bookingRepo, dockRepo, client, &fakeTxManager{}, noopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: testNow}
	return uc
}

func activeDock(id int64, name string) *domain.Dock {
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

func testRequest() *Request {
	return &Request{
		UserID:        10,
		CompanyID:     1,
		WarehouseID:   7,
		VehicleTypeID: 3,
		MovementType:  domain.MovementInwards,
		PalletCount:   5, // 25 минут по тарифу компании
		Date:          testDate,
		StartTime:     "10:00",
	}
}

func TestExecute_CreatesConfirmedBooking(t *testing.T) {
	bookingRepo := &fakeBookingRepo{}
	dockRepo := &fakeDockRepo{docks: []*domain.Dock{activeDock(1, "Dock-1"), activeDock(2, "Dock-2")}}

	uc := testUseCase(bookingRepo, dockRepo, testClient())

	resp, err := uc.Execute(context.Background(), testRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.DockID, "первый свободный док в порядке id")
	assert.Equal(t, types.TimeString("10:00"), resp.StartTime)
	assert.Equal(t, types.TimeString("10:25"), resp.EndTime)
	assert.Equal(t, 25, resp.DurationMinutes)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)

	require.Len(t, bookingRepo.created, 1)
	assert.Equal(t, domain.StatusConfirmed, bookingRepo.created[0].Status)
	assert.Nil(t, bookingRepo.created[0].ConfirmationID, "интерактивный поток не создаёт provisional")
}

func TestExecute_SkipsBusyDock(t *testing.T) {
	occupied := &domain.Booking{
		ID:        100,
		DockID:    1,
		StartTime: "10:00",
		EndTime:   "10:30",
		Status:    domain.StatusConfirmed,
	}
	bookingRepo := &fakeBookingRepo{bookings: []*domain.Booking{occupied}}
	dockRepo := &fakeDockRepo{docks: []*domain.Dock{activeDock(1, "Dock-1"), activeDock(2, "Dock-2")}}

	uc := testUseCase(bookingRepo, dockRepo, testClient())

	resp, err := uc.Execute(context.Background(), testRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.DockID)
}

func TestExecute_SlotNoLongerAvailable(t *testing.T) {
	// Слот заняли между показом пользователю и подтверждением
	occupied := &domain.Booking{
		ID:        100,
		DockID:    1,
		StartTime: "10:00",
		EndTime:   "10:30",
		Status:    domain.StatusConfirmed,
	}
	bookingRepo := &fakeBookingRepo{bookings: []*domain.Booking{occupied}}
	dockRepo := &fakeDockRepo{docks: []*domain.Dock{activeDock(1, "Dock-1")}}

	uc := testUseCase(bookingRepo, dockRepo, testClient())

	_, err := uc.Execute(context.Background(), testRequest())
	assert.ErrorIs(t, err, ErrSlotNoLongerAvailable)
	assert.Empty(t, bookingRepo.created, "бронирование не создаётся")
}

func TestExecute_VehicleOverridePolicy(t *testing.T) {
	client := testClient()
	client.vehicleType.UseCustomCalculation = true
	client.vehicleType.MinBookingMinutes = 60
	client.vehicleType.Tiers = []companyservice.TierRule{{PalletBreak: 50, TimePerPallet: 2}}

	bookingRepo := &fakeBookingRepo{}
	dockRepo := &fakeDockRepo{docks: []*domain.Dock{activeDock(1, "Dock-1")}}

	uc := testUseCase(bookingRepo, dockRepo, client)

	resp, err := uc.Execute(context.Background(), testRequest())
	require.NoError(t, err)
	// 5 паллет * 2 мин = 10, поднимается до минимума политики транспорта
	assert.Equal(t, 60, resp.DurationMinutes)
}

func TestExecute_StartTimeInPastToday(t *testing.T) {
	uc := testUseCase(&fakeBookingRepo{}, &fakeDockRepo{}, testClient())

	req := testRequest()
	req.Date = testNow // сегодня, 12:00
	req.StartTime = "11:30"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestExecute_SlotCrossesMidnight(t *testing.T) {
	uc := testUseCase(&fakeBookingRepo{}, &fakeDockRepo{}, testClient())

	req := testRequest()
	req.StartTime = "23:45"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestExecute_PalletCountExceedsCapacity(t *testing.T) {
	client := testClient()
	client.vehicleType.MaxPallets = 10

	uc := testUseCase(&fakeBookingRepo{}, &fakeDockRepo{}, client)

	req := testRequest()
	req.PalletCount = 11

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrPalletCountExceedsCapacity)
}

func TestExecute_DateInPast(t *testing.T) {
	uc := testUseCase(&fakeBookingRepo{}, &fakeDockRepo{}, testClient())

	req := testRequest()
	req.Date = testNow.AddDate(0, 0, -1)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)
}
