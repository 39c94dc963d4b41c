package request_booking

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
	carrier     *companyservice.Carrier
	carrierErr  error
}

func (f *fakeCompanyClient) GetCompany(_ context.Context, _ int64) (*companyservice.Company, error) {
	return f.company, nil
}

func (f *fakeCompanyClient) GetWarehouseByCode(_ context.Context, _ int64, _ string) (*companyservice.Warehouse, error) {
	return f.warehouse, nil
}

func (f *fakeCompanyClient) GetVehicleTypeByCode(_ context.Context, _ int64, _ string) (*companyservice.VehicleType, error) {
	return f.vehicleType, nil
}

func (f *fakeCompanyClient) GetCarrierByName(_ context.Context, _ int64, _ string) (*companyservice.Carrier, error) {
	if f.carrierErr != nil {
		return nil, f.carrierErr
	}
	return f.carrier, nil
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

type fakeIDGenerator struct {
	id string
}

func (f *fakeIDGenerator) NewID() string {
	return f.id
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
		warehouse: &companyservice.Warehouse{
			ID: 7, CompanyID: 1, Code: "MSK-01", Name: "Склад Москва", Address: "Москва, ул. Складская, 1",
		},
		vehicleType: &companyservice.VehicleType{
			ID: 3, CompanyID: 1, Code: "TRUCK-20", Name: "Фура 20т", MaxPallets: 33,
		},
		carrier: &companyservice.Carrier{ID: 5, CompanyID: 1, Name: "ТК Восток"},
	}
}

func testUseCase(bookingRepo *fakeBookingRepo, dockRepo *fakeDockRepo, client *fakeCompanyClient) *UseCase {
	uc := NewUseCase(bookingRepo, dockRepo, client, &fakeTxManager{}, 30, 15, 5, noopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: testNow}
	uc.idGenerator = &fakeIDGenerator{id: "conf-123"}
	return uc
}

func testRequest() *Request {
	return &Request{
		CompanyID:       1,
		WarehouseCode:   "MSK-01",
		VehicleTypeCode: "TRUCK-20",
		MovementType:    domain.MovementInwards,
		CarrierName:     "ТК Восток",
		PalletCount:     5, // 25 минут по тарифу компании
		Date:            testDate,
	}
}

func activeDock(id int64, name string) *domain.Dock {
	return &domain.Dock{
		ID:           id,
		CompanyID:    1,
		WarehouseID:  7,
		Name:         name,
		StartHour:    9,
		EndHour:      11,
		MovementType: domain.MovementBoth,
		IsActive:     true,
	}
}

func TestExecute_AssignsEarliestSlot(t *testing.T) {
	bookingRepo := &fakeBookingRepo{}
	dockRepo := &fakeDockRepo{docks: []*domain.Dock{activeDock(1, "Dock-1")}}

	uc := testUseCase(bookingRepo, dockRepo, testClient())

	resp, err := uc.Execute(context.Background(), testRequest())
	require.NoError(t, err)

	assert.Equal(t, "conf-123", resp.ConfirmationID)
	assert.Equal(t, testNow.Add(15*time.Minute), resp.ExpiresAt)
	assert.Equal(t, "Dock-1", resp.AssignedSlot.DockName)
	assert.Equal(t, types.TimeString("09:00"), resp.AssignedSlot.StartTime)
	assert.Equal(t, types.TimeString("09:25"), resp.AssignedSlot.EndTime)
	assert.Equal(t, "Логистик Плюс", resp.CompanyName)
	assert.Equal(t, "Склад Москва", resp.WarehouseName)

	require.Len(t, bookingRepo.created, 1)
	created := bookingRepo.created[0]
	assert.Equal(t, domain.StatusProvisional, created.Status)
	require.NotNil(t, created.ConfirmationID)
	assert.Equal(t, "conf-123", *created.ConfirmationID)
	require.NotNil(t, created.CarrierName)
	assert.Equal(t, "ТК Восток", *created.CarrierName)
	assert.Equal(t, 25, created.DurationMinutes)
}

func TestExecute_SkipsOccupiedSlots(t *testing.T) {
	occupied := &domain.Booking{
		ID:        100,
		DockID:    1,
		StartTime: "09:00",
		EndTime:   "09:30",
		Status:    domain.StatusConfirmed,
	}
	bookingRepo := &fakeBookingRepo{bookings: []*domain.Booking{occupied}}
	dockRepo := &fakeDockRepo{docks: []*domain.Dock{activeDock(1, "Dock-1")}}

	uc := testUseCase(bookingRepo, dockRepo, testClient())

	resp, err := uc.Execute(context.Background(), testRequest())
	require.NoError(t, err)

	assert.Equal(t, types.TimeString("09:30"), resp.AssignedSlot.StartTime)
}

func TestExecute_ReturnsAlternatives(t *testing.T) {
	bookingRepo := &fakeBookingRepo{}
	dockRepo := &fakeDockRepo{docks: []*domain.Dock{activeDock(1, "Dock-1")}}

	uc := testUseCase(bookingRepo, dockRepo, testClient())

	resp, err := uc.Execute(context.Background(), testRequest())
	require.NoError(t, err)

	// Назначен 09:00-09:25; свободными остаются 09:30, 10:00 и 10:30
	require.Len(t, resp.AvailableSlots, 3)
	assert.Equal(t, types.TimeString("09:30"), resp.AvailableSlots[0].StartTime)
	assert.Equal(t, types.TimeString("10:00"), resp.AvailableSlots[1].StartTime)
	assert.Equal(t, types.TimeString("10:30"), resp.AvailableSlots[2].StartTime)
	assert.Equal(t, "Dock-1", resp.AvailableSlots[0].DockName)
}

func TestExecute_AlternativesAccountForCreatedBooking(t *testing.T) {
	// Два дока: созданное бронирование занимает Dock-1 на 09:00,
	// альтернатива на 09:00 отсутствует, следующие слоты предлагаются
	bookingRepo := &fakeBookingRepo{}
	dockRepo := &fakeDockRepo{docks: []*domain.Dock{activeDock(1, "Dock-1"), activeDock(2, "Dock-2")}}

	uc := testUseCase(bookingRepo, dockRepo, testClient())

	resp, err := uc.Execute(context.Background(), testRequest())
	require.NoError(t, err)

	for _, alt := range resp.AvailableSlots {
		assert.NotEqual(t, resp.AssignedSlot.StartTime, alt.StartTime,
			"назначенный слот не повторяется в альтернативах")
	}
}

func TestExecute_NoSlotAvailable(t *testing.T) {
	// Весь день дока занят одним бронированием
	occupied := &domain.Booking{
		ID:        100,
		DockID:    1,
		StartTime: "09:00",
		EndTime:   "11:00",
		Status:    domain.StatusConfirmed,
	}
	bookingRepo := &fakeBookingRepo{bookings: []*domain.Booking{occupied}}
	dockRepo := &fakeDockRepo{docks: []*domain.Dock{activeDock(1, "Dock-1")}}

	uc := testUseCase(bookingRepo, dockRepo, testClient())

	_, err := uc.Execute(context.Background(), testRequest())
	assert.ErrorIs(t, err, ErrNoSlotAvailable)
	assert.Empty(t, bookingRepo.created, "бронирование не создаётся")
}

func TestExecute_NoCompatibleDocks(t *testing.T) {
	outwardsOnly := activeDock(1, "Dock-1")
	outwardsOnly.MovementType = domain.MovementOutwards

	bookingRepo := &fakeBookingRepo{}
	dockRepo := &fakeDockRepo{docks: []*domain.Dock{outwardsOnly}}

	uc := testUseCase(bookingRepo, dockRepo, testClient())

	req := testRequest()
	req.MovementType = domain.MovementInwards

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrNoSlotAvailable)
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

func TestExecute_CarrierNotFound(t *testing.T) {
	client := testClient()
	client.carrierErr = companyservice.ErrCarrierNotFound

	uc := testUseCase(&fakeBookingRepo{}, &fakeDockRepo{}, client)

	_, err := uc.Execute(context.Background(), testRequest())
	assert.ErrorIs(t, err, ErrCarrierNotFound)
}

func TestExecute_DateInPast(t *testing.T) {
	uc := testUseCase(&fakeBookingRepo{}, &fakeDockRepo{}, testClient())

	req := testRequest()
	req.Date = testNow.AddDate(0, 0, -1)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_ValidationErrors(t *testing.T) {
	uc := testUseCase(&fakeBookingRepo{}, &fakeDockRepo{}, testClient())

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{name: "пустой код склада", mutate: func(r *Request) { r.WarehouseCode = " " }},
		{name: "пустой код типа транспорта", mutate: func(r *Request) { r.VehicleTypeCode = "" }},
		{name: "пустой перевозчик", mutate: func(r *Request) { r.CarrierName = "" }},
		{name: "нулевое количество паллет", mutate: func(r *Request) { r.PalletCount = 0 }},
		{name: "направление both недопустимо", mutate: func(r *Request) { r.MovementType = domain.MovementBoth }},
		{name: "нулевая дата", mutate: func(r *Request) { r.Date = time.Time{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
