package request_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/WMS-DockService/internal/allocation"
	"github.com/m04kA/WMS-DockService/internal/domain"
	companyClient "github.com/m04kA/WMS-DockService/internal/integrations/companyservice"
	"github.com/m04kA/WMS-DockService/pkg/types"
)

// UseCase use case для предварительного бронирования через машинный API
type UseCase struct {
	bookingRepo        BookingRepository
	dockRepo           DockRepository
	companyClient      CompanyServiceClient
	txManager          TransactionManager
	intervalMinutes    int
	confirmationWindow time.Duration
	alternativesLimit  int
	timeProvider       TimeProvider
	idGenerator        IDGenerator
	logger             Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	dockRepo DockRepository,
	companyClient CompanyServiceClient,
	txManager TransactionManager,
	intervalMinutes int,
	confirmationWindowMinutes int,
	alternativesLimit int,
	logger Logger,
) *UseCase {
	if intervalMinutes <= 0 {
		intervalMinutes = domain.DefaultSlotIntervalMinutes
	}
	if confirmationWindowMinutes <= 0 {
		confirmationWindowMinutes = domain.DefaultConfirmationWindowMinutes
	}
	if alternativesLimit <= 0 {
		alternativesLimit = domain.DefaultAlternativeSlotsLimit
	}
	return &UseCase{
		bookingRepo:        bookingRepo,
		dockRepo:           dockRepo,
		companyClient:      companyClient,
		txManager:          txManager,
		intervalMinutes:    intervalMinutes,
		confirmationWindow: time.Duration(confirmationWindowMinutes) * time.Minute,
		alternativesLimit:  alternativesLimit,
		timeProvider:       &RealTimeProvider{},
		idGenerator:        &UUIDGenerator{},
		logger:             logger,
	}
}

// Execute выполняет use case предварительного бронирования
//
// Время начала не запрашивается: система подбирает самый ранний свободный
// слот дня и создаёт provisional-бронирование с confirmation id и окном
// подтверждения. Вместе с назначенным слотом возвращается ограниченный
// список альтернатив, из которых интегратор может выбрать при подтверждении.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RequestBooking: company=%d, warehouse=%s, vehicleType=%s, movement=%s, pallets=%d, date=%s",
		req.CompanyID, req.WarehouseCode, req.VehicleTypeCode, req.MovementType, req.PalletCount,
		req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RequestBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Валидация даты
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("RequestBooking: date validation failed: %v", err)
		return nil, err
	}

	// 4. Получаем компанию с её политикой расчёта длительности
	company, err := uc.companyClient.GetCompany(ctx, req.CompanyID)
	if err != nil {
		if errors.Is(err, companyClient.ErrCompanyNotFound) {
			uc.logger.Warn("RequestBooking: company id=%d not found", req.CompanyID)
			return nil, ErrCompanyNotFound
		}
		uc.logger.Error("RequestBooking: failed to get company id=%d: %v", req.CompanyID, err)
		return nil, fmt.Errorf("%w: failed to get company: %v", ErrInternal, err)
	}

	// 5. Резолвим склад по коду
	warehouse, err := uc.companyClient.GetWarehouseByCode(ctx, req.CompanyID, req.WarehouseCode)
	if err != nil {
		if errors.Is(err, companyClient.ErrWarehouseNotFound) {
			uc.logger.Warn("RequestBooking: warehouse code=%s not found in company id=%d", req.WarehouseCode, req.CompanyID)
			return nil, ErrWarehouseNotFound
		}
		uc.logger.Error("RequestBooking: failed to get warehouse code=%s: %v", req.WarehouseCode, err)
		return nil, fmt.Errorf("%w: failed to get warehouse: %v", ErrInternal, err)
	}

	// 6. Резолвим тип транспорта по коду и проверяем вместимость
	vehicleType, err := uc.companyClient.GetVehicleTypeByCode(ctx, req.CompanyID, req.VehicleTypeCode)
	if err != nil {
		if errors.Is(err, companyClient.ErrVehicleTypeNotFound) {
			uc.logger.Warn("RequestBooking: vehicle type code=%s not found", req.VehicleTypeCode)
			return nil, ErrVehicleTypeNotFound
		}
		uc.logger.Error("RequestBooking: failed to get vehicle type code=%s: %v", req.VehicleTypeCode, err)
		return nil, fmt.Errorf("%w: failed to get vehicle type: %v", ErrInternal, err)
	}

	if vehicleType.MaxPallets > 0 && req.PalletCount > vehicleType.MaxPallets {
		uc.logger.Warn("RequestBooking: pallet count %d exceeds vehicle type capacity %d",
			req.PalletCount, vehicleType.MaxPallets)
		return nil, ErrPalletCountExceedsCapacity
	}

	// 7. Проверяем, что перевозчик известен компании
	if _, err := uc.companyClient.GetCarrierByName(ctx, req.CompanyID, req.CarrierName); err != nil {
		if errors.Is(err, companyClient.ErrCarrierNotFound) {
			uc.logger.Warn("RequestBooking: carrier %q not found in company id=%d", req.CarrierName, req.CompanyID)
			return nil, ErrCarrierNotFound
		}
		uc.logger.Error("RequestBooking: failed to get carrier %q: %v", req.CarrierName, err)
		return nil, fmt.Errorf("%w: failed to get carrier: %v", ErrInternal, err)
	}

	// 8. Вычисляем длительность операции
	policy := allocation.SelectPolicy(company.DefaultPolicy(), vehicleType.OverridePolicy())
	duration, err := allocation.ComputeDuration(req.PalletCount, policy)
	if err != nil {
		uc.logger.Warn("RequestBooking: duration calculation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var (
		result       *domain.Booking
		assignedDock *domain.Dock
		alternatives []AlternativeSlot
	)

	// 9. Подбор слота и запись в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 9.1. Получаем совместимые доки склада (стабильный порядок - id ASC)
		docks, err := uc.dockRepo.ListActive(txCtx, req.CompanyID, warehouse.ID)
		if err != nil {
			uc.logger.Error("RequestBooking: failed to get docks: %v", err)
			return fmt.Errorf("%w: failed to get docks: %v", ErrInternal, err)
		}

		compatibleDocks := allocation.FilterDocks(docks, req.MovementType, vehicleType.ID)
		if len(compatibleDocks) == 0 {
			uc.logger.Warn("RequestBooking: no compatible docks for warehouse=%s, movement=%s, vehicleType=%s",
				req.WarehouseCode, req.MovementType, req.VehicleTypeCode)
			return ErrNoSlotAvailable
		}

		// 9.2. Снапшот бронирований на эту дату с блокировкой (FOR UPDATE)
		bookings, err := uc.bookingRepo.ListForDate(txCtx, req.CompanyID, warehouse.ID, req.Date)
		if err != nil {
			uc.logger.Error("RequestBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 9.3. Ищем самый ранний свободный слот дня
		starts := allocation.GenerateSlots(req.Date, compatibleDocks, uc.intervalMinutes, now)

		assignedIdx := -1
		var assignedStart int
		for i, start := range starts {
			if start+duration > 24*60 {
				continue
			}
			dock, ok := allocation.AllocateDock(start, duration, compatibleDocks, bookings, 0, now)
			if !ok {
				continue
			}
			assignedDock = dock
			assignedStart = start
			assignedIdx = i
			break
		}
		if assignedIdx < 0 {
			uc.logger.Warn("RequestBooking: no slot available for warehouse=%s on %s",
				req.WarehouseCode, req.Date.Format(domain.DateFormat))
			return ErrNoSlotAvailable
		}

		startTime, err := types.NewTimeStringFromMinutes(assignedStart)
		if err != nil {
			return fmt.Errorf("%w: invalid slot start: %v", ErrInternal, err)
		}
		endTime, err := types.NewTimeStringFromMinutes(assignedStart + duration)
		if err != nil {
			return fmt.Errorf("%w: invalid slot end: %v", ErrInternal, err)
		}

		uc.logger.Info("RequestBooking: allocated dock id=%d (%s) for slot %s-%s",
			assignedDock.ID, assignedDock.Name, startTime, endTime)

		// 9.4. Создаем provisional-бронирование с окном подтверждения
		confirmationID := uc.idGenerator.NewID()
		expiresAt := now.Add(uc.confirmationWindow)

		booking := &domain.Booking{
			CompanyID:             req.CompanyID,
			WarehouseID:           warehouse.ID,
			DockID:                assignedDock.ID,
			BookingDate:           req.Date,
			StartTime:             startTime,
			EndTime:               endTime,
			DurationMinutes:       duration,
			PalletCount:           req.PalletCount,
			VehicleTypeID:         vehicleType.ID,
			MovementType:          req.MovementType,
			Status:                domain.StatusProvisional,
			ConfirmationID:        &confirmationID,
			ConfirmationExpiresAt: &expiresAt,
			// Денормализация данных для истории
			CarrierName:     &req.CarrierName,
			SenderName:      req.SenderName,
			ReferenceNumber: req.ReferenceNumber,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("RequestBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}
		result = created

		// 9.5. Собираем альтернативные слоты с учётом только что созданного
		// бронирования
		withCreated := append(bookings, created)
		alternatives = collectAlternatives(starts[assignedIdx+1:], duration, compatibleDocks, withCreated, now, uc.alternativesLimit)

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("RequestBooking: created provisional booking id=%d, confirmation=%s, expires=%s",
		result.ID, *result.ConfirmationID, result.ConfirmationExpiresAt.Format(time.RFC3339))

	return &Response{
		BookingID:      result.ID,
		ConfirmationID: *result.ConfirmationID,
		ExpiresAt:      *result.ConfirmationExpiresAt,
		AssignedSlot: AssignedSlot{
			DockName:  assignedDock.Name,
			StartTime: result.StartTime,
			EndTime:   result.EndTime,
			ImageURL:  assignedDock.ImageURL,
			Notes:     assignedDock.Notes,
		},
		AvailableSlots:   alternatives,
		CompanyName:      company.Name,
		WarehouseName:    warehouse.Name,
		WarehouseAddress: warehouse.Address,
	}, nil
}

// collectAlternatives перебирает оставшиеся кандидаты и возвращает до limit
// свободных слотов для выбора при подтверждении
func collectAlternatives(
	starts []int,
	durationMinutes int,
	docks []*domain.Dock,
	bookings []*domain.Booking,
	now time.Time,
	limit int,
) []AlternativeSlot {
	alternatives := make([]AlternativeSlot, 0, limit)
	for _, start := range starts {
		if len(alternatives) >= limit {
			break
		}
		if start+durationMinutes > 24*60 {
			continue
		}
		dock, ok := allocation.AllocateDock(start, durationMinutes, docks, bookings, 0, now)
		if !ok {
			continue
		}
		startTime, err := types.NewTimeStringFromMinutes(start)
		if err != nil {
			continue
		}
		alternatives = append(alternatives, AlternativeSlot{
			DockName:  dock.Name,
			StartTime: startTime,
		})
	}
	return alternatives
}
