package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/WMS-DockService/internal/allocation"
	"github.com/m04kA/WMS-DockService/internal/domain"
	companyClient "github.com/m04kA/WMS-DockService/internal/integrations/companyservice"
)

// UseCase use case для получения слотов дня с признаком доступности
type UseCase struct {
	bookingRepo     BookingRepository
	dockRepo        DockRepository
	companyClient   CompanyServiceClient
	intervalMinutes int
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	dockRepo DockRepository,
	companyClient CompanyServiceClient,
	intervalMinutes int,
	logger Logger,
) *UseCase {
	if intervalMinutes <= 0 {
		intervalMinutes = domain.DefaultSlotIntervalMinutes
	}
	return &UseCase{
		bookingRepo:     bookingRepo,
		dockRepo:        dockRepo,
		companyClient:   companyClient,
		intervalMinutes: intervalMinutes,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов
// Чтения выполняются без транзакции: результат - снапшот занятости, его
// устаревание компенсирует повторная проверка при создании бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: user=%d, company=%d, warehouse=%d, vehicleType=%d, movement=%s, pallets=%d, date=%s",
		req.UserID, req.CompanyID, req.WarehouseID, req.VehicleTypeID, req.MovementType, req.PalletCount,
		req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Валидация даты
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	// 4. Получаем компанию с её политикой расчёта длительности
	company, err := uc.companyClient.GetCompany(ctx, req.CompanyID)
	if err != nil {
		if errors.Is(err, companyClient.ErrCompanyNotFound) {
			uc.logger.Warn("GetAvailableSlots: company id=%d not found", req.CompanyID)
			return nil, ErrCompanyNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get company id=%d: %v", req.CompanyID, err)
		return nil, fmt.Errorf("%w: failed to get company: %v", ErrInternal, err)
	}

	// 5. Проверяем существование склада
	if _, err := uc.companyClient.GetWarehouse(ctx, req.CompanyID, req.WarehouseID); err != nil {
		if errors.Is(err, companyClient.ErrWarehouseNotFound) {
			uc.logger.Warn("GetAvailableSlots: warehouse id=%d not found in company id=%d", req.WarehouseID, req.CompanyID)
			return nil, ErrWarehouseNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get warehouse id=%d: %v", req.WarehouseID, err)
		return nil, fmt.Errorf("%w: failed to get warehouse: %v", ErrInternal, err)
	}

	// 6. Получаем тип транспорта и проверяем вместимость
	vehicleType, err := uc.companyClient.GetVehicleType(ctx, req.CompanyID, req.VehicleTypeID)
	if err != nil {
		if errors.Is(err, companyClient.ErrVehicleTypeNotFound) {
			uc.logger.Warn("GetAvailableSlots: vehicle type id=%d not found", req.VehicleTypeID)
			return nil, ErrVehicleTypeNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get vehicle type id=%d: %v", req.VehicleTypeID, err)
		return nil, fmt.Errorf("%w: failed to get vehicle type: %v", ErrInternal, err)
	}

	if vehicleType.MaxPallets > 0 && req.PalletCount > vehicleType.MaxPallets {
		uc.logger.Warn("GetAvailableSlots: pallet count %d exceeds vehicle type capacity %d",
			req.PalletCount, vehicleType.MaxPallets)
		return nil, ErrPalletCountExceedsCapacity
	}

	// 7. Вычисляем длительность операции
	policy := allocation.SelectPolicy(company.DefaultPolicy(), vehicleType.OverridePolicy())
	duration, err := allocation.ComputeDuration(req.PalletCount, policy)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: duration calculation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 8. Получаем совместимые доки склада
	docks, err := uc.dockRepo.ListActive(ctx, req.CompanyID, req.WarehouseID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get docks: %v", err)
		return nil, fmt.Errorf("%w: failed to get docks: %v", ErrInternal, err)
	}

	compatibleDocks := allocation.FilterDocks(docks, req.MovementType, req.VehicleTypeID)
	if len(compatibleDocks) == 0 {
		uc.logger.Info("GetAvailableSlots: no compatible docks for warehouse=%d, movement=%s, vehicleType=%d",
			req.WarehouseID, req.MovementType, req.VehicleTypeID)
		return &Response{
			Date:            req.Date,
			CompanyID:       req.CompanyID,
			WarehouseID:     req.WarehouseID,
			DurationMinutes: duration,
			Slots:           []Slot{},
		}, nil
	}

	// 9. Получаем снапшот бронирований на эту дату
	bookings, err := uc.bookingRepo.ListForDate(ctx, req.CompanyID, req.WarehouseID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 10. Генерируем слоты дня с признаком доступности
	annotated := allocation.AnnotateSlots(req.Date, compatibleDocks, bookings, duration, uc.intervalMinutes, now)

	slots := make([]Slot, len(annotated))
	for i, slot := range annotated {
		slots[i] = Slot{
			StartTime:       slot.StartTime,
			DurationMinutes: slot.DurationMinutes,
			Available:       slot.Available,
		}
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots (duration=%d min) for company=%d, warehouse=%d, date=%s",
		len(slots), duration, req.CompanyID, req.WarehouseID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:            req.Date,
		CompanyID:       req.CompanyID,
		WarehouseID:     req.WarehouseID,
		DurationMinutes: duration,
		Slots:           slots,
	}, nil
}
