package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/WMS-DockService/internal/allocation"
	"github.com/m04kA/WMS-DockService/internal/domain"
	companyClient "github.com/m04kA/WMS-DockService/internal/integrations/companyservice"
)

// UseCase use case для создания подтверждённого бронирования (интерактивный поток)
type UseCase struct {
	bookingRepo   BookingRepository
	dockRepo      DockRepository
	companyClient CompanyServiceClient
	txManager     TransactionManager
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	dockRepo DockRepository,
	companyClient CompanyServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		dockRepo:      dockRepo,
		companyClient: companyClient,
		txManager:     txManager,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case создания бронирования
//
// Между показом слотов пользователю и подтверждением набор бронирований мог
// измениться, поэтому выбор дока выполняется заново в сериализуемой
// транзакции непосредственно перед записью. Если свободного дока уже нет -
// возвращается ErrSlotNoLongerAvailable без каких-либо изменений в БД.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, company=%d, warehouse=%d, vehicleType=%d, movement=%s, pallets=%d, date=%s, time=%s",
		req.UserID, req.CompanyID, req.WarehouseID, req.VehicleTypeID, req.MovementType, req.PalletCount,
		req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Валидация даты
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// Для сегодняшней даты время начала не должно быть в прошлом
	if isSameDay(req.Date, now) {
		currentMinutes := now.Hour()*60 + now.Minute()
		if req.StartTime.Minutes() < currentMinutes {
			uc.logger.Warn("CreateBooking: start time %s is in the past", req.StartTime)
			return nil, ErrInvalidTimeSlot
		}
	}

	// 4. Получаем компанию с её политикой расчёта длительности
	company, err := uc.companyClient.GetCompany(ctx, req.CompanyID)
	if err != nil {
		if errors.Is(err, companyClient.ErrCompanyNotFound) {
			uc.logger.Warn("CreateBooking: company id=%d not found", req.CompanyID)
			return nil, ErrCompanyNotFound
		}
		uc.logger.Error("CreateBooking: failed to get company id=%d: %v", req.CompanyID, err)
		return nil, fmt.Errorf("%w: failed to get company: %v", ErrInternal, err)
	}

	// 5. Проверяем существование склада
	if _, err := uc.companyClient.GetWarehouse(ctx, req.CompanyID, req.WarehouseID); err != nil {
		if errors.Is(err, companyClient.ErrWarehouseNotFound) {
			uc.logger.Warn("CreateBooking: warehouse id=%d not found in company id=%d", req.WarehouseID, req.CompanyID)
			return nil, ErrWarehouseNotFound
		}
		uc.logger.Error("CreateBooking: failed to get warehouse id=%d: %v", req.WarehouseID, err)
		return nil, fmt.Errorf("%w: failed to get warehouse: %v", ErrInternal, err)
	}

	// 6. Получаем тип транспорта и проверяем вместимость
	vehicleType, err := uc.companyClient.GetVehicleType(ctx, req.CompanyID, req.VehicleTypeID)
	if err != nil {
		if errors.Is(err, companyClient.ErrVehicleTypeNotFound) {
			uc.logger.Warn("CreateBooking: vehicle type id=%d not found", req.VehicleTypeID)
			return nil, ErrVehicleTypeNotFound
		}
		uc.logger.Error("CreateBooking: failed to get vehicle type id=%d: %v", req.VehicleTypeID, err)
		return nil, fmt.Errorf("%w: failed to get vehicle type: %v", ErrInternal, err)
	}

	if vehicleType.MaxPallets > 0 && req.PalletCount > vehicleType.MaxPallets {
		uc.logger.Warn("CreateBooking: pallet count %d exceeds vehicle type capacity %d",
			req.PalletCount, vehicleType.MaxPallets)
		return nil, ErrPalletCountExceedsCapacity
	}

	// 7. Вычисляем длительность операции
	policy := allocation.SelectPolicy(company.DefaultPolicy(), vehicleType.OverridePolicy())
	duration, err := allocation.ComputeDuration(req.PalletCount, policy)
	if err != nil {
		uc.logger.Warn("CreateBooking: duration calculation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// Операция должна заканчиваться в пределах суток
	endTime, err := req.StartTime.AddMinutes(duration)
	if err != nil {
		uc.logger.Warn("CreateBooking: slot %s + %d min crosses midnight", req.StartTime, duration)
		return nil, ErrInvalidTimeSlot
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 8. Повторная проверка и запись в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 8.1. Получаем совместимые доки склада (стабильный порядок - id ASC)
		docks, err := uc.dockRepo.ListActive(txCtx, req.CompanyID, req.WarehouseID)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get docks: %v", err)
			return fmt.Errorf("%w: failed to get docks: %v", ErrInternal, err)
		}

		compatibleDocks := allocation.FilterDocks(docks, req.MovementType, req.VehicleTypeID)
		if len(compatibleDocks) == 0 {
			uc.logger.Warn("CreateBooking: no compatible docks for warehouse=%d, movement=%s, vehicleType=%d",
				req.WarehouseID, req.MovementType, req.VehicleTypeID)
			return ErrSlotNoLongerAvailable
		}

		// 8.2. Снапшот бронирований на эту дату с блокировкой (FOR UPDATE)
		bookings, err := uc.bookingRepo.ListForDate(txCtx, req.CompanyID, req.WarehouseID, req.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 8.3. Выбираем первый свободный совместимый док
		dock, ok := allocation.AllocateDock(req.StartTime.Minutes(), duration, compatibleDocks, bookings, 0, now)
		if !ok {
			uc.logger.Warn("CreateBooking: slot %s no longer available for warehouse=%d", req.StartTime, req.WarehouseID)
			return ErrSlotNoLongerAvailable
		}

		uc.logger.Info("CreateBooking: allocated dock id=%d (%s) for slot %s-%s", dock.ID, dock.Name, req.StartTime, endTime)

		// 8.4. Создаем подтверждённое бронирование
		booking := &domain.Booking{
			CompanyID:       req.CompanyID,
			WarehouseID:     req.WarehouseID,
			DockID:          dock.ID,
			BookingDate:     req.Date,
			StartTime:       req.StartTime,
			EndTime:         endTime,
			DurationMinutes: duration,
			PalletCount:     req.PalletCount,
			VehicleTypeID:   req.VehicleTypeID,
			MovementType:    req.MovementType,
			Status:          domain.StatusConfirmed,
			// Денормализация данных для истории
			CarrierName:     req.CarrierName,
			SenderName:      req.SenderName,
			ReferenceNumber: req.ReferenceNumber,
			Notes:           req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	// Конвертируем в response
	return &Response{
		ID:              result.ID,
		CompanyID:       result.CompanyID,
		WarehouseID:     result.WarehouseID,
		DockID:          result.DockID,
		BookingDate:     result.BookingDate,
		StartTime:       result.StartTime,
		EndTime:         result.EndTime,
		DurationMinutes: result.DurationMinutes,
		PalletCount:     result.PalletCount,
		VehicleTypeID:   result.VehicleTypeID,
		MovementType:    result.MovementType,
		Status:          string(result.Status),
		CarrierName:     result.CarrierName,
		SenderName:      result.SenderName,
		ReferenceNumber: result.ReferenceNumber,
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}
