package confirm_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/WMS-DockService/internal/allocation"
	"github.com/m04kA/WMS-DockService/internal/domain"
	storage "github.com/m04kA/WMS-DockService/internal/infra/storage/booking"
)

// UseCase use case для подтверждения provisional-бронирования (машинный API)
type UseCase struct {
	bookingRepo  BookingRepository
	dockRepo     DockRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	dockRepo DockRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		dockRepo:     dockRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case подтверждения бронирования
//
// Подтверждение заново прогоняет выбор дока для желаемого времени, исключая
// из проверки конфликтов собственный provisional-слот. Проигранная гонка
// возвращает ErrSlotNoLongerAvailable, при этом provisional-бронирование
// сохраняется и попытку можно повторить в пределах окна подтверждения.
// Истёкшее бронирование удаляется, и поток начинается заново.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ConfirmBooking: company=%d, confirmation=%s, preferredStart=%s",
		req.CompanyID, req.ConfirmationID, req.PreferredStartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ConfirmBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Ищем provisional-бронирование по confirmation id
	booking, err := uc.bookingRepo.GetByConfirmationID(ctx, req.ConfirmationID)
	if err != nil {
		if errors.Is(err, storage.ErrBookingNotFound) {
			uc.logger.Warn("ConfirmBooking: confirmation %s not found", req.ConfirmationID)
			return nil, ErrUnknownConfirmation
		}
		uc.logger.Error("ConfirmBooking: failed to get booking by confirmation %s: %v", req.ConfirmationID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	// Чужой confirmation id неотличим от несуществующего
	if booking.CompanyID != req.CompanyID {
		uc.logger.Warn("ConfirmBooking: confirmation %s belongs to company %d, requested by %d",
			req.ConfirmationID, booking.CompanyID, req.CompanyID)
		return nil, ErrUnknownConfirmation
	}

	if !booking.IsProvisional() {
		uc.logger.Warn("ConfirmBooking: booking id=%d already finalized (status=%s)", booking.ID, booking.Status)
		return nil, ErrUnknownConfirmation
	}

	// 4. Истёкшее provisional-бронирование удаляем и сообщаем об истечении
	if booking.ProvisionalExpired(now) {
		uc.logger.Warn("ConfirmBooking: booking id=%d expired at %s", booking.ID, booking.ConfirmationExpiresAt)
		if err := uc.bookingRepo.Delete(ctx, booking.ID); err != nil && !errors.Is(err, storage.ErrBookingNotFound) {
			uc.logger.Error("ConfirmBooking: failed to delete expired booking id=%d: %v", booking.ID, err)
			return nil, fmt.Errorf("%w: failed to delete expired booking: %v", ErrInternal, err)
		}
		return nil, ErrReservationExpired
	}

	// 5. Определяем время начала: желаемое или исходное
	startTime := booking.StartTime
	if !req.PreferredStartTime.IsZero() {
		startTime = req.PreferredStartTime
	}

	endTime, err := startTime.AddMinutes(booking.DurationMinutes)
	if err != nil {
		uc.logger.Warn("ConfirmBooking: slot %s + %d min crosses midnight", startTime, booking.DurationMinutes)
		return nil, fmt.Errorf("%w: slot exceeds day bounds", ErrInvalidInput)
	}

	var confirmedDock *domain.Dock

	// 6. Повторный выбор дока и подтверждение в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Получаем доки, совместимые с параметрами бронирования
		docks, err := uc.dockRepo.ListActive(txCtx, booking.CompanyID, booking.WarehouseID)
		if err != nil {
			uc.logger.Error("ConfirmBooking: failed to get docks: %v", err)
			return fmt.Errorf("%w: failed to get docks: %v", ErrInternal, err)
		}

		compatibleDocks := allocation.FilterDocks(docks, booking.MovementType, booking.VehicleTypeID)
		if len(compatibleDocks) == 0 {
			uc.logger.Warn("ConfirmBooking: no compatible docks for booking id=%d", booking.ID)
			return ErrSlotNoLongerAvailable
		}

		// 6.2. Снапшот бронирований на эту дату с блокировкой (FOR UPDATE)
		bookings, err := uc.bookingRepo.ListForDate(txCtx, booking.CompanyID, booking.WarehouseID, booking.BookingDate)
		if err != nil {
			uc.logger.Error("ConfirmBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 6.3. Выбираем док, исключая собственный provisional-слот
		dock, ok := allocation.AllocateDock(startTime.Minutes(), booking.DurationMinutes, compatibleDocks, bookings, booking.ID, now)
		if !ok {
			uc.logger.Warn("ConfirmBooking: slot %s no longer available for booking id=%d", startTime, booking.ID)
			return ErrSlotNoLongerAvailable
		}

		// 6.4. Переводим бронирование в confirmed
		if err := uc.bookingRepo.Confirm(txCtx, booking.ID, dock.ID, startTime, endTime); err != nil {
			// Конкурентное подтверждение успело первым
			if errors.Is(err, storage.ErrBookingNotFound) {
				uc.logger.Warn("ConfirmBooking: booking id=%d was finalized concurrently", booking.ID)
				return ErrUnknownConfirmation
			}
			uc.logger.Error("ConfirmBooking: failed to confirm booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to confirm booking: %v", ErrInternal, err)
		}

		confirmedDock = dock
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("ConfirmBooking: booking id=%d confirmed on dock id=%d (%s), slot %s-%s",
		booking.ID, confirmedDock.ID, confirmedDock.Name, startTime, endTime)

	return &Response{
		BookingID:      booking.ID,
		ConfirmationID: req.ConfirmationID,
		DockName:       confirmedDock.Name,
		BookingDate:    booking.BookingDate,
		StartTime:      startTime,
		EndTime:        endTime,
		Status:         string(domain.StatusConfirmed),
	}, nil
}
