package create_booking

import "errors"

var (
	// ErrCompanyNotFound возвращается, когда компания не найдена
	ErrCompanyNotFound = errors.New("create_booking: company not found")

	// ErrWarehouseNotFound возвращается, когда склад не найден
	ErrWarehouseNotFound = errors.New("create_booking: warehouse not found")

	// ErrVehicleTypeNotFound возвращается, когда тип транспорта не найден
	ErrVehicleTypeNotFound = errors.New("create_booking: vehicle type not found")

	// ErrPalletCountExceedsCapacity возвращается, когда паллет больше вместимости транспорта
	ErrPalletCountExceedsCapacity = errors.New("create_booking: pallet count exceeds vehicle capacity")

	// ErrInvalidDate возвращается при некорректной дате бронирования
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrInvalidTimeSlot возвращается, когда время начала некорректно
	// (выходит за пределы суток вместе с длительностью)
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrSlotNoLongerAvailable возвращается, когда повторная проверка перед записью
	// не нашла свободного дока - слот заняли между показом и подтверждением
	ErrSlotNoLongerAvailable = errors.New("create_booking: slot is no longer available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
