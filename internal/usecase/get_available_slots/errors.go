package get_available_slots

import "errors"

var (
	// ErrCompanyNotFound возвращается, когда компания не найдена
	ErrCompanyNotFound = errors.New("get_available_slots: company not found")

	// ErrWarehouseNotFound возвращается, когда склад не найден
	ErrWarehouseNotFound = errors.New("get_available_slots: warehouse not found")

	// ErrVehicleTypeNotFound возвращается, когда тип транспорта не найден
	ErrVehicleTypeNotFound = errors.New("get_available_slots: vehicle type not found")

	// ErrPalletCountExceedsCapacity возвращается, когда паллет больше вместимости транспорта
	ErrPalletCountExceedsCapacity = errors.New("get_available_slots: pallet count exceeds vehicle capacity")

	// ErrInvalidDate возвращается при некорректной дате бронирования
	ErrInvalidDate = errors.New("get_available_slots: invalid booking date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
