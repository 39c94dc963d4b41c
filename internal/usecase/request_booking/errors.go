package request_booking

import "errors"

var (
	// ErrCompanyNotFound возвращается, когда компания не найдена
	ErrCompanyNotFound = errors.New("request_booking: company not found")

	// ErrWarehouseNotFound возвращается, когда склад с таким кодом не найден
	ErrWarehouseNotFound = errors.New("request_booking: warehouse not found")

	// ErrVehicleTypeNotFound возвращается, когда тип транспорта с таким кодом не найден
	ErrVehicleTypeNotFound = errors.New("request_booking: vehicle type not found")

	// ErrCarrierNotFound возвращается, когда перевозчик с таким именем не найден
	ErrCarrierNotFound = errors.New("request_booking: carrier not found")

	// ErrPalletCountExceedsCapacity возвращается, когда паллет больше вместимости транспорта
	ErrPalletCountExceedsCapacity = errors.New("request_booking: pallet count exceeds vehicle capacity")

	// ErrInvalidDate возвращается при некорректной дате бронирования
	ErrInvalidDate = errors.New("request_booking: invalid booking date")

	// ErrNoSlotAvailable возвращается, когда на запрошенную дату нет ни одного
	// свободного слота. Штатный исход - вызывающая сторона пробует другую дату
	ErrNoSlotAvailable = errors.New("request_booking: no slot available for the requested date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("request_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("request_booking: internal error")
)
