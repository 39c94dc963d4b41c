package companyservice

import "errors"

var (
	// ErrCompanyNotFound возвращается, когда компания не найдена
	ErrCompanyNotFound = errors.New("company not found")

	// ErrWarehouseNotFound возвращается, когда склад не найден
	ErrWarehouseNotFound = errors.New("warehouse not found")

	// ErrVehicleTypeNotFound возвращается, когда тип транспорта не найден
	ErrVehicleTypeNotFound = errors.New("vehicle type not found")

	// ErrCarrierNotFound возвращается, когда перевозчик не найден
	ErrCarrierNotFound = errors.New("carrier not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("companyservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("companyservice client: invalid response")
)
