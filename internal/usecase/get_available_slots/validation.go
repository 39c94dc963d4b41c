package get_available_slots

import (
	"fmt"
	"time"

	"github.com/m04kA/WMS-DockService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CompanyID <= 0 {
		return fmt.Errorf("%w: companyID must be positive", ErrInvalidInput)
	}

	if req.WarehouseID <= 0 {
		return fmt.Errorf("%w: warehouseID must be positive", ErrInvalidInput)
	}

	if req.VehicleTypeID <= 0 {
		return fmt.Errorf("%w: vehicleTypeID must be positive", ErrInvalidInput)
	}

	if req.PalletCount < domain.MinPalletCount {
		return fmt.Errorf("%w: palletCount must be positive", ErrInvalidInput)
	}

	if req.MovementType != domain.MovementInwards && req.MovementType != domain.MovementOutwards {
		return fmt.Errorf("%w: movementType must be inwards or outwards", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}

// validateDate проверяет, что дата не в прошлом
func validateDate(requestDate time.Time, now time.Time) error {
	if isDateInPast(requestDate, now) {
		return ErrInvalidDate
	}
	return nil
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
