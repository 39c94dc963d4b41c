package request_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/WMS-DockService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CompanyID <= 0 {
		return fmt.Errorf("%w: companyID must be positive", ErrInvalidInput)
	}

	if strings.TrimSpace(req.WarehouseCode) == "" {
		return fmt.Errorf("%w: warehouseCode is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.VehicleTypeCode) == "" {
		return fmt.Errorf("%w: vehicleTypeCode is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.CarrierName) == "" {
		return fmt.Errorf("%w: carrierName is required", ErrInvalidInput)
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
func validateDate(bookingDate time.Time, now time.Time) error {
	if isDateInPast(bookingDate, now) {
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
