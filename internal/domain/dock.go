package domain

import (
	"errors"
	"fmt"
	"time"
)

// MovementType направление движения груза через док
type MovementType string

const (
	MovementInwards  MovementType = "inwards"
	MovementOutwards MovementType = "outwards"
	MovementBoth     MovementType = "both"
)

// ParseMovementType парсит направление движения из строки
func ParseMovementType(s string) (MovementType, error) {
	switch MovementType(s) {
	case MovementInwards, MovementOutwards, MovementBoth:
		return MovementType(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidMovementType, s)
	}
}

var (
	// ErrInvalidMovementType возвращается при неизвестном направлении движения
	ErrInvalidMovementType = errors.New("invalid movement type")

	// ErrInvalidDockHours возвращается при некорректных рабочих часах дока
	// Часы работы задаются в пределах одних суток; окно через полночь не поддерживается
	ErrInvalidDockHours = errors.New("invalid dock operating hours")
)

// Dock представляет физический док склада с рабочими часами и ограничениями совместимости
type Dock struct {
	ID          int64
	CompanyID   int64
	WarehouseID int64
	Name        string
	StartHour   int // Час начала работы (0-23)
	EndHour     int // Час окончания работы (1-24), строго больше StartHour

	MovementType MovementType

	// CompatibleVehicleTypeIDs типы транспорта, которые может принять док
	// Пустой список означает отсутствие ограничений
	CompatibleVehicleTypeIDs []int64

	ImageURL *string
	Notes    *string
	IsActive bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidateHours проверяет рабочие часы дока
// Окно работы должно лежать в пределах одних суток: start < end, 0 <= start, end <= 24
func ValidateHours(startHour, endHour int) error {
	if startHour < 0 || startHour > 23 {
		return fmt.Errorf("%w: start hour %d", ErrInvalidDockHours, startHour)
	}
	if endHour < 1 || endHour > 24 {
		return fmt.Errorf("%w: end hour %d", ErrInvalidDockHours, endHour)
	}
	if startHour >= endHour {
		return fmt.Errorf("%w: start hour %d is not before end hour %d (windows wrapping past midnight are not supported)",
			ErrInvalidDockHours, startHour, endHour)
	}
	return nil
}

// OpenMinutes возвращает время открытия дока в минутах от начала суток
func (d *Dock) OpenMinutes() int {
	return d.StartHour * 60
}

// CloseMinutes возвращает время закрытия дока в минутах от начала суток
func (d *Dock) CloseMinutes() int {
	return d.EndHour * 60
}

// AcceptsMovement проверяет, что док принимает указанное направление движения
func (d *Dock) AcceptsMovement(movement MovementType) bool {
	return d.MovementType == MovementBoth || d.MovementType == movement
}

// AcceptsVehicleType проверяет, что док совместим с типом транспорта
// Док без ограничений совместим с любым типом
func (d *Dock) AcceptsVehicleType(vehicleTypeID int64) bool {
	if len(d.CompatibleVehicleTypeIDs) == 0 {
		return true
	}
	for _, id := range d.CompatibleVehicleTypeIDs {
		if id == vehicleTypeID {
			return true
		}
	}
	return false
}
