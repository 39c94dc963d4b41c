package get_available_slots

import (
	"strconv"
	"time"

	"github.com/m04kA/WMS-DockService/internal/domain"
	getAvailableSlots "github.com/m04kA/WMS-DockService/internal/usecase/get_available_slots"
)

// SlotResponse HTTP модель временного слота
type SlotResponse struct {
	StartTime       string `json:"startTime"` // "10:00"
	DurationMinutes int    `json:"durationMinutes"`
	Available       bool   `json:"available"`
}

// AvailableSlotsResponse HTTP модель ответа со слотами дня
type AvailableSlotsResponse struct {
	Date            string         `json:"date"` // "2025-10-15"
	CompanyID       int64          `json:"companyId"`
	WarehouseID     int64          `json:"warehouseId"`
	DurationMinutes int            `json:"durationMinutes"`
	Slots           []SlotResponse `json:"slots"`
}

// ToUseCaseRequest собирает модель use case из параметров запроса
func ToUseCaseRequest(
	userID, companyID, warehouseID int64,
	vehicleTypeIDStr, movementTypeStr, palletCountStr, dateStr string,
) (*getAvailableSlots.Request, error) {
	vehicleTypeID, err := strconv.ParseInt(vehicleTypeIDStr, 10, 64)
	if err != nil {
		return nil, err
	}

	movementType, err := domain.ParseMovementType(movementTypeStr)
	if err != nil {
		return nil, err
	}

	palletCount, err := strconv.Atoi(palletCountStr)
	if err != nil {
		return nil, err
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		UserID:        userID,
		CompanyID:     companyID,
		WarehouseID:   warehouseID,
		VehicleTypeID: vehicleTypeID,
		MovementType:  movementType,
		PalletCount:   palletCount,
		Date:          date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		slots = append(slots, SlotResponse{
			StartTime:       slot.StartTime.String(),
			DurationMinutes: slot.DurationMinutes,
			Available:       slot.Available,
		})
	}

	return &AvailableSlotsResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		CompanyID:       resp.CompanyID,
		WarehouseID:     resp.WarehouseID,
		DurationMinutes: resp.DurationMinutes,
		Slots:           slots,
	}
}
