package request_booking

import (
	"time"

	"github.com/m04kA/WMS-DockService/internal/domain"
	requestBooking "github.com/m04kA/WMS-DockService/internal/usecase/request_booking"
)

// RequestBookingRequest HTTP request model машинного API
type RequestBookingRequest struct {
	WarehouseCode   string  `json:"warehouseCode"`
	BookingDate     string  `json:"bookingDate"` // "2025-10-15"
	MovementType    string  `json:"movementType"`
	CarrierName     string  `json:"carrierName"`
	SenderName      *string `json:"senderName,omitempty"`
	ReferenceNumber *string `json:"referenceNumber,omitempty"`
	PalletCount     int     `json:"palletCount"`
	VehicleTypeCode string  `json:"vehicleTypeCode"`
}

// AssignedSlotResponse назначенный слот с данными дока
type AssignedSlotResponse struct {
	DockName     string  `json:"dockName"`
	StartTime    string  `json:"startTime"`
	EndTime      string  `json:"endTime"`
	DockImageURL *string `json:"dockImageUrl,omitempty"`
	DockNotes    *string `json:"dockNotes,omitempty"`
}

// AvailableSlotResponse альтернативный свободный слот
type AvailableSlotResponse struct {
	DockName  string `json:"dockName"`
	StartTime string `json:"startTime"`
}

// RequestBookingResponse HTTP response model машинного API
type RequestBookingResponse struct {
	ConfirmationID   string                  `json:"confirmationId"`
	ExpiresAt        string                  `json:"expiresAt"` // ISO 8601
	AssignedSlot     AssignedSlotResponse    `json:"assignedSlot"`
	AvailableSlots   []AvailableSlotResponse `json:"availableSlots"`
	CompanyName      string                  `json:"companyName"`
	WarehouseName    string                  `json:"warehouseName"`
	WarehouseAddress string                  `json:"warehouseAddress"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RequestBookingRequest) ToUseCaseRequest(companyID int64) (*requestBooking.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	movementType, err := domain.ParseMovementType(r.MovementType)
	if err != nil {
		return nil, err
	}

	return &requestBooking.Request{
		CompanyID:       companyID,
		WarehouseCode:   r.WarehouseCode,
		VehicleTypeCode: r.VehicleTypeCode,
		MovementType:    movementType,
		CarrierName:     r.CarrierName,
		PalletCount:     r.PalletCount,
		Date:            bookingDate,
		SenderName:      r.SenderName,
		ReferenceNumber: r.ReferenceNumber,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *requestBooking.Response) *RequestBookingResponse {
	availableSlots := make([]AvailableSlotResponse, 0, len(resp.AvailableSlots))
	for _, slot := range resp.AvailableSlots {
		availableSlots = append(availableSlots, AvailableSlotResponse{
			DockName:  slot.DockName,
			StartTime: slot.StartTime.String(),
		})
	}

	return &RequestBookingResponse{
		ConfirmationID: resp.ConfirmationID,
		ExpiresAt:      resp.ExpiresAt.Format(time.RFC3339),
		AssignedSlot: AssignedSlotResponse{
			DockName:     resp.AssignedSlot.DockName,
			StartTime:    resp.AssignedSlot.StartTime.String(),
			EndTime:      resp.AssignedSlot.EndTime.String(),
			DockImageURL: resp.AssignedSlot.ImageURL,
			DockNotes:    resp.AssignedSlot.Notes,
		},
		AvailableSlots:   availableSlots,
		CompanyName:      resp.CompanyName,
		WarehouseName:    resp.WarehouseName,
		WarehouseAddress: resp.WarehouseAddress,
	}
}
