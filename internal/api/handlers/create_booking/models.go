package create_booking

import (
	"time"

	"github.com/m04kA/WMS-DockService/internal/domain"
	createBooking "github.com/m04kA/WMS-DockService/internal/usecase/create_booking"
	"github.com/m04kA/WMS-DockService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	CompanyID       int64   `json:"companyId"`
	WarehouseID     int64   `json:"warehouseId"`
	VehicleTypeID   int64   `json:"vehicleTypeId"`
	MovementType    string  `json:"movementType"` // "inwards" | "outwards"
	PalletCount     int     `json:"palletCount"`
	BookingDate     string  `json:"bookingDate"` // "2025-10-15"
	StartTime       string  `json:"startTime"`   // "10:00"
	CarrierName     *string `json:"carrierName,omitempty"`
	SenderName      *string `json:"senderName,omitempty"`
	ReferenceNumber *string `json:"referenceNumber,omitempty"`
	Notes           *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64   `json:"id"`
	CompanyID       int64   `json:"companyId"`
	WarehouseID     int64   `json:"warehouseId"`
	DockID          int64   `json:"dockId"`
	BookingDate     string  `json:"bookingDate"`
	StartTime       string  `json:"startTime"`
	EndTime         string  `json:"endTime"`
	DurationMinutes int     `json:"durationMinutes"`
	PalletCount     int     `json:"palletCount"`
	VehicleTypeID   int64   `json:"vehicleTypeId"`
	MovementType    string  `json:"movementType"`
	Status          string  `json:"status"`
	CarrierName     *string `json:"carrierName,omitempty"`
	SenderName      *string `json:"senderName,omitempty"`
	ReferenceNumber *string `json:"referenceNumber,omitempty"`
	Notes           *string `json:"notes,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	// Парсим дату
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	// Парсим время
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	movementType, err := domain.ParseMovementType(r.MovementType)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:          userID,
		CompanyID:       r.CompanyID,
		WarehouseID:     r.WarehouseID,
		VehicleTypeID:   r.VehicleTypeID,
		MovementType:    movementType,
		PalletCount:     r.PalletCount,
		Date:            bookingDate,
		StartTime:       startTime,
		CarrierName:     r.CarrierName,
		SenderName:      r.SenderName,
		ReferenceNumber: r.ReferenceNumber,
		Notes:           r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		CompanyID:       resp.CompanyID,
		WarehouseID:     resp.WarehouseID,
		DockID:          resp.DockID,
		BookingDate:     resp.BookingDate.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		EndTime:         resp.EndTime.String(),
		DurationMinutes: resp.DurationMinutes,
		PalletCount:     resp.PalletCount,
		VehicleTypeID:   resp.VehicleTypeID,
		MovementType:    string(resp.MovementType),
		Status:          resp.Status,
		CarrierName:     resp.CarrierName,
		SenderName:      resp.SenderName,
		ReferenceNumber: resp.ReferenceNumber,
		Notes:           resp.Notes,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
