package update_booking

import (
	"github.com/m04kA/WMS-DockService/internal/domain"
	confirmBooking "github.com/m04kA/WMS-DockService/internal/usecase/confirm_booking"
	"github.com/m04kA/WMS-DockService/pkg/types"
)

// UpdateBookingRequest HTTP request model подтверждения бронирования
type UpdateBookingRequest struct {
	// Желаемое время начала - исходный или один из альтернативных слотов.
	// Пустое значение подтверждает исходный слот
	PreferredStartTime string `json:"preferredStartTime,omitempty"` // "10:00"
}

// UpdateBookingResponse HTTP response model подтверждённого бронирования
type UpdateBookingResponse struct {
	BookingID      int64  `json:"bookingId"`
	ConfirmationID string `json:"confirmationId"`
	DockName       string `json:"dockName"`
	BookingDate    string `json:"bookingDate"`
	StartTime      string `json:"startTime"`
	EndTime        string `json:"endTime"`
	Status         string `json:"status"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateBookingRequest) ToUseCaseRequest(companyID int64, confirmationID string) (*confirmBooking.Request, error) {
	req := &confirmBooking.Request{
		CompanyID:      companyID,
		ConfirmationID: confirmationID,
	}

	if r.PreferredStartTime != "" {
		startTime, err := types.NewTimeStringFromString(r.PreferredStartTime)
		if err != nil {
			return nil, err
		}
		req.PreferredStartTime = startTime
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *confirmBooking.Response) *UpdateBookingResponse {
	return &UpdateBookingResponse{
		BookingID:      resp.BookingID,
		ConfirmationID: resp.ConfirmationID,
		DockName:       resp.DockName,
		BookingDate:    resp.BookingDate.Format(domain.DateFormat),
		StartTime:      resp.StartTime.String(),
		EndTime:        resp.EndTime.String(),
		Status:         resp.Status,
	}
}
