package cancel_booking

import "github.com/m04kA/WMS-DockService/internal/service/bookings/models"

// CancelBookingRequest HTTP request model
type CancelBookingRequest struct {
	CompanyID          int64  `json:"companyId"`
	CancellationReason string `json:"cancellationReason"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CancelBookingRequest) ToServiceRequest() *models.CancelBookingRequest {
	return &models.CancelBookingRequest{
		CompanyID:          r.CompanyID,
		CancellationReason: r.CancellationReason,
	}
}
