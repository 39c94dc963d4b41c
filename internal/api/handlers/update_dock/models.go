package update_dock

import "github.com/m04kA/WMS-DockService/internal/service/docks/models"

// UpdateDockRequest HTTP request model
// Указываются только изменяемые поля
type UpdateDockRequest struct {
	CompanyID                int64    `json:"companyId"`
	Name                     *string  `json:"name,omitempty"`
	StartHour                *int     `json:"startHour,omitempty"`
	EndHour                  *int     `json:"endHour,omitempty"`
	MovementType             *string  `json:"movementType,omitempty"`
	CompatibleVehicleTypeIDs *[]int64 `json:"compatibleVehicleTypeIds,omitempty"`
	ImageURL                 *string  `json:"imageUrl,omitempty"`
	Notes                    *string  `json:"notes,omitempty"`
	IsActive                 *bool    `json:"isActive,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateDockRequest) ToServiceRequest() *models.UpdateDockRequest {
	return &models.UpdateDockRequest{
		CompanyID:                r.CompanyID,
		Name:                     r.Name,
		StartHour:                r.StartHour,
		EndHour:                  r.EndHour,
		MovementType:             r.MovementType,
		CompatibleVehicleTypeIDs: r.CompatibleVehicleTypeIDs,
		ImageURL:                 r.ImageURL,
		Notes:                    r.Notes,
		IsActive:                 r.IsActive,
	}
}
