package create_dock

import "github.com/m04kA/WMS-DockService/internal/service/docks/models"

// CreateDockRequest HTTP request model
type CreateDockRequest struct {
	Name                     string  `json:"name"`
	StartHour                int     `json:"startHour"`
	EndHour                  int     `json:"endHour"`
	MovementType             string  `json:"movementType"` // "inwards" | "outwards" | "both"
	CompatibleVehicleTypeIDs []int64 `json:"compatibleVehicleTypeIds,omitempty"`
	ImageURL                 *string `json:"imageUrl,omitempty"`
	Notes                    *string `json:"notes,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateDockRequest) ToServiceRequest(companyID, warehouseID int64) *models.CreateDockRequest {
	return &models.CreateDockRequest{
		CompanyID:                companyID,
		WarehouseID:              warehouseID,
		Name:                     r.Name,
		StartHour:                r.StartHour,
		EndHour:                  r.EndHour,
		MovementType:             r.MovementType,
		CompatibleVehicleTypeIDs: r.CompatibleVehicleTypeIDs,
		ImageURL:                 r.ImageURL,
		Notes:                    r.Notes,
	}
}
