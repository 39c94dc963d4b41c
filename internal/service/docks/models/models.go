package models

import (
	"time"

	"github.com/m04kA/WMS-DockService/internal/domain"
)

// Request модели

// CreateDockRequest запрос на создание дока
type CreateDockRequest struct {
	CompanyID                int64   `json:"companyId"`
	WarehouseID              int64   `json:"warehouseId"`
	Name                     string  `json:"name"`
	StartHour                int     `json:"startHour"`
	EndHour                  int     `json:"endHour"`
	MovementType             string  `json:"movementType"`
	CompatibleVehicleTypeIDs []int64 `json:"compatibleVehicleTypeIds,omitempty"`
	ImageURL                 *string `json:"imageUrl,omitempty"`
	Notes                    *string `json:"notes,omitempty"`
}

// UpdateDockRequest запрос на обновление дока
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

// Response модели

// DockResponse ответ с данными дока
type DockResponse struct {
	ID                       int64   `json:"id"`
	CompanyID                int64   `json:"companyId"`
	WarehouseID              int64   `json:"warehouseId"`
	Name                     string  `json:"name"`
	StartHour                int     `json:"startHour"`
	EndHour                  int     `json:"endHour"`
	MovementType             string  `json:"movementType"`
	CompatibleVehicleTypeIDs []int64 `json:"compatibleVehicleTypeIds"`
	ImageURL                 *string `json:"imageUrl,omitempty"`
	Notes                    *string `json:"notes,omitempty"`
	IsActive                 bool    `json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DockListResponse ответ со списком доков
type DockListResponse struct {
	Docks []DockResponse `json:"docks"`
}

// Методы конвертации

// FromDomainDock конвертирует domain модель в DTO
func FromDomainDock(d *domain.Dock) *DockResponse {
	if d == nil {
		return nil
	}

	compatibleIDs := d.CompatibleVehicleTypeIDs
	if compatibleIDs == nil {
		compatibleIDs = []int64{}
	}

	return &DockResponse{
		ID:                       d.ID,
		CompanyID:                d.CompanyID,
		WarehouseID:              d.WarehouseID,
		Name:                     d.Name,
		StartHour:                d.StartHour,
		EndHour:                  d.EndHour,
		MovementType:             string(d.MovementType),
		CompatibleVehicleTypeIDs: compatibleIDs,
		ImageURL:                 d.ImageURL,
		Notes:                    d.Notes,
		IsActive:                 d.IsActive,
		CreatedAt:                d.CreatedAt,
		UpdatedAt:                d.UpdatedAt,
	}
}

// FromDomainDockList конвертирует список domain моделей в DTO
func FromDomainDockList(docks []*domain.Dock) *DockListResponse {
	if docks == nil {
		return &DockListResponse{
			Docks: []DockResponse{},
		}
	}

	resp := &DockListResponse{
		Docks: make([]DockResponse, 0, len(docks)),
	}
	for _, d := range docks {
		resp.Docks = append(resp.Docks, *FromDomainDock(d))
	}

	return resp
}
