package models

import "github.com/m04kA/WMS-DockService/internal/integrations/companyservice"

// WarehouseResponse ответ с данными склада для интегратора
type WarehouseResponse struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// WarehouseListResponse ответ со списком складов
type WarehouseListResponse struct {
	Warehouses []WarehouseResponse `json:"warehouses"`
}

// FromCompanyServiceWarehouses конвертирует модели CompanyService в DTO
func FromCompanyServiceWarehouses(warehouses []companyservice.Warehouse) *WarehouseListResponse {
	resp := &WarehouseListResponse{
		Warehouses: make([]WarehouseResponse, 0, len(warehouses)),
	}
	for _, w := range warehouses {
		resp.Warehouses = append(resp.Warehouses, WarehouseResponse{
			Code:    w.Code,
			Name:    w.Name,
			Address: w.Address,
		})
	}
	return resp
}
