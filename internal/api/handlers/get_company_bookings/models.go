package get_company_bookings

import (
	"strconv"
	"time"

	"github.com/m04kA/WMS-DockService/internal/domain"
	"github.com/m04kA/WMS-DockService/internal/service/bookings/models"
)

// ToServiceRequest собирает модель сервиса из query параметров
// Все параметры кроме companyID опциональны
func ToServiceRequest(
	companyID int64,
	warehouseIDStr, dockIDStr, statusStr, startDateStr, endDateStr, includeInactiveStr string,
) (*models.GetCompanyBookingsRequest, error) {
	req := &models.GetCompanyBookingsRequest{
		CompanyID: companyID,
	}

	if warehouseIDStr != "" {
		warehouseID, err := strconv.ParseInt(warehouseIDStr, 10, 64)
		if err != nil {
			return nil, err
		}
		req.WarehouseID = &warehouseID
	}

	if dockIDStr != "" {
		dockID, err := strconv.ParseInt(dockIDStr, 10, 64)
		if err != nil {
			return nil, err
		}
		req.DockID = &dockID
	}

	if statusStr != "" {
		req.Status = &statusStr
	}

	if startDateStr != "" {
		startDate, err := time.Parse(domain.DateFormat, startDateStr)
		if err != nil {
			return nil, err
		}
		req.StartDate = &startDate
	}

	if endDateStr != "" {
		endDate, err := time.Parse(domain.DateFormat, endDateStr)
		if err != nil {
			return nil, err
		}
		req.EndDate = &endDate
	}

	if includeInactiveStr != "" {
		includeInactive, err := strconv.ParseBool(includeInactiveStr)
		if err != nil {
			return nil, err
		}
		req.IncludeInactive = includeInactive
	}

	return req, nil
}
