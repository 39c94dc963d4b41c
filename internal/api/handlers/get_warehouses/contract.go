package get_warehouses

import (
	"context"

	"github.com/m04kA/WMS-DockService/internal/service/warehouses/models"
)

type WarehouseService interface {
	List(ctx context.Context, companyID int64) (*models.WarehouseListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
