package get_docks

import (
	"context"

	"github.com/m04kA/WMS-DockService/internal/service/docks/models"
)

type DockService interface {
	ListByWarehouse(ctx context.Context, companyID, warehouseID int64) (*models.DockListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
