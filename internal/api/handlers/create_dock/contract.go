package create_dock

import (
	"context"

	"github.com/m04kA/WMS-DockService/internal/service/docks/models"
)

type DockService interface {
	Create(ctx context.Context, warehouseID int64, req *models.CreateDockRequest) (*models.DockResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
