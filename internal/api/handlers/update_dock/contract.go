package update_dock

import (
	"context"

	"github.com/m04kA/WMS-DockService/internal/service/docks/models"
)

type DockService interface {
	Update(ctx context.Context, dockID int64, req *models.UpdateDockRequest) (*models.DockResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
