package docks

import (
	"context"

	"github.com/m04kA/WMS-DockService/internal/domain"
)

// DockRepository интерфейс репозитория доков
type DockRepository interface {
	Create(ctx context.Context, dock *domain.Dock) (*domain.Dock, error)
	GetByID(ctx context.Context, id int64) (*domain.Dock, error)
	ListByWarehouse(ctx context.Context, companyID, warehouseID int64) ([]*domain.Dock, error)
	Update(ctx context.Context, dock *domain.Dock) (*domain.Dock, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
