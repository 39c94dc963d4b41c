package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/WMS-DockService/internal/domain"
	"github.com/m04kA/WMS-DockService/internal/integrations/companyservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// ListForDate получает все активные бронирования склада на конкретную дату
	ListForDate(ctx context.Context, companyID, warehouseID int64, date time.Time) ([]*domain.Booking, error)
}

// DockRepository интерфейс репозитория доков
type DockRepository interface {
	// ListActive получает активные доки склада в стабильном порядке (id ASC)
	ListActive(ctx context.Context, companyID, warehouseID int64) ([]*domain.Dock, error)
}

// CompanyServiceClient интерфейс клиента для CompanyService
type CompanyServiceClient interface {
	GetCompany(ctx context.Context, companyID int64) (*companyservice.Company, error)
	GetWarehouse(ctx context.Context, companyID, warehouseID int64) (*companyservice.Warehouse, error)
	GetVehicleType(ctx context.Context, companyID, vehicleTypeID int64) (*companyservice.VehicleType, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
