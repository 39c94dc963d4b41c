package request_booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/WMS-DockService/internal/domain"
	"github.com/m04kA/WMS-DockService/internal/integrations/companyservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	ListForDate(ctx context.Context, companyID, warehouseID int64, date time.Time) ([]*domain.Booking, error)
}

// DockRepository интерфейс репозитория доков
type DockRepository interface {
	ListActive(ctx context.Context, companyID, warehouseID int64) ([]*domain.Dock, error)
}

// CompanyServiceClient интерфейс клиента для CompanyService
type CompanyServiceClient interface {
	GetCompany(ctx context.Context, companyID int64) (*companyservice.Company, error)
	GetWarehouseByCode(ctx context.Context, companyID int64, code string) (*companyservice.Warehouse, error)
	GetVehicleTypeByCode(ctx context.Context, companyID int64, code string) (*companyservice.VehicleType, error)
	GetCarrierByName(ctx context.Context, companyID int64, name string) (*companyservice.Carrier, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// IDGenerator интерфейс генерации confirmation id (для тестирования)
type IDGenerator interface {
	NewID() string
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

// UUIDGenerator генератор confirmation id на основе UUID v4
type UUIDGenerator struct{}

// NewID возвращает новый случайный идентификатор
func (g *UUIDGenerator) NewID() string {
	return uuid.NewString()
}
