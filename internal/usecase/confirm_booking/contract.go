package confirm_booking

import (
	"context"
	"time"

	"github.com/m04kA/WMS-DockService/internal/domain"
	"github.com/m04kA/WMS-DockService/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByConfirmationID(ctx context.Context, confirmationID string) (*domain.Booking, error)
	ListForDate(ctx context.Context, companyID, warehouseID int64, date time.Time) ([]*domain.Booking, error)
	Confirm(ctx context.Context, id int64, dockID int64, startTime, endTime types.TimeString) error
	Delete(ctx context.Context, id int64) error
}

// DockRepository интерфейс репозитория доков
type DockRepository interface {
	ListActive(ctx context.Context, companyID, warehouseID int64) ([]*domain.Dock, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
