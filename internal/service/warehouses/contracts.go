package warehouses

import (
	"context"

	"github.com/m04kA/WMS-DockService/internal/integrations/companyservice"
)

// CompanyServiceClient интерфейс клиента для CompanyService
type CompanyServiceClient interface {
	GetWarehouses(ctx context.Context, companyID int64) ([]companyservice.Warehouse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
