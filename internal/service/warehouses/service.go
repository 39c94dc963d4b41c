package warehouses

import (
	"context"
	"errors"
	"fmt"

	companyClient "github.com/m04kA/WMS-DockService/internal/integrations/companyservice"
	"github.com/m04kA/WMS-DockService/internal/service/warehouses/models"
)

// Service сервис для получения складов через CompanyService
type Service struct {
	companyClient CompanyServiceClient
	logger        Logger
}

// NewService создает новый экземпляр сервиса складов
func NewService(companyClient CompanyServiceClient, logger Logger) *Service {
	return &Service{
		companyClient: companyClient,
		logger:        logger,
	}
}

// List получает склады компании
func (s *Service) List(ctx context.Context, companyID int64) (*models.WarehouseListResponse, error) {
	s.logger.Info("List: fetching warehouses for company=%d", companyID)

	warehouses, err := s.companyClient.GetWarehouses(ctx, companyID)
	if err != nil {
		if errors.Is(err, companyClient.ErrCompanyNotFound) {
			s.logger.Warn("List: company id=%d not found", companyID)
			return nil, ErrCompanyNotFound
		}
		s.logger.Error("List: failed to get warehouses for company=%d: %v", companyID, err)
		return nil, fmt.Errorf("%w: List - failed to get warehouses: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d warehouses for company=%d", len(warehouses), companyID)
	return models.FromCompanyServiceWarehouses(warehouses), nil
}
