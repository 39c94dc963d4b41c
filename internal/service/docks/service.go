package docks

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/WMS-DockService/internal/domain"
	dockRepo "github.com/m04kA/WMS-DockService/internal/infra/storage/dock"
	"github.com/m04kA/WMS-DockService/internal/service/docks/models"
)

// Service сервис для управления доками склада
type Service struct {
	dockRepo DockRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса доков
func NewService(dockRepo DockRepository, logger Logger) *Service {
	return &Service{
		dockRepo: dockRepo,
		logger:   logger,
	}
}

// ListByWarehouse получает доки склада в стабильном порядке (id ASC)
func (s *Service) ListByWarehouse(ctx context.Context, companyID, warehouseID int64) (*models.DockListResponse, error) {
	s.logger.Info("ListByWarehouse: fetching docks for company=%d, warehouse=%d", companyID, warehouseID)

	docks, err := s.dockRepo.ListByWarehouse(ctx, companyID, warehouseID)
	if err != nil {
		s.logger.Error("ListByWarehouse: repository error for warehouse=%d: %v", warehouseID, err)
		return nil, fmt.Errorf("%w: ListByWarehouse - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByWarehouse: successfully fetched %d docks for warehouse=%d", len(docks), warehouseID)
	return models.FromDomainDockList(docks), nil
}

// Create создает новый док
func (s *Service) Create(ctx context.Context, warehouseID int64, req *models.CreateDockRequest) (*models.DockResponse, error) {
	s.logger.Info("Create: creating dock %q for company=%d, warehouse=%d", req.Name, req.CompanyID, warehouseID)

	if strings.TrimSpace(req.Name) == "" {
		s.logger.Warn("Create: empty dock name for warehouse=%d", warehouseID)
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	// Рабочие часы в пределах одних суток
	if err := domain.ValidateHours(req.StartHour, req.EndHour); err != nil {
		s.logger.Warn("Create: invalid hours %d-%d for warehouse=%d: %v", req.StartHour, req.EndHour, warehouseID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	movement, err := domain.ParseMovementType(req.MovementType)
	if err != nil {
		s.logger.Warn("Create: invalid movement type %q for warehouse=%d", req.MovementType, warehouseID)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	dock := &domain.Dock{
		CompanyID:                req.CompanyID,
		WarehouseID:              warehouseID,
		Name:                     req.Name,
		StartHour:                req.StartHour,
		EndHour:                  req.EndHour,
		MovementType:             movement,
		CompatibleVehicleTypeIDs: req.CompatibleVehicleTypeIDs,
		ImageURL:                 req.ImageURL,
		Notes:                    req.Notes,
		IsActive:                 true,
	}

	created, err := s.dockRepo.Create(ctx, dock)
	if err != nil {
		s.logger.Error("Create: repository error for warehouse=%d: %v", warehouseID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created dock id=%d for warehouse=%d", created.ID, warehouseID)
	return models.FromDomainDock(created), nil
}

// Update обновляет конфигурацию дока
// Обновляются только переданные поля; рабочие часы валидируются
// в итоговой комбинации
func (s *Service) Update(ctx context.Context, dockID int64, req *models.UpdateDockRequest) (*models.DockResponse, error) {
	s.logger.Info("Update: updating dock id=%d by company=%d", dockID, req.CompanyID)

	dock, err := s.dockRepo.GetByID(ctx, dockID)
	if err != nil {
		if errors.Is(err, dockRepo.ErrDockNotFound) {
			s.logger.Warn("Update: dock id=%d not found", dockID)
			return nil, ErrDockNotFound
		}
		s.logger.Error("Update: repository error for dock id=%d: %v", dockID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	// Проверяем принадлежность компании
	if dock.CompanyID != req.CompanyID {
		s.logger.Warn("Update: access denied for company=%d to dock id=%d", req.CompanyID, dockID)
		return nil, ErrAccessDenied
	}

	// Применяем только переданные поля
	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			s.logger.Warn("Update: empty dock name for dock id=%d", dockID)
			return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
		}
		dock.Name = *req.Name
	}
	if req.StartHour != nil {
		dock.StartHour = *req.StartHour
	}
	if req.EndHour != nil {
		dock.EndHour = *req.EndHour
	}
	if req.MovementType != nil {
		movement, err := domain.ParseMovementType(*req.MovementType)
		if err != nil {
			s.logger.Warn("Update: invalid movement type %q for dock id=%d", *req.MovementType, dockID)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		dock.MovementType = movement
	}
	if req.CompatibleVehicleTypeIDs != nil {
		dock.CompatibleVehicleTypeIDs = *req.CompatibleVehicleTypeIDs
	}
	if req.ImageURL != nil {
		dock.ImageURL = req.ImageURL
	}
	if req.Notes != nil {
		dock.Notes = req.Notes
	}
	if req.IsActive != nil {
		dock.IsActive = *req.IsActive
	}

	// Итоговая комбинация часов должна остаться валидной
	if err := domain.ValidateHours(dock.StartHour, dock.EndHour); err != nil {
		s.logger.Warn("Update: invalid hours %d-%d for dock id=%d: %v", dock.StartHour, dock.EndHour, dockID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	updated, err := s.dockRepo.Update(ctx, dock)
	if err != nil {
		if errors.Is(err, dockRepo.ErrDockNotFound) {
			s.logger.Warn("Update: dock id=%d not found during update", dockID)
			return nil, ErrDockNotFound
		}
		s.logger.Error("Update: repository error for dock id=%d: %v", dockID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated dock id=%d", dockID)
	return models.FromDomainDock(updated), nil
}
