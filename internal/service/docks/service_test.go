package docks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/WMS-DockService/internal/domain"
	dockRepo "github.com/m04kA/WMS-DockService/internal/infra/storage/dock"
	"github.com/m04kA/WMS-DockService/internal/service/docks/models"
	"github.com/m04kA/WMS-DockService/pkg/ptr"
)

type fakeDockRepo struct {
	docks  map[int64]*domain.Dock
	listed []*domain.Dock

	created *domain.Dock
	updated *domain.Dock
	nextID  int64
}

func (f *fakeDockRepo) Create(_ context.Context, dock *domain.Dock) (*domain.Dock, error) {
	f.nextID++
	copied := *dock
	copied.ID = f.nextID
	f.created = &copied
	return &copied, nil
}

func (f *fakeDockRepo) GetByID(_ context.Context, id int64) (*domain.Dock, error) {
	dock, ok := f.docks[id]
	if !ok {
		return nil, dockRepo.ErrDockNotFound
	}
	copied := *dock
	return &copied, nil
}

func (f *fakeDockRepo) ListByWarehouse(_ context.Context, _, _ int64) ([]*domain.Dock, error) {
	return f.listed, nil
}

func (f *fakeDockRepo) Update(_ context.Context, dock *domain.Dock) (*domain.Dock, error) {
	f.updated = dock
	return dock, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func existingDock() *domain.Dock {
	return &domain.Dock{
		ID:           5,
		CompanyID:    1,
		WarehouseID:  7,
		Name:         "Dock-1",
		StartHour:    7,
		EndHour:      17,
		MovementType: domain.MovementBoth,
		IsActive:     true,
	}
}

func TestCreate(t *testing.T) {
	repo := &fakeDockRepo{}
	svc := NewService(repo, noopLogger{})

	resp, err := svc.Create(context.Background(), 7, &models.CreateDockRequest{
		CompanyID:                1,
		Name:                     "Dock-3",
		StartHour:                8,
		EndHour:                  20,
		MovementType:             "inwards",
		CompatibleVehicleTypeIDs: []int64{3},
	})
	require.NoError(t, err)

	assert.Equal(t, "Dock-3", resp.Name)
	assert.Equal(t, int64(7), resp.WarehouseID)
	assert.Equal(t, "inwards", resp.MovementType)
	assert.True(t, resp.IsActive, "новый док создаётся активным")
	assert.Equal(t, []int64{3}, resp.CompatibleVehicleTypeIDs)
}

func TestCreate_Validation(t *testing.T) {
	svc := NewService(&fakeDockRepo{}, noopLogger{})

	tests := []struct {
		name string
		req  *models.CreateDockRequest
	}{
		{
			name: "пустое имя",
			req:  &models.CreateDockRequest{CompanyID: 1, Name: " ", StartHour: 7, EndHour: 17, MovementType: "both"},
		},
		{
			name: "окно через полночь",
			req:  &models.CreateDockRequest{CompanyID: 1, Name: "Dock", StartHour: 22, EndHour: 6, MovementType: "both"},
		},
		{
			name: "неизвестное направление",
			req:  &models.CreateDockRequest{CompanyID: 1, Name: "Dock", StartHour: 7, EndHour: 17, MovementType: "sideways"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), 7, tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestListByWarehouse(t *testing.T) {
	repo := &fakeDockRepo{listed: []*domain.Dock{existingDock()}}
	svc := NewService(repo, noopLogger{})

	resp, err := svc.ListByWarehouse(context.Background(), 1, 7)
	require.NoError(t, err)
	require.Len(t, resp.Docks, 1)
	assert.Equal(t, "Dock-1", resp.Docks[0].Name)
}

func TestUpdate_PartialFields(t *testing.T) {
	repo := &fakeDockRepo{docks: map[int64]*domain.Dock{5: existingDock()}}
	svc := NewService(repo, noopLogger{})

	resp, err := svc.Update(context.Background(), 5, &models.UpdateDockRequest{
		CompanyID: 1,
		EndHour:   ptr.Ptr(20),
		IsActive:  ptr.Ptr(false),
	})
	require.NoError(t, err)

	assert.Equal(t, 7, resp.StartHour, "непереданные поля не меняются")
	assert.Equal(t, 20, resp.EndHour)
	assert.False(t, resp.IsActive)
	assert.Equal(t, "Dock-1", resp.Name)
}

func TestUpdate_InvalidResultingHours(t *testing.T) {
	repo := &fakeDockRepo{docks: map[int64]*domain.Dock{5: existingDock()}}
	svc := NewService(repo, noopLogger{})

	// Существующий док 7-17: новый конец 6 даёт окно через полночь
	_, err := svc.Update(context.Background(), 5, &models.UpdateDockRequest{
		CompanyID: 1,
		EndHour:   ptr.Ptr(6),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Nil(t, repo.updated)
}

func TestUpdate_ForeignCompany(t *testing.T) {
	repo := &fakeDockRepo{docks: map[int64]*domain.Dock{5: existingDock()}}
	svc := NewService(repo, noopLogger{})

	_, err := svc.Update(context.Background(), 5, &models.UpdateDockRequest{
		CompanyID: 99,
		Name:      ptr.Ptr("Hijacked"),
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestUpdate_NotFound(t *testing.T) {
	svc := NewService(&fakeDockRepo{docks: map[int64]*domain.Dock{}}, noopLogger{})

	_, err := svc.Update(context.Background(), 5, &models.UpdateDockRequest{CompanyID: 1})
	assert.ErrorIs(t, err, ErrDockNotFound)
}
