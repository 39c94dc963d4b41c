package dock

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/WMS-DockService/internal/domain"
	"github.com/m04kA/WMS-DockService/pkg/dbmetrics"
	"github.com/m04kA/WMS-DockService/pkg/psqlbuilder"
)

// DBExecutor интерфейс исполнителя запросов
type DBExecutor = dbmetrics.DBExecutor

var dockColumns = []string{
	"id",
	"company_id",
	"warehouse_id",
	"name",
	"start_hour",
	"end_hour",
	"movement_type",
	"compatible_vehicle_type_ids",
	"image_url",
	"notes",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с доками складов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория доков
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый док
func (r *Repository) Create(ctx context.Context, dock *domain.Dock) (*domain.Dock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("docks").
		Columns(
			"company_id",
			"warehouse_id",
			"name",
			"start_hour",
			"end_hour",
			"movement_type",
			"compatible_vehicle_type_ids",
			"image_url",
			"notes",
			"is_active",
		).
		Values(
			dock.CompanyID,
			dock.WarehouseID,
			dock.Name,
			dock.StartHour,
			dock.EndHour,
			dock.MovementType,
			pq.Array(dock.CompatibleVehicleTypeIDs),
			dock.ImageURL,
			dock.Notes,
			dock.IsActive,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&dock.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	dock.CreatedAt = createdAt.Time
	dock.UpdatedAt = updatedAt.Time

	return dock, nil
}

// GetByID получает док по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Dock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(dockColumns...).
		From("docks").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var dock domain.Dock
	var createdAt, updatedAt sql.NullTime
	var vehicleTypeIDs pq.Int64Array

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&dock.ID,
		&dock.CompanyID,
		&dock.WarehouseID,
		&dock.Name,
		&dock.StartHour,
		&dock.EndHour,
		&dock.MovementType,
		&vehicleTypeIDs,
		&dock.ImageURL,
		&dock.Notes,
		&dock.IsActive,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrDockNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan dock: %v", ErrScanRow, err)
	}

	dock.CompatibleVehicleTypeIDs = vehicleTypeIDs
	dock.CreatedAt = createdAt.Time
	dock.UpdatedAt = updatedAt.Time

	return &dock, nil
}

// ListActive получает активные доки склада
// Порядок стабильный (ORDER BY id ASC) - на него опирается детерминированность
// выбора дока аллокатором
func (r *Repository) ListActive(ctx context.Context, companyID, warehouseID int64) ([]*domain.Dock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(dockColumns...).
		From("docks").
		Where(squirrel.Eq{"company_id": companyID}).
		Where(squirrel.Eq{"warehouse_id": warehouseID}).
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanDocks(rows)
}

// ListByWarehouse получает все доки склада, включая неактивные
// Порядок стабильный (ORDER BY id ASC)
func (r *Repository) ListByWarehouse(ctx context.Context, companyID, warehouseID int64) ([]*domain.Dock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(dockColumns...).
		From("docks").
		Where(squirrel.Eq{"company_id": companyID}).
		Where(squirrel.Eq{"warehouse_id": warehouseID}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByWarehouse - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByWarehouse - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanDocks(rows)
}

// Update обновляет конфигурацию дока
func (r *Repository) Update(ctx context.Context, dock *domain.Dock) (*domain.Dock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("docks").
		Set("name", dock.Name).
		Set("start_hour", dock.StartHour).
		Set("end_hour", dock.EndHour).
		Set("movement_type", dock.MovementType).
		Set("compatible_vehicle_type_ids", pq.Array(dock.CompatibleVehicleTypeIDs)).
		Set("image_url", dock.ImageURL).
		Set("notes", dock.Notes).
		Set("is_active", dock.IsActive).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": dock.ID}).
		Suffix("RETURNING updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrDockNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	dock.UpdatedAt = updatedAt.Time

	return dock, nil
}

// scanDocks сканирует результаты запроса в слайс доков
func (r *Repository) scanDocks(rows *sql.Rows) ([]*domain.Dock, error) {
	docks := make([]*domain.Dock, 0)

	for rows.Next() {
		var dock domain.Dock
		var createdAt, updatedAt sql.NullTime
		var vehicleTypeIDs pq.Int64Array

		err := rows.Scan(
			&dock.ID,
			&dock.CompanyID,
			&dock.WarehouseID,
			&dock.Name,
			&dock.StartHour,
			&dock.EndHour,
			&dock.MovementType,
			&vehicleTypeIDs,
			&dock.ImageURL,
			&dock.Notes,
			&dock.IsActive,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanDocks - scan row: %v", ErrScanRow, err)
		}

		dock.CompatibleVehicleTypeIDs = vehicleTypeIDs
		dock.CreatedAt = createdAt.Time
		dock.UpdatedAt = updatedAt.Time

		docks = append(docks, &dock)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanDocks - rows error: %v", ErrScanRow, err)
	}

	return docks, nil
}
