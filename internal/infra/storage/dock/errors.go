package dock

import "errors"

var (
	// ErrDockNotFound возвращается, когда док не найден
	ErrDockNotFound = errors.New("dock.repository: dock not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("dock.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("dock.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("dock.repository: failed to scan row")
)
