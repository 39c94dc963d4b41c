package companyservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с CompanyService
// Через него сервис получает справочные данные: компании с их политиками
// расчёта длительности, склады, типы транспорта и перевозчиков
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента CompanyService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetCompany получает компанию с её политикой расчёта длительности
func (c *Client) GetCompany(ctx context.Context, companyID int64) (*Company, error) {
	url := fmt.Sprintf("%s/internal/companies/%d", c.baseURL, companyID)

	var company Company
	if err := c.getJSON(ctx, url, &company, ErrCompanyNotFound); err != nil {
		return nil, err
	}

	return &company, nil
}

// GetWarehouses получает список складов компании
func (c *Client) GetWarehouses(ctx context.Context, companyID int64) ([]Warehouse, error) {
	url := fmt.Sprintf("%s/internal/companies/%d/warehouses", c.baseURL, companyID)

	warehouses := make([]Warehouse, 0)
	if err := c.getJSON(ctx, url, &warehouses, ErrCompanyNotFound); err != nil {
		return nil, err
	}

	return warehouses, nil
}

// GetWarehouse получает склад компании по ID
func (c *Client) GetWarehouse(ctx context.Context, companyID, warehouseID int64) (*Warehouse, error) {
	url := fmt.Sprintf("%s/internal/companies/%d/warehouses/%d", c.baseURL, companyID, warehouseID)

	var warehouse Warehouse
	if err := c.getJSON(ctx, url, &warehouse, ErrWarehouseNotFound); err != nil {
		return nil, err
	}

	return &warehouse, nil
}

// GetWarehouseByCode получает склад компании по коду (для интеграционного API)
func (c *Client) GetWarehouseByCode(ctx context.Context, companyID int64, code string) (*Warehouse, error) {
	url := fmt.Sprintf("%s/internal/companies/%d/warehouses/by-code/%s", c.baseURL, companyID, url.PathEscape(code))

	var warehouse Warehouse
	if err := c.getJSON(ctx, url, &warehouse, ErrWarehouseNotFound); err != nil {
		return nil, err
	}

	return &warehouse, nil
}

// GetVehicleType получает тип транспорта компании по ID
func (c *Client) GetVehicleType(ctx context.Context, companyID, vehicleTypeID int64) (*VehicleType, error) {
	url := fmt.Sprintf("%s/internal/companies/%d/vehicle-types/%d", c.baseURL, companyID, vehicleTypeID)

	var vehicleType VehicleType
	if err := c.getJSON(ctx, url, &vehicleType, ErrVehicleTypeNotFound); err != nil {
		return nil, err
	}

	return &vehicleType, nil
}

// GetVehicleTypeByCode получает тип транспорта компании по коду (для интеграционного API)
func (c *Client) GetVehicleTypeByCode(ctx context.Context, companyID int64, code string) (*VehicleType, error) {
	url := fmt.Sprintf("%s/internal/companies/%d/vehicle-types/by-code/%s", c.baseURL, companyID, url.PathEscape(code))

	var vehicleType VehicleType
	if err := c.getJSON(ctx, url, &vehicleType, ErrVehicleTypeNotFound); err != nil {
		return nil, err
	}

	return &vehicleType, nil
}

// GetCarrierByName получает перевозчика компании по имени (для интеграционного API)
func (c *Client) GetCarrierByName(ctx context.Context, companyID int64, name string) (*Carrier, error) {
	url := fmt.Sprintf("%s/internal/companies/%d/carriers/by-name/%s", c.baseURL, companyID, url.PathEscape(name))

	var carrier Carrier
	if err := c.getJSON(ctx, url, &carrier, ErrCarrierNotFound); err != nil {
		return nil, err
	}

	return &carrier, nil
}

// getJSON выполняет GET запрос и декодирует JSON ответ
// notFoundErr возвращается при статусе 404
func (c *Client) getJSON(ctx context.Context, url string, dest interface{}, notFoundErr error) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return notFoundErr
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}
