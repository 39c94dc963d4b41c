package companyservice

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newTestClient(handler http.Handler) (*Client, func()) {
	server := httptest.NewServer(handler)
	client := NewClient(server.URL, 2*time.Second, noopLogger{})
	return client, server.Close
}

func TestGetCompany(t *testing.T) {
	client, closeFn := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/internal/companies/1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": 1,
			"name": "Логистик Плюс",
			"min_booking_minutes": 15,
			"tiers": [
				{"pallet_break": 10, "time_per_pallet": 5},
				{"pallet_break": 25, "time_per_pallet": 3}
			]
		}`))
	}))
	defer closeFn()

	company, err := client.GetCompany(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, int64(1), company.ID)
	assert.Equal(t, "Логистик Плюс", company.Name)

	policy := company.DefaultPolicy()
	assert.Equal(t, 15, policy.MinBookingMinutes)
	require.Len(t, policy.Tiers, 2)
	assert.Equal(t, 10, policy.Tiers[0].PalletBreak)
	assert.Equal(t, 5.0, policy.Tiers[0].TimePerPallet)
}

func TestGetCompany_NotFound(t *testing.T) {
	client, closeFn := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer closeFn()

	_, err := client.GetCompany(context.Background(), 1)
	assert.ErrorIs(t, err, ErrCompanyNotFound)
}

func TestGetWarehouseByCode(t *testing.T) {
	client, closeFn := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/internal/companies/1/warehouses/by-code/MSK-01", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": 7, "company_id": 1, "code": "MSK-01", "name": "Склад Москва", "address": "Москва"}`))
	}))
	defer closeFn()

	warehouse, err := client.GetWarehouseByCode(context.Background(), 1, "MSK-01")
	require.NoError(t, err)
	assert.Equal(t, int64(7), warehouse.ID)
	assert.Equal(t, "MSK-01", warehouse.Code)
}

func TestGetVehicleTypeByCode_OverridePolicy(t *testing.T) {
	client, closeFn := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": 3,
			"company_id": 1,
			"code": "TRUCK-20",
			"name": "Фура 20т",
			"max_pallets": 33,
			"use_custom_calculation": true,
			"min_booking_minutes": 60,
			"tiers": [{"pallet_break": 50, "time_per_pallet": 2}]
		}`))
	}))
	defer closeFn()

	vehicleType, err := client.GetVehicleTypeByCode(context.Background(), 1, "TRUCK-20")
	require.NoError(t, err)

	override := vehicleType.OverridePolicy()
	require.NotNil(t, override)
	assert.Equal(t, 60, override.MinBookingMinutes)

	vehicleType.UseCustomCalculation = false
	assert.Nil(t, vehicleType.OverridePolicy(), "без флага кастомного расчёта политика компании")
}

func TestGetCarrierByName_EscapesPath(t *testing.T) {
	client, closeFn := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// PathEscape кодирует кириллицу и пробел
		assert.Contains(t, r.URL.EscapedPath(), "/carriers/by-name/%D0%A2%D0%9A%20%D0%92%D0%BE%D1%81%D1%82%D0%BE%D0%BA")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": 5, "company_id": 1, "name": "ТК Восток"}`))
	}))
	defer closeFn()

	carrier, err := client.GetCarrierByName(context.Background(), 1, "ТК Восток")
	require.NoError(t, err)
	assert.Equal(t, "ТК Восток", carrier.Name)
}

func TestGetJSON_UnexpectedStatus(t *testing.T) {
	client, closeFn := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer closeFn()

	_, err := client.GetWarehouse(context.Background(), 1, 7)
	assert.ErrorIs(t, err, ErrInvalidResponse)
}
