package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
[server]
http_port = 8080
read_timeout = 15
write_timeout = 15
idle_timeout = 60
shutdown_timeout = 10

[database]
host = "localhost"
port = 5432
user = "dockservice"
password = "secret"
dbname = "dockservice"
sslmode = "disable"
max_open_conns = 25
max_idle_conns = 5
conn_max_lifetime = 300

[logs]
file = "logs/dockservice.log"
level = "info"

[metrics]
enabled = true
service_name = "wms-dock-service"
path = "/metrics"

[company_service]
url = "http://localhost:8081"
timeout = 5

[booking]
slot_interval_minutes = 30
confirmation_window_minutes = 15
alternative_slots_limit = 5

[integration.api_keys]
"integration-key" = 7
`

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeTestConfig(t, testConfig))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 10, cfg.Server.ShutdownTimeout)

	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)

	assert.Equal(t, "logs/dockservice.log", cfg.Logs.File)
	assert.Equal(t, "info", cfg.Logs.Level)

	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "wms-dock-service", cfg.Metrics.ServiceName)

	assert.Equal(t, "http://localhost:8081", cfg.CompanyService.URL)

	assert.Equal(t, 30, cfg.Booking.SlotIntervalMinutes)
	assert.Equal(t, 15, cfg.Booking.ConfirmationWindowMinutes)
	assert.Equal(t, 5, cfg.Booking.AlternativeSlotsLimit)

	require.Contains(t, cfg.Integration.APIKeys, "integration-key")
	assert.Equal(t, int64(7), cfg.Integration.APIKeys["integration-key"])
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load("nonexistent/config.toml")
	assert.Error(t, err)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg, err := Load(writeTestConfig(t, testConfig))
	require.NoError(t, err)

	assert.Equal(t,
		"host=localhost port=5432 user=dockservice password=secret dbname=dockservice sslmode=disable",
		cfg.Database.DSN())
}
