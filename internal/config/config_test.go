package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validConfig = `
server:
  host: "0.0.0.0"
  port: 9090
database:
  host: "localhost"
  port: 5432
  user: "gearshare"
  password: "secret"
  database: "gearshare"
  ssl_mode: "disable"
log:
  level: "info"
  format: "json"
scheduler:
  send_pending_reminders: "0 0 9 * * *"
  refresh_booking_metrics: "0 */5 * * * *"
`

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfigFile(t, validConfig))

	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:9090", cfg.GetServerAddress())
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "0 0 9 * * *", cfg.Scheduler.SendPendingReminders)
	assert.Equal(t,
		"host=localhost port=5432 user=gearshare password=secret dbname=gearshare sslmode=disable",
		cfg.GetDatabaseConnectionString())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("SERVER_PORT", "8081")
	t.Setenv("JWT_SECRET", "from-env")

	cfg, err := Load(writeConfigFile(t, validConfig))

	require.NoError(t, err)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 8081, cfg.Server.Port)
	assert.Equal(t, "from-env", cfg.Auth.JWTSecret)
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	require.Error(t, cfg.Validate())

	cfg.Server.Port = 9090
	require.Error(t, cfg.Validate(), "database host still missing")

	cfg.Database.Host = "localhost"
	cfg.Database.Database = "gearshare"
	require.NoError(t, cfg.Validate())
}

func TestConnectionStringDefaultSSLMode(t *testing.T) {
	cfg := &Config{}
	cfg.Database.Host = "localhost"
	cfg.Database.Port = 5432
	cfg.Database.Database = "gearshare"

	assert.Contains(t, cfg.GetDatabaseConnectionString(), "sslmode=disable")
}
