package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 8080
read_timeout = 15
write_timeout = 15
idle_timeout = 60
shutdown_timeout = 10

[database]
host = "localhost"
port = 5432
user = "scheduling"
password = "secret"
dbname = "scheduling"
sslmode = "disable"
max_open_conns = 25
max_idle_conns = 5
conn_max_lifetime = 300

[logs]
file = "logs/service.log"
level = "debug"

[metrics]
enabled = true
path = "/metrics"
service_name = "scheduling-service"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "host=localhost port=5432 user=scheduling password=secret dbname=scheduling sslmode=disable",
		cfg.Database.DSN())
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
		assert.Error(t, err)
	})

	t.Run("missing database host", func(t *testing.T) {
		path := writeConfig(t, `
[server]
http_port = 8080

[database]
dbname = "scheduling"
`)
		_, err := Load(path)
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("metrics enabled without path", func(t *testing.T) {
		path := writeConfig(t, `
[server]
http_port = 8080

[database]
host = "localhost"
dbname = "scheduling"

[metrics]
enabled = true
`)
		_, err := Load(path)
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})
}
