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

func TestLoad_HTTPRecordSource(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 8080
read_timeout = 10
write_timeout = 10
idle_timeout = 60
shutdown_timeout = 15

[logs]
file = ""
level = "info"

[metrics]
enabled = true
path = "/metrics"
service_name = "agendamento"

[record_source]
type = "http"

[recordstore]
url = "http://localhost:3001"
timeout = 5
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, RecordSourceHTTP, cfg.RecordSource.Type)
	assert.Equal(t, "http://localhost:3001", cfg.RecordStore.URL)
}

func TestLoad_PostgresRecordSource(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 8080

[record_source]
type = "postgres"

[database]
host = "localhost"
port = 5432
user = "app"
password = "secret"
dbname = "agendamento"
sslmode = "disable"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, RecordSourcePostgres, cfg.RecordSource.Type)
	assert.Contains(t, cfg.Database.DSN(), "host=localhost")
	assert.Contains(t, cfg.Database.DSN(), "dbname=agendamento")
}

func TestLoad_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "missing port",
			content: `
[record_source]
type = "http"

[recordstore]
url = "http://localhost:3001"
`,
		},
		{
			name: "unknown record source type",
			content: `
[server]
http_port = 8080

[record_source]
type = "csv"
`,
		},
		{
			name: "http source without url",
			content: `
[server]
http_port = 8080

[record_source]
type = "http"
`,
		},
		{
			name: "postgres source without database",
			content: `
[server]
http_port = 8080

[record_source]
type = "postgres"
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
		})
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PASSWORD", "override")
	t.Setenv("RECORDSTORE_URL", "http://store.internal:3001")

	path := writeConfig(t, `
[server]
http_port = 8080

[record_source]
type = "http"

[recordstore]
url = "http://localhost:3001"

[database]
host = "localhost"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "override", cfg.Database.Password)
	assert.Equal(t, "http://store.internal:3001", cfg.RecordStore.URL)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}
