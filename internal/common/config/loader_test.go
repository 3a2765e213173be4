package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadFromFile_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
app:
  environment: demo
camunda:
  broker_address: localhost:26500
database:
  postgres:
    host: localhost
    database: sales
    user: sales
workers:
  generate-document-fields:
    enabled: true
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "document-workers", cfg.App.Name)
	assert.Equal(t, "demo", cfg.Documents.Environment)
	assert.Equal(t, "utility-usage", cfg.Documents.UtilityUsageIndex)
	assert.Equal(t, 5432, cfg.Database.Postgres.Port)
	assert.Equal(t, "disable", cfg.Database.Postgres.SSLMode)
	assert.Equal(t, ":8080", cfg.Server.Address)

	wc := cfg.Workers["generate-document-fields"]
	assert.True(t, wc.Enabled)
	assert.Equal(t, 5, wc.MaxJobsActive)
	assert.Equal(t, 30000, wc.Timeout)
	assert.Equal(t, 30*time.Second, GetDuration(wc.Timeout))
}

func TestLoadFromFile_ExpandsEnvPlaceholders(t *testing.T) {
	t.Setenv("TEST_DOC_DB_PASSWORD", "s3cret")
	path := writeConfig(t, `
app:
  environment: production
camunda:
  broker_address: zeebe:26500
database:
  postgres:
    host: db
    database: sales
    user: sales
    password: ${TEST_DOC_DB_PASSWORD}
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "s3cret", cfg.Database.Postgres.Password)
}

func TestLoadFromFile_Validation(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name: "missing broker",
			body: `
app:
  environment: demo
database:
  postgres:
    host: db
    database: sales
    user: sales
`,
			wantErr: "camunda.broker_address is required",
		},
		{
			name: "cache without redis",
			body: `
app:
  environment: demo
camunda:
  broker_address: zeebe:26500
database:
  postgres:
    host: db
    database: sales
    user: sales
documents:
  record_cache_ttl: 60000
`,
			wantErr: "database.redis.address is required",
		},
		{
			name: "sns without topic",
			body: `
app:
  environment: demo
camunda:
  broker_address: zeebe:26500
database:
  postgres:
    host: db
    database: sales
    user: sales
integrations:
  aws:
    sns:
      enabled: true
`,
			wantErr: "documents.diagnostics_topic_arn is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromFile(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestGetWorkerConfig_Fallback(t *testing.T) {
	cfg := &Config{Workers: map[string]WorkerConfig{}}

	wc := GetWorkerConfig(cfg, "unknown")
	assert.True(t, wc.Enabled)
	assert.Equal(t, 3, wc.MaxRetries)
	assert.True(t, IsWorkerEnabled(cfg, "unknown"))
}
