package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{
		"ADDR", "STORE", "TIMEZONE", "ALLOWED_ORIGINS", "REQUEST_TIMEOUT",
		"MONGODB_URI", "DATABASE_NAME", "MONGO_TRANSACTIONS", "DSN",
		"DB_MAX_CONNECTIONS", "DB_LOG_LEVEL", "HRMS_SSM_PARAMETER", "HRMS_SSM_DATABASE",
		"SLACK_BOT_TOKEN", "SLACK_INFO_CHANNEL", "SLACK_ERROR_CHANNEL",
		"SES_FROM", "HR_EMAIL", "REPORT_BUCKET", "HRMS_CONFIG",
	} {
		t.Setenv(key, "")
	}
}

func writeFile(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "hrms.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, ":8090", cfg.Addr)
	assert.Equal(t, StoreMemory, cfg.Store)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "hrms", cfg.DatabaseName)
	assert.Equal(t, 10, cfg.DBMaxConnections)
	assert.Equal(t, time.UTC, cfg.Location())
	assert.False(t, cfg.IsSQL())
}

func TestLoadFileThenEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("HRMS_CONFIG", writeFile(t, `
store: mongo
mongoUri: mongodb://file:27017
databaseName: people
requestTimeout: 5s
allowedOrigins: [http://localhost:5173]
slack:
  infoChannel: C-INFO
`))
	t.Setenv("DATABASE_NAME", "hrms_test")
	t.Setenv("MONGO_TRANSACTIONS", "true")
	t.Setenv("ALLOWED_ORIGINS", "https://hr.example.com, https://admin.example.com")

	cfg, err := Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, StoreMongo, cfg.Store)
	assert.Equal(t, "mongodb://file:27017", cfg.MongoURI)
	assert.Equal(t, "hrms_test", cfg.DatabaseName)
	assert.True(t, cfg.MongoTransactions)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, []string{"https://hr.example.com", "https://admin.example.com"}, cfg.AllowedOrigins)
	assert.Equal(t, "C-INFO", cfg.Slack.InfoChannelID)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("HRMS_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := Load(context.Background())
	assert.Error(t, err)
}

func TestLoadInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"mongo without uri", map[string]string{"STORE": "mongo"}, "MONGODB_URI is required"},
		{"mysql without dsn", map[string]string{"STORE": "mysql"}, "DSN is required for the mysql store"},
		{"unknown store", map[string]string{"STORE": "sqlite"}, "STORE must be one of"},
		{"bad timezone", map[string]string{"TIMEZONE": "Mars/Olympus"}, "TIMEZONE"},
		{"bad bool", map[string]string{"MONGO_TRANSACTIONS": "maybe"}, "MONGO_TRANSACTIONS"},
		{"bad duration", map[string]string{"REQUEST_TIMEOUT": "soon"}, "REQUEST_TIMEOUT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load(context.Background())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidateListsEveryProblem(t *testing.T) {
	cfg := defaults()
	cfg.Store = StorePostgres
	cfg.DBMaxConnections = 0

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DSN is required for the postgres store")
	assert.Contains(t, err.Error(), "DB_MAX_CONNECTIONS must be positive")
}
