package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"foodtrace/internal/config"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, "environment: production\n"))
	require.NoError(t, err)

	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, ":8080", cfg.HTTP.Addr)
	require.Equal(t, []string{"http://localhost:3000", "http://127.0.0.1:3000"}, cfg.HTTP.AllowedOrigins)
	require.Equal(t, 30*time.Minute, cfg.JWT.TTL)
	require.Equal(t, 100, cfg.Worker.MaxWorkers)
	require.Equal(t, "foodtrace.recalls", cfg.Kafka.RecallTopic)
	require.Empty(t, cfg.Kafka.Brokers)
	require.Equal(t, "foodtrace", cfg.Database.DatabaseName)
}

func TestLoad_FileAndEnv(t *testing.T) {
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("JWT_TTL", "1h")

	cfg, err := config.Load(writeConfig(t, `
http:
  addr: ":9000"
database:
  name: trace
worker:
  recallNoticeMaxAttempts: 3
`))
	require.NoError(t, err)

	require.Equal(t, ":9000", cfg.HTTP.Addr)
	require.Equal(t, "trace", cfg.Database.DatabaseName)
	require.Equal(t, 3, cfg.Worker.RecallNoticeMaxAttempts)
	require.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	require.Equal(t, time.Hour, cfg.JWT.TTL)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
}
