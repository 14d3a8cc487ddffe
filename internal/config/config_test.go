package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "postgres", cfg.DB.Driver)
	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Equal(t, 24*7, cfg.Session.TTLHours)
}

func TestLoadFileThenEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
port: "9000"
db:
  driver: sqlite
  path: /tmp/test.db
llm:
  provider: gemini
session:
  secret: file-secret
  ttl_hours: 48
`), 0o600))

	t.Setenv("API_PORT", "9100")
	t.Setenv("SESSION_TTL_HOURS", "12")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9100", cfg.Port, "env wins over file")
	assert.Equal(t, "sqlite", cfg.DB.Driver)
	assert.Equal(t, "gemini", cfg.LLM.Provider)
	assert.Equal(t, "file-secret", cfg.Session.Secret)
	assert.Equal(t, 12, cfg.Session.TTLHours)
}

func TestLoadMissingFileIsFine(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")

	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.NoError(t, err)
}

func TestLoadRequiresSessionSecret(t *testing.T) {
	t.Setenv("SESSION_SECRET", "")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SESSION_SECRET")
}

func TestLoadRejectsUnknownProvider(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")
	t.Setenv("LLM_PROVIDER", "clippy")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "clippy")
}

func TestDSN(t *testing.T) {
	pg := DBConfig{Driver: "postgres", Host: "db", Port: "5432", User: "app", Password: "pw", Name: "itinerary"}
	assert.Equal(t, "host=db port=5432 user=app password=pw dbname=itinerary sslmode=disable", pg.DSN())

	lite := DBConfig{Driver: "sqlite", Path: "/var/data/app.db"}
	assert.Equal(t, "/var/data/app.db", lite.DSN())
}
