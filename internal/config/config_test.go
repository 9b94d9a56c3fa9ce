package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openpurse/go-openpurse/internal/common"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "openpurse", cfg.App.Name)
	assert.Equal(t, "local", cfg.App.Env)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, "schemas", cfg.SchemaDir)
	assert.Equal(t, "openpurse-default-salt", cfg.Anonymizer.Salt)
	assert.Empty(t, cfg.Postgres.Write.DSN())
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("OPENPURSE_APP_ENV", "dev")
	t.Setenv("OPENPURSE_APP_LOG_LEVEL", "debug")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "dev", cfg.App.Env)
	assert.Equal(t, "debug", cfg.App.LogLevel)
}

func TestLoadRejectsUnknownEnvironment(t *testing.T) {
	t.Setenv("OPENPURSE_APP_ENV", "staging")

	_, err := Load("")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrConfigInvalid)
	assert.Contains(t, err.Error(), "App.Env")
}

func TestLoadConfigFile(t *testing.T) {
	content := `
app:
  name: transcoder
  env: uat
  log_level: warn
schema_dir: /etc/openpurse/schemas
postgres:
  write:
    db_host: db.internal
    db_port: "5432"
    db_user: openpurse
    db_pass: secret
    db_name: payments
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "transcoder", cfg.App.Name)
	assert.Equal(t, "uat", cfg.App.Env)
	assert.Equal(t, "/etc/openpurse/schemas", cfg.SchemaDir)
	assert.Equal(t,
		"host=db.internal port=5432 user=openpurse password=secret dbname=payments sslmode=disable",
		cfg.Postgres.Write.DSN())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrConfigInvalid)
}

func TestDatabaseDSN(t *testing.T) {
	db := Database{Host: "localhost", Port: "5432", User: "u", Pass: "p", Name: "d", SSLMode: "require"}
	assert.Equal(t, "host=localhost port=5432 user=u password=p dbname=d sslmode=require", db.DSN())

	assert.Empty(t, Database{}.DSN())
}
