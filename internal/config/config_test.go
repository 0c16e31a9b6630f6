package config

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const baseYAML = `
env: production
app:
  timeout: 5s
  user_id: owner
bot:
  token: file-token
  owner_id: 42
db:
  driver: %s
  dsn: %s
  cfg:
    max_open_conns: 2
    max_idle_conns: 1
redis:
  enabled: false
catalog:
  dir: data/questions
persist:
  buffer: 8
  flush_timeout: 2s
`

func writeConfig(t *testing.T, driver, dsn string) string {
	t.Helper()
	dir := t.TempDir()
	body := []byte(fmt.Sprintf(baseYAML, driver, dsn))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), body, 0o644))
	return dir
}

func TestLoad(t *testing.T) {
	dir := writeConfig(t, "sqlite3", "state.db")

	cfg, err := load(dir, "test")
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "file-token", cfg.Bot.Token)
	assert.Equal(t, int64(42), cfg.Bot.OwnerID)
	assert.Equal(t, "sqlite3", cfg.DB.Driver)
	assert.Equal(t, 5*time.Second, cfg.App.Timeout)
	assert.Equal(t, 2*time.Second, cfg.Persist.FlushTimeout)
	require.NoError(t, cfg.ValidateBot())
}

func TestLoad_EnvOverrides(t *testing.T) {
	dir := writeConfig(t, "sqlite3", "state.db")
	t.Setenv("BOT_TOKEN", "env-token")
	t.Setenv("BOT_OWNER_ID", "7")
	t.Setenv("CATALOG_DIR", "/srv/questions")

	cfg, err := load(dir, "test")
	require.NoError(t, err)
	assert.Equal(t, "env-token", cfg.Bot.Token)
	assert.Equal(t, int64(7), cfg.Bot.OwnerID)
	assert.Equal(t, "/srv/questions", cfg.Catalog.Dir)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		driver  string
		dsn     string
		wantErr string
	}{
		{name: "unknown driver", driver: "mysql", dsn: "x", wantErr: "Tag: oneof"},
		{name: "postgres without host", driver: "postgres", dsn: "", wantErr: "db.dsn or db.conn.host"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeConfig(t, tt.driver, tt.dsn)

			_, err := load(dir, "test")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	_, err := load(t.TempDir(), "missing")
	require.Error(t, err)
}

func TestConfig_ValidateBot(t *testing.T) {
	assert.Error(t, (&Config{}).ValidateBot())
	assert.Error(t, (&Config{Bot: BotConfig{Token: "t"}}).ValidateBot())
	assert.NoError(t, (&Config{Bot: BotConfig{Token: "t", OwnerID: 1}}).ValidateBot())
}
