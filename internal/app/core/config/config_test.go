package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoeShih716/go-atm-ledger/pkg/database"
)

func env(vars map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse([]byte("session:\n  secret: test-secret-0123456789\n"), env(nil))
	require.NoError(t, err)

	assert.Equal(t, DriverMemory, cfg.Store.Driver)
	assert.Equal(t, "cas", cfg.Store.WithdrawStrategy)
	assert.Equal(t, 5*time.Second, cfg.Store.OpTimeout)
	assert.Equal(t, ":50051", cfg.Server.GRPCAddr)
	assert.Empty(t, cfg.Server.HTTPAddr)
	assert.Equal(t, "bcrypt", cfg.Security.PINScheme)
	assert.Equal(t, DefaultMaxFailedAttempts, cfg.Security.FailureLimit())
	assert.Equal(t, slog.LevelInfo, cfg.Log.SlogLevel())
}

func TestParseFileAndEnv(t *testing.T) {
	yml := `
store:
  driver: mysql
  withdraw_strategy: lock
  op_timeout: 2s
  database:
    host: db
    port: 3306
    user: atm
    db_name: atm
server:
  grpc_addr: ":6000"
  http_addr: ":8080"
session:
  secret: from-file-0123456789
  ttl: 10m
log:
  level: debug
  format: json
seed:
  - account_number: "1001"
    pin: "1234"
    balance: "100.00"
`
	cfg, err := Parse([]byte(yml), env(map[string]string{
		"ATM_DB_PASSWORD":    "s3cret",
		"ATM_DB_PORT":        "3307",
		"ATM_SESSION_SECRET": "from-env-0123456789",
		"ATM_OP_TIMEOUT":     "750ms",
	}))
	require.NoError(t, err)

	assert.Equal(t, database.DriverMySQL, cfg.Store.Database.Driver)
	assert.Equal(t, "lock", cfg.Store.WithdrawStrategy)
	assert.Equal(t, 750*time.Millisecond, cfg.Store.OpTimeout)
	assert.Equal(t, "s3cret", cfg.Store.Database.Password)
	assert.Equal(t, 3307, cfg.Store.Database.Port)
	assert.Equal(t, "from-env-0123456789", cfg.Session.Secret)
	assert.Equal(t, 10*time.Minute, cfg.Session.TTL)
	assert.Equal(t, ":8080", cfg.Server.HTTPAddr)
	assert.Equal(t, slog.LevelDebug, cfg.Log.SlogLevel())
	require.Len(t, cfg.Seed, 1)
	assert.Equal(t, "100.00", cfg.Seed[0].Balance)
}

func TestParseFailureLimit(t *testing.T) {
	cfg, err := Parse([]byte("session:\n  secret: x\nsecurity:\n  max_failed_attempts: 0\n"), env(nil))
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Security.FailureLimit())

	cfg, err = Parse([]byte("session:\n  secret: x\nsecurity:\n  max_failed_attempts: -1\n"), env(nil))
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Security.FailureLimit())

	cfg, err = Parse([]byte("session:\n  secret: x\nsecurity:\n  max_failed_attempts: 5\n"), env(map[string]string{
		"ATM_MAX_FAILED_ATTEMPTS": "0",
	}))
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Security.FailureLimit())

	_, err = Parse([]byte("session:\n  secret: x\n"), env(map[string]string{"ATM_MAX_FAILED_ATTEMPTS": "many"}))
	assert.ErrorContains(t, err, "ATM_MAX_FAILED_ATTEMPTS")
}

func TestParseLMAXDriver(t *testing.T) {
	cfg, err := Parse([]byte("store:\n  driver: lmax\n  wal_path: lmax.log\nsession:\n  secret: x\n"), env(nil))
	require.NoError(t, err)
	assert.True(t, cfg.Store.InMemory())
	assert.Empty(t, cfg.Store.Database.Driver)
	assert.Equal(t, "lmax.log", cfg.Store.WALPath)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte("store:\n  driver: oracle\nsession:\n  secret: x\n"), env(nil))
	assert.ErrorContains(t, err, "unsupported store driver")

	_, err = Parse([]byte("store:\n  driver: memory\n"), env(nil))
	assert.ErrorContains(t, err, "session.secret")

	_, err = Parse([]byte("session:\n  secret: x\n"), env(map[string]string{"ATM_DB_PORT": "abc"}))
	assert.ErrorContains(t, err, "ATM_DB_PORT")

	_, err = Parse([]byte("session: ["), env(nil))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("session:\n  secret: file-secret-0123456789\n"), 0o600))
	t.Setenv("ATM_HTTP_ADDR", ":9090")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.HTTPAddr)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
