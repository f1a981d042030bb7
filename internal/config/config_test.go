package config

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func resetFlagsAndArgs() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	os.Args = []string{"cmd"}
}

func setEnv(t *testing.T) {
	t.Setenv("RUN_ADDRESS", "localhost:9000")
	t.Setenv("STORE_ADDRESS", "sheets.example.com")
	t.Setenv("SPREADSHEET_ID", "sheet-123")
	t.Setenv("STORE_TOKEN", "token-abc")
	t.Setenv("WEBHOOK_URL", "https://discord.com/api/webhooks/1/x")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("LOG_LVL", "debug")
	t.Setenv("CACHE_REFRESH", "5m")
	t.Setenv("CACHE_INACTIVITY", "10m")
}

func TestNew(t *testing.T) {
	resetFlagsAndArgs()
	setEnv(t)
	os.Args = []string{
		"cmd",
		"-a", "localhost:8080",
		"-s", "https://sheets.other.com",
		"-i", "sheet-456",
		"-l", "error",
	}
	cfg := New()

	assert.Equal(t, "localhost:8080", cfg.Address)
	assert.Equal(t, "https://sheets.other.com", cfg.StoreAddress)
	assert.Equal(t, "sheet-456", cfg.SpreadsheetID)
	assert.Equal(t, "token-abc", cfg.StoreToken)
	assert.Equal(t, "error", cfg.LogLvl)
	assert.Equal(t, 5*time.Minute, cfg.CacheRefresh)
	assert.Equal(t, 10*time.Minute, cfg.CacheInactivity)
}

func TestStoreAddressDefaultProtocol(t *testing.T) {
	resetFlagsAndArgs()
	setEnv(t)

	t.Setenv("STORE_ADDRESS", "sheets.example.com")

	cfg := New()

	assert.Equal(t, "https://sheets.example.com", cfg.StoreAddress)
	assert.Equal(t, "localhost:9000", cfg.Address)
}

func TestDefaults(t *testing.T) {
	resetFlagsAndArgs()

	cfg := New()

	assert.Equal(t, "localhost:8080", cfg.Address)
	assert.Equal(t, "https://sheets.googleapis.com", cfg.StoreAddress)
	assert.Equal(t, "info", cfg.LogLvl)
	assert.Equal(t, 15*time.Minute, cfg.CacheRefresh)
	assert.Equal(t, 30*time.Minute, cfg.CacheInactivity)
}
