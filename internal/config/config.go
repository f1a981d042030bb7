package config

import (
	"flag"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	Address         string        `env:"RUN_ADDRESS"      envDefault:"localhost:8080"`
	StoreAddress    string        `env:"STORE_ADDRESS"    envDefault:"sheets.googleapis.com"`
	SpreadsheetID   string        `env:"SPREADSHEET_ID"   envDefault:""`
	StoreToken      string        `env:"STORE_TOKEN"      envDefault:""`
	WebhookURL      string        `env:"WEBHOOK_URL"      envDefault:""`
	JWTSecret       string        `env:"JWT_SECRET"       envDefault:""`
	LogLvl          string        `env:"LOG_LVL"          envDefault:"info"`
	CacheRefresh    time.Duration `env:"CACHE_REFRESH"    envDefault:"15m"`
	CacheInactivity time.Duration `env:"CACHE_INACTIVITY" envDefault:"30m"`
}

func New() *Config {
	cfg := &Config{}

	env.Parse(cfg)

	flag.StringVar(&cfg.Address, "a", cfg.Address, "address and port to run server")
	flag.StringVar(&cfg.StoreAddress, "s", cfg.StoreAddress, "record store address")
	flag.StringVar(&cfg.SpreadsheetID, "i", cfg.SpreadsheetID, "spreadsheet ID backing the record store")
	flag.StringVar(&cfg.WebhookURL, "w", cfg.WebhookURL, "notification webhook URL")
	flag.StringVar(&cfg.LogLvl, "l", cfg.LogLvl, "log level")
	flag.Parse()

	if !strings.HasPrefix(cfg.StoreAddress, "http://") && !strings.HasPrefix(cfg.StoreAddress, "https://") {
		cfg.StoreAddress = "https://" + cfg.StoreAddress
	}

	return cfg
}
