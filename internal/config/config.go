package config

import (
	"fmt"
	"time"

	coreconfig "github.com/go-core-fx/config"
)

type Config struct {
	BaseURL     string        `koanf:"base_url"`
	Email       string        `koanf:"email"`
	Password    string        `koanf:"password"`
	PageSize    int           `koanf:"page_size"`
	Timeout     time.Duration `koanf:"timeout"`
	SessionFile string        `koanf:"session_file"`
	LogFile     string        `koanf:"log_file"`
	Debug       bool          `koanf:"debug"`
}

func New() (Config, error) {
	cfg := Config{
		BaseURL:  "http://localhost:8000",
		PageSize: 10,
		Timeout:  20 * time.Second,
		LogFile:  "./grocery-admin.log",
		Debug:    false,
	}

	if err := coreconfig.Load(&cfg); err != nil {
		return Config{}, fmt.Errorf("loading config: %w", err)
	}

	return cfg, nil
}
