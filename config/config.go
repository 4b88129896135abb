package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds everything tunable from the environment.
type Config struct {
	Environment string        `mapstructure:"ENVIRONMENT"`
	ServerPort  string        `mapstructure:"SERVER_PORT"`
	LogDir      string        `mapstructure:"LOG_DIR"`
	MetricTTL   time.Duration `mapstructure:"METRIC_CACHE_TTL"`

	// SimulateLatency keeps the artificial per-operation delays the
	// frontend was built against. Off, the services respond immediately.
	SimulateLatency bool `mapstructure:"SIMULATE_LATENCY"`
}

// LoadConfig reads .env (if present) into the environment, then binds
// the known keys with defaults.
func LoadConfig(path string) (Config, error) {
	_ = godotenv.Load(path + "/.env") // missing .env is fine; env vars still apply

	v := viper.New()
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("LOG_DIR", "logs")
	v.SetDefault("METRIC_CACHE_TTL", "5m")
	v.SetDefault("SIMULATE_LATENCY", true)
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
