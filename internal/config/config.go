package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration loaded from environment variables.
type Config struct {
	BotToken       string `envconfig:"BOT_TOKEN" required:"true"`
	WeatherAPIKey  string `envconfig:"WEATHER_API_KEY" required:"true"`
	WeatherBaseURL string `envconfig:"WEATHER_BASE_URL"` // empty = production endpoint

	DBPath string `envconfig:"DB_PATH" default:"./data/weatherwhiz.db"`

	// Daily trigger time in the process's local timezone.
	MorningHour   int `envconfig:"MORNING_HOUR" default:"7"`
	MorningMinute int `envconfig:"MORNING_MINUTE" default:"0"`

	ForecastDays int           `envconfig:"FORECAST_DAYS" default:"3"`
	HTTPTimeout  time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"` // debug|info|warn|error
	HTTPAddr string `envconfig:"HTTP_ADDR" default:":8080"`
}

// Load reads a .env file when present, then environment variables.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return cfg, err
	}
	if cfg.MorningHour < 0 || cfg.MorningHour > 23 {
		return cfg, fmt.Errorf("MORNING_HOUR out of range: %d", cfg.MorningHour)
	}
	if cfg.MorningMinute < 0 || cfg.MorningMinute > 59 {
		return cfg, fmt.Errorf("MORNING_MINUTE out of range: %d", cfg.MorningMinute)
	}
	if cfg.ForecastDays < 1 {
		return cfg, fmt.Errorf("FORECAST_DAYS must be positive: %d", cfg.ForecastDays)
	}
	return cfg, nil
}
