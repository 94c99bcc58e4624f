package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type HTTPServer struct {
	Port string `mapstructure:"port"`
}

type RateAPI struct {
	BaseURL        string `mapstructure:"base_url"`
	BaseCurrency   string `mapstructure:"base_currency"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

type RateCache struct {
	TTLSeconds int `mapstructure:"ttl_seconds"`
}

type Scheduler struct {
	RefreshIntervalSeconds int `mapstructure:"refresh_interval_seconds"`
}

type Logging struct {
	Level string `mapstructure:"level"`
}

type AppConfig struct {
	HTTPServer HTTPServer `mapstructure:"http_server"`
	RateAPI    RateAPI    `mapstructure:"rate_api"`
	RateCache  RateCache  `mapstructure:"rate_cache"`
	Scheduler  Scheduler  `mapstructure:"scheduler"`
	Logging    Logging    `mapstructure:"logging"`
}

func Init() (*AppConfig, error) {
	var cfg AppConfig

	// Optional .env for local development.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	viper.SetConfigFile("config.yaml")
	viper.SetConfigType("yaml")
	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	viper.SetDefault("http_server.port", "8080")
	viper.SetDefault("rate_api.base_currency", "USD")
	viper.SetDefault("rate_api.timeout_seconds", 5)
	viper.SetDefault("rate_cache.ttl_seconds", 300)
	viper.SetDefault("scheduler.refresh_interval_seconds", 120)
	viper.SetDefault("logging.level", "info")

	_ = viper.BindEnv("http_server.port", "HTTP_PORT")
	_ = viper.BindEnv("rate_api.base_url", "RATE_API_BASE_URL")
	_ = viper.BindEnv("rate_api.base_currency", "RATE_API_BASE_CURRENCY")
	_ = viper.BindEnv("rate_api.timeout_seconds", "RATE_API_TIMEOUT_SECONDS")
	_ = viper.BindEnv("rate_cache.ttl_seconds", "RATE_CACHE_TTL_SECONDS")
	_ = viper.BindEnv("scheduler.refresh_interval_seconds", "RATE_REFRESH_INTERVAL_SECONDS")
	_ = viper.BindEnv("logging.level", "LOG_LEVEL")

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	return &cfg, nil
}
