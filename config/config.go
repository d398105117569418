package config

import (
	"net/url"
	"os"
	"time"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/spf13/viper"
)

type Config struct {
	GeneralVersion         string `mapstructure:"GENERAL_VERSION"`
	Environment            string `mapstructure:"ENVIRONMENT"`
	APIBaseURL             string `mapstructure:"API_BASE_URL"`
	APITimeoutSeconds      int    `mapstructure:"API_TIMEOUT_SECONDS"`
	APIUsername            string `mapstructure:"API_USERNAME"`
	APIPassword            string `mapstructure:"API_PASSWORD"`
	DownloadDir            string `mapstructure:"DOWNLOAD_DIR"`
	RefreshIntervalSeconds int    `mapstructure:"REFRESH_INTERVAL_SECONDS"`
	EventsCacheAddress     string `mapstructure:"EVENTS_CACHE_ADDRESS"`
	EventsCachePort        int    `mapstructure:"EVENTS_CACHE_PORT"`
}

var ConfigInstance Config

var envVars = []string{
	"GENERAL_VERSION", "ENVIRONMENT",
	"API_BASE_URL", "API_TIMEOUT_SECONDS", "API_USERNAME", "API_PASSWORD",
	"DOWNLOAD_DIR", "REFRESH_INTERVAL_SECONDS",
	"EVENTS_CACHE_ADDRESS", "EVENTS_CACHE_PORT",
}

var defaults = map[string]any{
	"GENERAL_VERSION":          "dev",
	"ENVIRONMENT":              "production",
	"API_BASE_URL":             "http://localhost:5000/api",
	"API_TIMEOUT_SECONDS":      0,
	"DOWNLOAD_DIR":             ".",
	"REFRESH_INTERVAL_SECONDS": 0,
	"EVENTS_CACHE_PORT":        0,
}

func New() (Config, error) {
	log := logger.New("config").Function("New")
	log.Debug("Initializing config")

	v := viper.New()
	v.AutomaticEnv()

	for _, env := range envVars {
		if err := v.BindEnv(env); err != nil {
			log.Warn("Failed to bind environment variable", "env", env, "error", err)
		}
	}

	if _, ok := os.LookupEnv("API_BASE_URL"); ok {
		log.Debug("Environment variables detected, skipping file loading")
	} else {
		v.SetConfigFile(".env")
		v.SetConfigType("env")

		if err := v.ReadInConfig(); err != nil {
			log.Debug("Could not find .env file", "error", err)
		} else {
			log.Info("Loaded .env file")
		}

		v.SetConfigFile(".env.local")
		if err := v.MergeInConfig(); err != nil {
			log.Debug("No .env.local file found", "error", err)
		} else {
			log.Info("Loaded .env.local overrides")
		}
	}

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return Config{}, log.Err("Fatal error: could not unmarshal config", err)
	}

	if err := validateConfig(config, log); err != nil {
		return Config{}, err
	}

	log.Debug("Successfully initialized config", "apiBaseURL", config.APIBaseURL)
	return ConfigInstance, nil
}

func GetConfig() Config {
	return ConfigInstance
}

// Timeout is zero when no timeout beyond the transport defaults applies.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.APITimeoutSeconds) * time.Second
}

func (c Config) RefreshInterval() time.Duration {
	return time.Duration(c.RefreshIntervalSeconds) * time.Second
}

func (c Config) EventsCacheEnabled() bool {
	return c.EventsCacheAddress != ""
}

func (c Config) HasCredentials() bool {
	return c.APIUsername != "" && c.APIPassword != ""
}

func validateConfig(config Config, log logger.Logger) error {
	parsed, err := url.Parse(config.APIBaseURL)
	if err != nil {
		return log.Err("Fatal error: invalid API_BASE_URL", err, "url", config.APIBaseURL)
	}
	if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return log.Error(
			"Fatal error: API_BASE_URL must be an absolute http(s) URL",
			"url", config.APIBaseURL,
		)
	}

	if config.APITimeoutSeconds < 0 {
		return log.Error("Fatal error: invalid API timeout", "seconds", config.APITimeoutSeconds)
	}

	if config.RefreshIntervalSeconds < 0 {
		return log.Error(
			"Fatal error: invalid refresh interval",
			"seconds", config.RefreshIntervalSeconds,
		)
	}

	if config.EventsCacheAddress != "" && config.EventsCachePort <= 0 {
		return log.Error(
			"Fatal error: EVENTS_CACHE_PORT required when EVENTS_CACHE_ADDRESS is set",
			"port", config.EventsCachePort,
		)
	}

	ConfigInstance = config
	return nil
}
