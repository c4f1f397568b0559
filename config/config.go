package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig
	HTTPServer  HTTPServerConfig
	Logger      LoggerConfig

	Assistant AssistantConfig
	Store     StoreConfig
	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// AssistantConfig points at the conversational AI backend.
type AssistantConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// StoreConfig tunes the session stores.
type StoreConfig struct {
	DataDir  string
	MaxItems int
	TrimTo   int
}

type RateLimitConfig struct {
	PerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.Assistant.BaseURL = viper.GetString("assistant.base_url")
	cfg.Assistant.APIKey = viper.GetString("assistant.api_key")
	cfg.Assistant.Timeout = viper.GetDuration("assistant.timeout")
	if apiKey := viper.GetString("assistant_api_key"); apiKey != "" {
		cfg.Assistant.APIKey = apiKey
	}
	if baseURL := viper.GetString("assistant_base_url"); baseURL != "" {
		cfg.Assistant.BaseURL = baseURL
	}

	cfg.Store.DataDir = viper.GetString("store.data_dir")
	cfg.Store.MaxItems = viper.GetInt("store.max_items")
	cfg.Store.TrimTo = viper.GetInt("store.trim_to")

	cfg.RateLimit.PerMin = viper.GetInt("ratelimit.per_min")

	if cfg.Assistant.BaseURL == "" {
		return nil, fmt.Errorf("assistant backend not configured - please set assistant.base_url in config.yaml")
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("assistant.timeout", "30s")
	viper.SetDefault("store.data_dir", "./data")
	viper.SetDefault("store.max_items", 50)
	viper.SetDefault("store.trim_to", 20)
	viper.SetDefault("ratelimit.per_min", 120)
}
