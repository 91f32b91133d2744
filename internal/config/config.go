// Package config loads relay settings from the environment and an optional YAML file.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds every setting the relay service and functions read
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Vendor    VendorConfig    `mapstructure:"vendor"`
	Analytics AnalyticsConfig `mapstructure:"analytics"`
	Redis     RedisConfig     `mapstructure:"redis"`
	PDF       PDFConfig       `mapstructure:"pdf"`
	Log       LogConfig       `mapstructure:"log"`
}

type ServerConfig struct {
	Name string `mapstructure:"name"`
	Port int    `mapstructure:"port"`
}

type VendorConfig struct {
	BaseURL  string        `mapstructure:"base_url"`
	Username string        `mapstructure:"username"`
	Password string        `mapstructure:"password"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

type AnalyticsConfig struct {
	MeasurementID string `mapstructure:"measurement_id"`
	APISecret     string `mapstructure:"api_secret"`
	Endpoint      string `mapstructure:"endpoint"`
}

// Enabled reports whether both GA credentials are present
func (a AnalyticsConfig) Enabled() bool {
	return a.MeasurementID != "" && a.APISecret != ""
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type PDFConfig struct {
	MaxConcurrent   int           `mapstructure:"max_concurrent"`
	DownloadTimeout time.Duration `mapstructure:"download_timeout"`
	MaxBytes        int64         `mapstructure:"max_bytes"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// env var name for each key, matching the names the deployed functions use
var envBindings = map[string]string{
	"server.port":              "PORT",
	"vendor.base_url":          "VENDOR_API_URL",
	"vendor.username":          "API_USERNAME",
	"vendor.password":          "API_PASSWORD",
	"vendor.timeout":           "HTTP_TIMEOUT",
	"analytics.measurement_id": "GA_MEASUREMENT_ID",
	"analytics.api_secret":     "GA_API_SECRET",
	"redis.addr":               "REDIS_ADDR",
	"redis.password":           "REDIS_PASSWORD",
	"redis.db":                 "REDIS_DB",
	"pdf.max_concurrent":       "PDF_MAX_CONCURRENT",
	"pdf.max_bytes":            "PDF_MAX_BYTES",
	"log.level":                "LOG_LEVEL",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.name", "order-relay")
	v.SetDefault("server.port", 8080)
	v.SetDefault("vendor.base_url", "https://www.crookedmonkey.com")
	v.SetDefault("vendor.timeout", 10*time.Second)
	v.SetDefault("analytics.endpoint", "https://www.google-analytics.com/mp/collect")
	v.SetDefault("redis.db", 0)
	v.SetDefault("pdf.max_concurrent", 4)
	v.SetDefault("pdf.download_timeout", 30*time.Second)
	v.SetDefault("pdf.max_bytes", int64(50<<20))
	v.SetDefault("log.level", "info")
}

// Load reads configuration. configPath may be empty, in which case only
// defaults and environment variables apply.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// MustLoad is Load for entry points that cannot start without configuration
func MustLoad(configPath string) *Config {
	cfg, err := Load(configPath)
	if err != nil {
		panic(err)
	}
	return cfg
}
