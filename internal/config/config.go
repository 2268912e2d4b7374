// Package config reads configuration from a config file and environment
// variables and validates everything the application can't run without.
package config

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/spf13/viper"

	"moviecatalog/internal/pkg/jwt"
)

var validLogLevels = []string{"debug", "info", "warn", "error", "fatal"}

type Config struct {
	LogLevel    string `mapstructure:"log_level"`
	Port        int    `mapstructure:"port"`
	DatabaseURL string `mapstructure:"database_url"`

	JWTSecret   string `mapstructure:"jwt_secret"`
	JWTExpiryMS int64  `mapstructure:"jwt_expiry_ms"`

	StorageRoot  string `mapstructure:"storage_root"`
	MaxImageMiB  int64  `mapstructure:"max_image_mib"`
	MaxVideoMiB  int64  `mapstructure:"max_video_mib"`
}

// TokenTTL converts the configured expiry to a duration.
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.JWTExpiryMS) * time.Millisecond
}

// MaxImageBytes is the image upload ceiling in bytes.
func (c *Config) MaxImageBytes() int64 { return c.MaxImageMiB << 20 }

// MaxVideoBytes is the video upload ceiling in bytes.
func (c *Config) MaxVideoBytes() int64 { return c.MaxVideoMiB << 20 }

// Load reads config.toml (optional) and environment variables, applies
// defaults and returns an error for anything critically wrong, including a
// signing secret shorter than the HS256 minimum.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AutomaticEnv()

	v.BindEnv("log_level", "APP_LOG_LEVEL")
	v.BindEnv("port", "APP_PORT")
	v.BindEnv("database_url", "DATABASE_URL")
	v.BindEnv("jwt_secret", "JWT_SECRET")
	v.BindEnv("jwt_expiry_ms", "JWT_EXPIRY_MS")
	v.BindEnv("storage_root", "STORAGE_ROOT")
	v.BindEnv("max_image_mib", "STORAGE_MAX_IMAGE_MIB")
	v.BindEnv("max_video_mib", "STORAGE_MAX_VIDEO_MIB")

	v.SetDefault("log_level", "info")
	v.SetDefault("port", 8080)
	v.SetDefault("database_url", "movies.db")
	v.SetDefault("jwt_expiry_ms", int64(24*time.Hour/time.Millisecond))
	v.SetDefault("storage_root", "uploads")
	v.SetDefault("max_image_mib", 2)
	v.SetDefault("max_video_mib", 2000)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file, %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config, %w", err)
	}

	if !slices.Contains(validLogLevels, cfg.LogLevel) {
		return nil, errors.New("invalid log level provided")
	}
	if cfg.Port <= 0 {
		return nil, errors.New("invalid port provided")
	}
	if len(cfg.JWTSecret) < jwt.MinSecretLen {
		return nil, fmt.Errorf("jwt_secret must be at least %d bytes, got %d", jwt.MinSecretLen, len(cfg.JWTSecret))
	}
	if cfg.JWTExpiryMS <= 0 {
		return nil, errors.New("jwt_expiry_ms must be bigger than 0")
	}
	if cfg.StorageRoot == "" {
		return nil, errors.New("storage_root can't be empty")
	}
	if cfg.MaxImageMiB <= 0 || cfg.MaxVideoMiB <= 0 {
		return nil, errors.New("upload size ceilings must be bigger than 0")
	}

	return &cfg, nil
}
