// Package config loads application configuration from the environment and
// builds the process logger.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	defaultDBPath = "./estimator.db"
	defaultPort   = "8080"
)

// Config holds application configuration sourced from environment variables.
type Config struct {
	Port       string
	DBPath     string
	CatalogDir string
	LogLevel   string
	LogFormat  string
	AppEnv     string
}

// Load reads environment variables and returns a populated Config.
// A local .env file is loaded best-effort first; production should use real
// env injection and ships no such file.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		Port:       os.Getenv("PORT"),
		DBPath:     os.Getenv("DB_PATH"),
		CatalogDir: os.Getenv("CATALOG_DIR"),
		LogLevel:   os.Getenv("LOG_LEVEL"),
		LogFormat:  os.Getenv("LOG_FORMAT"),
		AppEnv:     os.Getenv("APP_ENV"),
	}

	if cfg.Port == "" {
		cfg.Port = defaultPort
	}
	if cfg.DBPath == "" {
		cfg.DBPath = defaultDBPath
	}

	return cfg
}

// IsDev reports whether the process runs in a development environment.
// Migrations and the demo seed only run in dev.
func (c Config) IsDev() bool {
	return c.AppEnv == "" || c.AppEnv == "dev" || c.AppEnv == "development"
}

// NewLogger builds a zap logger from the configured level and format.
// Format "console" gives the development encoder; "json" (the default) the
// production one.
func (c Config) NewLogger() (*zap.Logger, error) {
	level := c.LogLevel
	if level == "" {
		level = "info"
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	format := c.LogFormat
	if format == "" {
		format = "json"
	}

	var zapConfig zap.Config
	switch format {
	case "console":
		zapConfig = zap.NewDevelopmentConfig()
	case "json":
		zapConfig = zap.NewProductionConfig()
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}
	zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)

	return zapConfig.Build()
}
