// Package config loads the service settings from the environment.
package config

import (
	"log/slog"
	"net/url"
	"os"
	"strings"
	"time"
)

const (
	DefaultDatabaseURL   = "mongodb://localhost/exercise-track"
	DefaultMongoDatabase = "exercise-track"
	DefaultPort          = "3000"
)

// Config is read once at startup and not modified afterwards.
type Config struct {
	// Database
	DatabaseURL    string
	MongoDatabase  string
	ConnectTimeout time.Duration

	// Server
	Port            string
	ShutdownTimeout time.Duration

	// Logging
	LogLevel slog.Level
}

// Load reads the configuration from the environment. Unset or unparsable
// values fall back to their defaults.
func Load() *Config {
	cfg := &Config{}

	cfg.DatabaseURL = getEnvString("MLAB_URI", getEnvString("DATABASE_URL", DefaultDatabaseURL))
	cfg.MongoDatabase = getEnvString("MONGO_DATABASE", databaseFromURL(cfg.DatabaseURL))
	cfg.ConnectTimeout = getEnvDuration("DB_CONNECT_TIMEOUT", 10*time.Second)
	cfg.Port = getEnvString("PORT", DefaultPort)
	cfg.ShutdownTimeout = getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second)
	cfg.LogLevel = getEnvLevel("LOG_LEVEL", slog.LevelInfo)

	return cfg
}

// databaseFromURL returns the database named in the path of a connection
// string, e.g. exercise-track for mongodb://localhost/exercise-track.
func databaseFromURL(dsn string) string {
	u, err := url.Parse(dsn)
	if err != nil {
		return DefaultMongoDatabase
	}
	if name := strings.Trim(u.Path, "/"); name != "" {
		return name
	}
	return DefaultMongoDatabase
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return defaultVal
	}
	return d
}

func getEnvLevel(key string, defaultVal slog.Level) slog.Level {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(v)); err != nil {
		return defaultVal
	}
	return level
}
