package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// HTTP server
	Port            string
	ShutdownTimeout time.Duration
	WSOrigins       []string

	// Database
	DBPath string

	LogLevel string

	// Timezone decides which calendar day "today" is.
	Timezone string

	// Bcrypt hash guarding delete routes; empty leaves them open.
	AdminPasswordHash string
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first; variables already set take precedence.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{
		Port:              getEnv("CHORES_PORT", "8080"),
		ShutdownTimeout:   getEnvDuration("CHORES_SHUTDOWN_TIMEOUT", 10*time.Second),
		WSOrigins:         getEnvList("CHORES_WS_ORIGINS"),
		DBPath:            getEnv("CHORES_DB_PATH", "choretracker.db"),
		LogLevel:          getEnv("CHORES_LOG_LEVEL", "info"),
		Timezone:          getEnv("CHORES_TIMEZONE", "Local"),
		AdminPasswordHash: getEnv("CHORES_ADMIN_PASSWORD_HASH", ""),
	}
	return cfg, nil
}

// Validate returns every configuration problem at once.
func (c *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if strings.TrimSpace(c.DBPath) == "" {
		problems = append(problems, "database path cannot be empty")
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		problems = append(problems, fmt.Sprintf("invalid log level '%s': must be one of debug, info, warn, error", c.LogLevel))
	}

	if _, err := time.LoadLocation(c.Timezone); err != nil {
		problems = append(problems, fmt.Sprintf("invalid timezone '%s': %v", c.Timezone, err))
	}

	if c.AdminPasswordHash != "" && !strings.HasPrefix(c.AdminPasswordHash, "$2") {
		problems = append(problems, "admin password hash must be a bcrypt hash (see 'choretracker hash-password')")
	}

	if c.ShutdownTimeout <= 0 {
		problems = append(problems, fmt.Sprintf("invalid shutdown timeout %v: must be positive", c.ShutdownTimeout))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}
	return nil
}

// Location returns the configured timezone, falling back to time.Local.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

func (c *Config) Addr() string {
	return ":" + c.Port
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
