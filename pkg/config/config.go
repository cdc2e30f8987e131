package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Logger    LoggerConfig
	Ledger    LedgerConfig
	Statement StatementConfig
}

type LoggerConfig struct {
	Level  string
	Format string
}

type ServerConfig struct {
	Port             string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	BodyLimit        int
	CORSAllowOrigins string
}

type LedgerConfig struct {
	TimeZone string
	Location *time.Location
}

type StatementConfig struct {
	MaxUploadBytes int64
}

const bodyLimitHeadroom = 1 << 20

// maxUploadLimitMB keeps the body limit within a 32-bit int.
const maxUploadLimitMB = 1024

func Load() (*Config, error) {
	// .env is optional; the first one found wins
	envFiles := []string{".env", "../.env", "../../.env"}
	for _, envFile := range envFiles {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}

	readTimeout, err := getEnvInt("SERVER_READ_TIMEOUT", 30)
	if err != nil {
		return nil, err
	}
	writeTimeout, err := getEnvInt("SERVER_WRITE_TIMEOUT", 30)
	if err != nil {
		return nil, err
	}
	maxUploadMB, err := getEnvInt("STATEMENT_MAX_UPLOAD_MB", 20)
	if err != nil {
		return nil, err
	}
	if maxUploadMB <= 0 {
		return nil, fmt.Errorf("STATEMENT_MAX_UPLOAD_MB must be positive, got %d", maxUploadMB)
	}
	if maxUploadMB > maxUploadLimitMB {
		return nil, fmt.Errorf("STATEMENT_MAX_UPLOAD_MB must be at most %d, got %d", maxUploadLimitMB, maxUploadMB)
	}

	tz := getEnv("LEDGER_TIMEZONE", "Local")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("invalid LEDGER_TIMEZONE %q: %w", tz, err)
	}

	maxUploadBytes := int64(maxUploadMB) << 20

	return &Config{
		Server: ServerConfig{
			Port:             getEnv("SERVER_PORT", "8080"),
			ReadTimeout:      time.Duration(readTimeout) * time.Second,
			WriteTimeout:     time.Duration(writeTimeout) * time.Second,
			BodyLimit:        int(maxUploadBytes) + bodyLimitHeadroom,
			CORSAllowOrigins: getEnv("CORS_ALLOW_ORIGINS", "*"),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Ledger: LedgerConfig{
			TimeZone: tz,
			Location: loc,
		},
		Statement: StatementConfig{
			MaxUploadBytes: maxUploadBytes,
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return n, nil
}
