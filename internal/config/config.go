package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	AppEnv                string
	LogLevel              slog.Level
	ApiServicePort        string
	PostgreSQLHost        string
	PostgreSQLPort        int64
	PostgreSQLUser        string
	PostgreSQLPassword    string
	PostgreSQLDatabase    string
	JWTSecret             string
	AccessTokenExpiration int64
	CORSAllowedOrigins    []string
}

func LoadConfig() *Config {
	return &Config{
		AppEnv:                getEnv("APP_ENV", "development"),                 // Default development
		LogLevel:              getLogLevel(),                                    // Default INFO
		ApiServicePort:        getEnv("API_SERVICE_PORT", "8080"),               // Default 8080
		PostgreSQLHost:        getEnv("POSTGRESQL_HOST", "db"),                  // Default db
		PostgreSQLPort:        getEnvAsInt64("POSTGRESQL_PORT", 5432),           // Default 5432
		PostgreSQLUser:        getEnv("POSTGRESQL_USER", "accountd_user"),       // Default user
		PostgreSQLPassword:    getEnv("POSTGRESQL_PASSWORD", "accountd_pass"),   // Default password
		PostgreSQLDatabase:    getEnv("POSTGRESQL_DATABASE", "accountd_db"),     // Default database name
		JWTSecret:             getEnv("JWT_SECRET", ""),                         // Empty means a random per-process key
		AccessTokenExpiration: getEnvAsInt64("ACCESS_TOKEN_EXPIRATION", 1800),   // Default 30 minutes
		CORSAllowedOrigins:    getCORSAllowedOrigins(),                          // Default localhost origins
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt64(key string, fallback int64) int64 {
	if valueStr, exists := os.LookupEnv(key); exists {
		if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
			return value
		}
	}
	return fallback
}

func getLogLevel() slog.Level {
	levelStr := getEnv("LOG_LEVEL", "INFO")

	switch strings.ToUpper(levelStr) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getCORSAllowedOrigins() []string {
	raw := getEnv("CORS_ALLOWED_ORIGINS",
		"http://localhost,http://localhost:8000,http://127.0.0.1,http://127.0.0.1:8000")

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
