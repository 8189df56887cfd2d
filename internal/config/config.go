package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	AppEnv             string
	LogLevel           slog.Level
	HTTPPort           string
	PublicBaseURL      string
	PostgreSQLHost     string
	PostgreSQLPort     int64
	PostgreSQLUser     string
	PostgreSQLPassword string
	PostgreSQLDatabase string
	JWTSecret          string
	JWTIssuer          string
	JWTAudience        string
	JWTExpireDays      int64
	SMTPHost           string
	SMTPPort           int64
	SMTPUsername       string
	SMTPPassword       string
	SMTPFrom           string
	UploadDir          string
	MaxUploadSize      int64
	SeedAdminEmail     string
	SeedAdminPassword  string
	SeedAdminFullName  string
}

func LoadConfig() *Config {
	return &Config{
		AppEnv:             getEnv("APP_ENV", "development"),                   // Default development
		LogLevel:           getLogLevel(),                                      // Default INFO
		HTTPPort:           getEnv("HTTP_PORT", "8080"),                        // Default 8080
		PublicBaseURL:      getEnv("PUBLIC_BASE_URL", "http://localhost:8080"), // Used in confirmation links
		PostgreSQLHost:     getEnv("POSTGRESQL_HOST", "db"),                    // Default db
		PostgreSQLPort:     getEnvAsInt64("POSTGRESQL_PORT", 5432),             // Default 5432
		PostgreSQLUser:     getEnv("POSTGRESQL_USER", "catalog_user"),          // Default user
		PostgreSQLPassword: getEnv("POSTGRESQL_PASSWORD", "catalog_password"),  // Default password
		PostgreSQLDatabase: getEnv("POSTGRESQL_DATABASE", "catalog_db"),        // Default database name
		JWTSecret:          getEnv("JWT_SECRET", "catalog_secret"),             // Default secret key
		JWTIssuer:          getEnv("JWT_ISSUER", "ProductCatalogApp"),          // Token issuer claim
		JWTAudience:        getEnv("JWT_AUDIENCE", "ProductCatalogAppUsers"),   // Token audience claim
		JWTExpireDays:      getEnvAsInt64("JWT_EXPIRE_DAYS", 7),                // Default 7 days
		SMTPHost:           getEnv("SMTP_HOST", "localhost"),                   // Default localhost
		SMTPPort:           getEnvAsInt64("SMTP_PORT", 587),                    // Default 587
		SMTPUsername:       getEnv("SMTP_USERNAME", ""),                        // Empty disables SMTP auth
		SMTPPassword:       getEnv("SMTP_PASSWORD", ""),                        // Default empty
		SMTPFrom:           getEnv("SMTP_FROM", "no-reply@productcatalog.dev"), // Sender address
		UploadDir:          getEnv("UPLOAD_DIR", "./uploads"),                  // Profile picture root
		MaxUploadSize:      getEnvAsInt64("MAX_UPLOAD_SIZE", 5*1024*1024),      // Default 5 MB
		SeedAdminEmail:     getEnv("SEED_ADMIN_EMAIL", "admin@productcatalog.dev"),
		SeedAdminPassword:  getEnv("SEED_ADMIN_PASSWORD", "Admin@123"),
		SeedAdminFullName:  getEnv("SEED_ADMIN_FULL_NAME", "Administrator"),
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
