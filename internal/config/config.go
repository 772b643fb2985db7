package config

import (
	"os"      // For environment variables
	"strconv" // For string to int conversion

	"github.com/joho/godotenv" // For loading .env files
)

// Config holds the application configuration
type Config struct {
	AppPort       string // Application port
	DBDriver      string // Database driver: "sqlite" (default) or "mysql"
	SQLitePath    string // SQLite database file path
	DBUser        string // Database user (mysql)
	DBPassword    string // Database password (mysql)
	DBHost        string // Database host (mysql)
	DBPort        string // Database port (mysql)
	DBName        string // Database name (mysql)
	JWTSecret     string // JWT signing secret
	TokenTTLHours int    // Token lifetime; 24h single-node default, hosted deployments set 720
	UploadDir     string // Directory for uploaded chart screenshots
	IsProd        bool   // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	cfg := &Config{
		AppPort:       getEnv("APP_PORT", "3000"),
		DBDriver:      getEnv("DB_DRIVER", "sqlite"),
		SQLitePath:    getEnv("SQLITE_PATH", "database.sqlite"),
		DBUser:        os.Getenv("DB_USER"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBHost:        os.Getenv("DB_HOST"),
		DBPort:        os.Getenv("DB_PORT"),
		DBName:        os.Getenv("DB_NAME"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		TokenTTLHours: 24,
		UploadDir:     getEnv("UPLOAD_DIR", "public/uploads"),
		IsProd:        os.Getenv("IS_PROD") == "true",
	}
	if ttl, err := strconv.Atoi(os.Getenv("TOKEN_TTL_HOURS")); err == nil && ttl > 0 {
		cfg.TokenTTLHours = ttl
	}
	return cfg
}

// getEnv returns the value of the environment variable or a fallback
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
