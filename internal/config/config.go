package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Config holds all configuration for the application
type Config struct {
	AppMode  string
	Port     string
	Database DatabaseConfig
	JWT      JWTConfig
	Auth     AuthConfig
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

// JWTConfig holds token signing configuration
type JWTConfig struct {
	Secret       string
	ValidityDays int
}

// AuthConfig holds signup role assignment and password hashing configuration.
// AdminPIN and CustomerPIN are the shared secrets compared against the PIN
// submitted at signup.
type AuthConfig struct {
	AdminPIN    string
	CustomerPIN string
	BcryptCost  int
}

// Global config instance
var AppConfig *Config

// Load reads configuration from .env file and environment variables
func Load() (*Config, error) {
	// Load .env file (ignore error if file doesn't exist in production)
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	appMode := strings.TrimSpace(getEnv("APP_MODE", "dev"))
	if appMode != "dev" && appMode != "prod" {
		return nil, fmt.Errorf("invalid APP_MODE: '%s' (must be 'dev' or 'prod')", appMode)
	}

	config := &Config{
		AppMode:  appMode,
		Port:     getEnv("PORT", "8080"),
		Database: loadDatabaseConfig(),
		JWT:      loadJWTConfig(),
		Auth:     loadAuthConfig(),
	}

	if config.JWT.Secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if config.Auth.AdminPIN == "" || config.Auth.CustomerPIN == "" {
		return nil, fmt.Errorf("ADMIN_SECRET_PIN and CUSTOMER_SECRET_PIN are required")
	}
	if config.Auth.AdminPIN == config.Auth.CustomerPIN {
		return nil, fmt.Errorf("ADMIN_SECRET_PIN and CUSTOMER_SECRET_PIN must differ")
	}

	// Set global config
	AppConfig = config

	log.Printf("✅ Configuration loaded successfully [MODE: %s]", appMode)
	return config, nil
}

// loadDatabaseConfig loads database config
func loadDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "3306"),
		User:     getEnv("DB_USER", "root"),
		Password: getEnv("DB_PASS", ""),
		DBName:   getEnv("DB_NAME", "microfinance"),
	}
}

// loadJWTConfig loads token signing config
func loadJWTConfig() JWTConfig {
	validityDays, _ := strconv.Atoi(getEnv("TOKEN_VALIDITY_DAYS", "7"))
	if validityDays < 1 {
		validityDays = 7
	}

	return JWTConfig{
		Secret:       getEnv("JWT_SECRET", ""),
		ValidityDays: validityDays,
	}
}

// loadAuthConfig loads signup PIN secrets and bcrypt cost
func loadAuthConfig() AuthConfig {
	cost, _ := strconv.Atoi(getEnv("BCRYPT_COST", strconv.Itoa(bcrypt.DefaultCost)))
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return AuthConfig{
		AdminPIN:    strings.TrimSpace(getEnv("ADMIN_SECRET_PIN", "")),
		CustomerPIN: strings.TrimSpace(getEnv("CUSTOMER_SECRET_PIN", "")),
		BcryptCost:  cost,
	}
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// IsDev returns true if running in development mode
func (c *Config) IsDev() bool {
	return c.AppMode == "dev"
}

// IsProd returns true if running in production mode
func (c *Config) IsProd() bool {
	return c.AppMode == "prod"
}

// GetAllowedOrigins returns allowed origins for CORS
func (c *Config) GetAllowedOrigins() string {
	origins := getEnv("ALLOWED_ORIGINS", "")
	if origins == "" && c.IsDev() {
		return "*"
	}
	return origins
}
