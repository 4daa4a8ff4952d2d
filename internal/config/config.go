package config

import (
	"errors"  // For validation errors
	"fmt"     // For DSN formatting
	"os"      // For environment variables
	"strconv" // For string to int conversion
	"strings" // For trimming values
	"time"    // For durations

	"github.com/joho/godotenv" // For loading .env files
)

// Supported database drivers
const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

// Config holds the application configuration
type Config struct {
	AppPort     string // Application port
	AppEnv      string // Environment name reported by the health endpoint
	ServiceName string // Service name reported by the health endpoint
	IsProd      bool   // Is production environment
	LogLevel    string // Logrus level name

	DBDriver       string        // Database driver: postgres or mysql
	DBUser         string        // Database user
	DBPassword     string        // Database password
	DBHost         string        // Database host
	DBPort         string        // Database port
	DBName         string        // Database name
	DBSSLMode      string        // Postgres sslmode
	DBMaxOpenConns int           // Upper bound on pooled connections
	DBMaxIdleConns int           // Idle connections kept in the pool
	DBOpTimeout    time.Duration // Per store operation deadline, includes waiting for a pooled connection

	JWTSecret string        // JWT secret key
	JWTTTL    time.Duration // Token validity window

	RedisAddr       string        // Redis server address, empty disables redis
	RedisPass       string        // Redis password
	RedisDB         int           // Redis database number
	CitizenCacheTTL time.Duration // TTL of cached citizen records

	FrontendURL     string        // Allowed CORS origin
	RateLimitMax    int           // Requests allowed per window per client
	RateLimitWindow time.Duration // Rate limit window

	AdminPassword string // Password of the seeded administrator
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	env := getEnv("APP_ENV", getEnv("NODE_ENV", "development"))
	return &Config{
		AppPort:     getEnv("APP_PORT", "5000"),
		AppEnv:      env,
		ServiceName: getEnv("SERVICE_NAME", "NIMC Backend API"),
		IsProd:      os.Getenv("IS_PROD") == "true" || env == "production",
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		DBDriver:       strings.ToLower(getEnv("DB_DRIVER", DriverPostgres)),
		DBUser:         os.Getenv("DB_USER"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBName:         os.Getenv("DB_NAME"),
		DBSSLMode:      getEnv("DB_SSLMODE", "disable"),
		DBMaxOpenConns: getIntEnv("DB_MAX_OPEN_CONNS", 10),
		DBMaxIdleConns: getIntEnv("DB_MAX_IDLE_CONNS", 2),
		DBOpTimeout:    getDurationEnv("DB_OP_TIMEOUT", 5*time.Second),

		JWTSecret: os.Getenv("JWT_SECRET"),
		JWTTTL:    getDurationEnv("JWT_TTL", 24*time.Hour),

		RedisAddr:       os.Getenv("REDIS_ADDR"),
		RedisPass:       os.Getenv("REDIS_PASS"),
		RedisDB:         getIntEnv("REDIS_DB", 0),
		CitizenCacheTTL: getDurationEnv("CITIZEN_CACHE_TTL", 10*time.Minute),

		FrontendURL:     getEnv("FRONTEND_URL", "http://localhost:3000"),
		RateLimitMax:    getIntEnv("RATE_LIMIT_MAX", 100),
		RateLimitWindow: getDurationEnv("RATE_LIMIT_WINDOW", 15*time.Minute),

		AdminPassword: getEnv("ADMIN_PASSWORD", "admin123"),
	}
}

// Validate rejects configurations the server cannot run with
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.DBDriver != DriverPostgres && c.DBDriver != DriverMySQL {
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.DBName == "" {
		return errors.New("DB_NAME is required")
	}
	if c.DBMaxOpenConns < 1 {
		return errors.New("DB_MAX_OPEN_CONNS must be positive")
	}
	if c.JWTTTL <= 0 {
		return errors.New("JWT_TTL must be positive")
	}
	if c.RateLimitMax < 1 || c.RateLimitWindow <= 0 {
		return errors.New("rate limit settings must be positive")
	}
	return nil
}

// DSN builds the data source name for the configured driver
func (c *Config) DSN() string {
	if c.DBDriver == DriverMySQL {
		return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?parseTime=true&loc=Local"
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

func getEnv(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	parsed, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return fallback
	}
	return parsed
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	parsed, err := time.ParseDuration(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return fallback
	}
	return parsed
}
