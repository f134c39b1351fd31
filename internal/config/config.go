package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Config holds application configuration
type Config struct {
	// Server
	Port string
	Env  string

	// Database
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	DBPath     string

	// JWT
	JWTSecret        string
	JWTExpirationDur time.Duration

	// OpsAPIKey guards operational endpoints such as on-demand reconciliation.
	OpsAPIKey string

	// Unit of work
	UnitMaxRetries     int
	UnitForceNonAtomic bool

	// ReconcileEpsilon is the tolerated drift between a stored aggregate and
	// its ledger-derived value before reconciliation rewrites it.
	ReconcileEpsilon decimal.Decimal
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("ENV", "development"),

		DBDriver:   getEnv("DB_DRIVER", "postgres"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "fintrack"),
		DBPassword: getEnv("DB_PASSWORD", "fintrack"),
		DBName:     getEnv("DB_NAME", "fintrack"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),
		DBPath:     getEnv("DB_PATH", "data/fintrack.db"),

		JWTSecret: getEnv("JWT_SECRET", "fallback-secret-key-for-dev-only"),
		OpsAPIKey: getEnv("OPS_API_KEY", ""),
	}

	expStr := getEnv("JWT_EXPIRES_IN", "24h")
	expDur, err := time.ParseDuration(expStr)
	if err != nil {
		log.Printf("Warning: invalid JWT_EXPIRES_IN value '%s', falling back to 24h\n", expStr)
		expDur = 24 * time.Hour
	}
	config.JWTExpirationDur = expDur

	retries, err := strconv.Atoi(getEnv("UNIT_MAX_RETRIES", "3"))
	if err != nil || retries < 0 {
		log.Printf("Warning: invalid UNIT_MAX_RETRIES value, falling back to 3\n")
		retries = 3
	}
	config.UnitMaxRetries = retries

	forceNonAtomic, err := strconv.ParseBool(getEnv("UNIT_FORCE_NON_ATOMIC", "false"))
	if err != nil {
		log.Printf("Warning: invalid UNIT_FORCE_NON_ATOMIC value, falling back to false\n")
	}
	config.UnitForceNonAtomic = forceNonAtomic

	epsStr := getEnv("RECONCILE_EPSILON", "0.01")
	eps, err := decimal.NewFromString(epsStr)
	if err != nil || eps.IsNegative() {
		log.Printf("Warning: invalid RECONCILE_EPSILON value '%s', falling back to 0.01\n", epsStr)
		eps = decimal.RequireFromString("0.01")
	}
	config.ReconcileEpsilon = eps

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
