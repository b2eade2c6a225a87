package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL    string
	DatabaseDriver string
	LogLevel       string
	DevMode        bool
}

func Load(dbConn, dbDriver, logLevel string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	if dbConn == "" {
		dbConn = getEnv("DATABASE_URL", "./cleaninvoice.db")
	}

	if dbDriver == "" {
		dbDriver = getEnv("DATABASE_DRIVER", "sqlite3")
	}

	if logLevel == "" {
		logLevel = getEnv("LOG_LEVEL", "warn")
	}

	cfg := &Config{
		DatabaseURL:    dbConn,
		DatabaseDriver: dbDriver,
		LogLevel:       logLevel,
		DevMode:        getEnv("DEV_MODE", "false") == "true",
	}

	return cfg, nil
}

func (c *Config) Dump() {
	fmt.Printf("Database URL: %s\n", c.DatabaseURL)
	fmt.Printf("Database Driver: %s\n", c.DatabaseDriver)
	fmt.Printf("Log Level: %s\n", c.LogLevel)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
