package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the process reads from its environment.
// A .env file in the working directory is loaded first (without
// overriding variables that are already set), then plain environment
// variables, then the defaults below.
type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	Port      string
	GinMode   string
	StaticDir string
}

func Load() *Config {
	// Optional; a missing .env file is not an error.
	_ = godotenv.Load()

	return &Config{
		DBHost:     getenv("DB_HOST", "localhost"),
		DBPort:     getenv("DB_PORT", "5432"),
		DBUser:     getenv("DB_USER", "postgres"),
		DBPassword: getenv("DB_PASSWORD", "postgres"),
		DBName:     getenv("DB_NAME", "device_management"),
		DBSSLMode:  getenv("DB_SSLMODE", "disable"),
		Port:       getenv("PORT", "5000"),
		GinMode:    getenv("GIN_MODE", "release"),
		StaticDir:  getenv("STATIC_DIR", "./public"),
	}
}

// DSN renders the postgres connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
