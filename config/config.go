package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Config carries everything read from the environment.
type Config struct {
	APIBaseURL  string
	HTTPTimeout time.Duration
	Port        string
	DBDriver    string
	DBDSN       string
	JWTSecret   string
}

// Load reads .env (when present) and the process environment.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		APIBaseURL:  getEnv("API_BASE_URL", "http://localhost:8080"),
		HTTPTimeout: 30 * time.Second,
		Port:        getEnv("PORT", "8080"),
		DBDriver:    getEnv("DB_DRIVER", "sqlite"),
		DBDSN:       getEnv("DB_DSN", "file:pos.db?cache=shared"),
		JWTSecret:   getEnv("JWT_SECRET", ""),
	}

	if v := os.Getenv("HTTP_TIMEOUT_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.HTTPTimeout = time.Duration(secs) * time.Second
		}
	}

	return cfg
}

// InitDB opens the configured database. Sqlite is the default so the
// bundled server runs with no external services; mysql matches the
// production deployment.
func (c Config) InitDB() (*gorm.DB, error) {
	switch c.DBDriver {
	case "mysql":
		return gorm.Open(mysql.Open(c.DBDSN), &gorm.Config{})
	default:
		return gorm.Open(sqlite.Open(c.DBDSN), &gorm.Config{})
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
