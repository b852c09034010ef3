package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/trinimetalhead/standfindr-backend/internal/logger"
	"github.com/trinimetalhead/standfindr-backend/internal/models"
)

var (
	// DB is the globally accessible database handle. It stays nil when no
	// connection could be established; the store checks for that on every
	// operation.
	DB *gorm.DB

	// InitErr records why startup could not produce a connection, so the
	// health endpoint can report the detail.
	InitErr error
)

// InitDB connects to Postgres using DATABASE_URL or the discrete DB_* env
// variables and migrates the route schema. Missing or broken configuration
// does not kill the process: DB stays nil, the failure is recorded, and the
// API starts degraded with health and the root greeting still served.
func InitDB() {
	// 1) Load .env (if present)
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found – relying on env vars")
	}

	dsn, err := resolveDSN()
	if err != nil {
		InitErr = err
		logrus.WithError(err).Warn("database not configured; starting degraded")
		return
	}

	// Open GORM connection, SQL logging routed through logrus
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.New(logger.GormLogger(), gormlogger.Config{
			SlowThreshold: 200 * time.Millisecond,
			LogLevel:      gormlogger.Warn,
		}),
	})
	if err != nil {
		InitErr = fmt.Errorf("failed to connect to database: %w", err)
		logrus.WithError(err).Error("could not reach database; starting degraded")
		return
	}

	if err := db.AutoMigrate(&models.Route{}, &models.Fare{}, &models.Landmark{}); err != nil {
		InitErr = fmt.Errorf("auto-migration failed: %w", err)
		logrus.WithError(err).Error("could not migrate schema; starting degraded")
		return
	}

	// Assign to global
	DB = db
	InitErr = nil
	logrus.Info("connected to database and migrated route schema")
}

// resolveDSN prefers the single DATABASE_URL value and falls back to the
// discrete DB_* variables. Hosted platforms hand out postgres:// URLs and
// the pgx driver accepts either URL prefix, so only plainly wrong schemes
// are rejected. The discrete path requires DB_HOST so that an entirely
// unset environment reads as "not configured" rather than "localhost down".
func resolveDSN() (string, error) {
	if raw := strings.TrimSpace(os.Getenv("DATABASE_URL")); raw != "" {
		if !strings.HasPrefix(raw, "postgres://") && !strings.HasPrefix(raw, "postgresql://") {
			return "", fmt.Errorf("DATABASE_URL must be a postgres:// or postgresql:// URL")
		}
		return raw, nil
	}

	host := os.Getenv("DB_HOST")
	if host == "" {
		return "", fmt.Errorf("no DATABASE_URL or DB_HOST set")
	}

	port := getEnv("DB_PORT", "5432")
	user := getEnv("DB_USER", "postgres")
	password := getEnv("DB_PASSWORD", "password")
	dbname := getEnv("DB_NAME", "standfindr")
	sslmode := getEnv("DB_SSLMODE", "disable")
	timezone := getEnv("DB_TIMEZONE", "UTC")

	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		host, user, password, dbname, port, sslmode, timezone,
	), nil
}

// getEnv reads an environment variable or returns the provided default
func getEnv(key, defaultValue string) string {
	if v, exists := os.LookupEnv(key); exists {
		return v
	}
	return defaultValue
}

// GetDB returns the initialized DB handle; nil means degraded
func GetDB() *gorm.DB {
	return DB
}
