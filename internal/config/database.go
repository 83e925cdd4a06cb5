package config

import (
	"fmt"
	"time"

	_ "github.com/lib/pq"
	logrus "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"commuta_admin/internal/models"
)

// DSN builds the libpq connection string for cfg.
func (cfg DBConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port, cfg.SSLMode, cfg.TimeZone,
	)
}

// GormLogger sends GORM warnings and slow queries through the standard
// Logrus logger, so they land in the rotated log file.
func GormLogger() gormlogger.Interface {
	return gormlogger.New(logrus.StandardLogger(), gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  gormlogger.Warn,
		IgnoreRecordNotFoundError: true,
	})
}

// InitDB opens the Postgres handle used for persisted admin sessions and
// migrates the session table. It is only called when SESSION_STORE=postgres.
func InitDB(cfg DBConfig) (*gorm.DB, error) {
	// lib/pq is the database/sql driver so unique violations surface as *pq.Error.
	db, err := gorm.Open(postgres.New(postgres.Config{
		DriverName: "postgres",
		DSN:        cfg.DSN(),
	}), &gorm.Config{
		Logger: GormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := db.AutoMigrate(&models.AdminSession{}); err != nil {
		return nil, fmt.Errorf("auto-migration failed: %w", err)
	}
	return db, nil
}
