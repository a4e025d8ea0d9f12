package postgres

import (
	"fmt"
	"time"

	"maintenance/internal/adapters/out/postgres/assetrepo"
	"maintenance/internal/adapters/out/postgres/userrepo"
	"maintenance/internal/adapters/out/postgres/workorderrepo"
	"maintenance/internal/pkg/logging"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// ConnectionConfig selects and tunes the database.
type ConnectionConfig struct {
	Driver          string
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	LogLevel        string
	SlowThreshold   time.Duration
}

// Connect opens the configured database with GORM's error translation enabled,
// so unique violations surface as gorm.ErrDuplicatedKey on both drivers.
func Connect(cfg ConnectionConfig, logger *zap.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case DriverPostgres:
		dialector = postgres.Open(cfg.DSN)
	case DriverSQLite:
		dialector = sqlite.Open(cfg.DSN)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logging.NewGormLogger(logger, cfg.LogLevel, cfg.SlowThreshold),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", cfg.Driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("access connection pool: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	return db, nil
}

// Migrate creates or updates the maintenance tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userrepo.AdminDTO{},
		&userrepo.SupervisorDTO{},
		&userrepo.TechnicianDTO{},
		&assetrepo.IndustrialAssetDTO{},
		&workorderrepo.WorkOrderDTO{},
	)
}
