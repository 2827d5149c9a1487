package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/pageza/calorie-quest/backend/config"
	"github.com/pageza/calorie-quest/backend/internal/logger"
)

// PostgresDSN builds a lib/pq connection string from the configuration.
func PostgresDSN(cfg *config.Config) string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBSSLMode,
	)
}

// Open connects to the configured database and runs migrations.
func Open(cfg *config.Config) (*gorm.DB, error) {
	log := logger.Named("database")

	gcfg := &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Warn)}
	if cfg.Env == config.Production {
		gcfg.Logger = gormlogger.Default.LogMode(gormlogger.Error)
	}

	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		log.Info("connecting to postgres",
			zap.String("host", cfg.DBHost),
			zap.String("port", cfg.DBPort),
			zap.String("user", cfg.DBUser),
		)
		sqlDB, err := openPostgresPool(cfg)
		if err != nil {
			return nil, err
		}
		dialector = postgres.New(postgres.Config{Conn: sqlDB})
	case "sqlite":
		log.Info("opening sqlite database", zap.String("path", cfg.SQLitePath))
		dialector = sqlite.Open(cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DBDriver)
	}

	db, err := gorm.Open(dialector, gcfg)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Info("database ready", zap.String("driver", cfg.DBDriver))
	return db, nil
}

func openPostgresPool(cfg *config.Config) (*sql.DB, error) {
	sqlDB, err := sql.Open("postgres", PostgresDSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("error connecting to the database: %w", err)
	}
	return sqlDB, nil
}

// HealthCheck checks if the database is accessible
func HealthCheck(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
