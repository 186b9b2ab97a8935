package config

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	// DB serves the storefront read path (goqu-built queries)
	DB *pgxpool.Pool
	// Gorm serves admin CRUD, checkout and reviews
	Gorm *gorm.DB
)

func InitDB(cfg DatabaseConfig, production bool) error {
	if err := initPgx(cfg); err != nil {
		return err
	}
	return initGORM(cfg, production)
}

func initPgx(cfg DatabaseConfig) error {
	poolCfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return fmt.Errorf("invalid DATABASE_URL: %w", err)
	}
	poolCfg.MaxConns = cfg.MaxConns

	ctx, cancel := WithTimeout()
	defer cancel()

	DB, err = pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return fmt.Errorf("unable to connect to database: %w", err)
	}
	if err = DB.Ping(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	log.Info().Str("component", "db").Msg("✅ database connected (pgx)")
	return nil
}

func initGORM(cfg DatabaseConfig, production bool) error {
	gormLogger := logger.Default.LogMode(logger.Warn)
	if production {
		gormLogger = logger.Default.LogMode(logger.Silent)
	}

	var err error
	Gorm, err = gorm.Open(postgres.Open(cfg.URL), &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
		NowFunc:        func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return fmt.Errorf("failed to connect with GORM: %w", err)
	}
	if sqlDB, err := Gorm.DB(); err == nil {
		sqlDB.SetMaxOpenConns(int(cfg.MaxConns))
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
		sqlDB.SetConnMaxIdleTime(2 * time.Minute)
	}

	log.Info().Str("component", "db").Msg("✅ database connected (GORM)")
	return nil
}

func CloseDB() {
	if DB != nil {
		DB.Close()
		log.Info().Str("component", "db").Msg("database connection closed (pgx)")
	}
	if Gorm != nil {
		if sqlDB, _ := Gorm.DB(); sqlDB != nil {
			_ = sqlDB.Close()
			log.Info().Str("component", "db").Msg("database connection closed (GORM)")
		}
	}
}

// PingDB is used by the health check
func PingDB(ctx context.Context) error {
	if DB == nil {
		return fmt.Errorf("database not initialised")
	}
	return DB.Ping(ctx)
}
