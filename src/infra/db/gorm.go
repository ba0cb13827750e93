package db

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// OpenGorm returns a gorm handle that issues its queries through pg's pool.
func OpenGorm(pg *Postgres, log *slog.Logger) (*gorm.DB, error) {
	dialector := postgres.New(postgres.Config{
		Conn: stdlib.OpenDBFromPool(pg.Pool),
	})
	orm, err := gorm.Open(dialector, gormConfig(log))
	if err != nil {
		return nil, fmt.Errorf("failed to open gorm over postgres: %w", err)
	}
	return orm, nil
}

// OpenSQLite returns a gorm handle backed by the SQLite database at path.
// Use ":memory:" for a throwaway database.
func OpenSQLite(path string, log *slog.Logger) (*gorm.DB, error) {
	orm, err := gorm.Open(sqlite.Open(path), gormConfig(log))
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database %q: %w", path, err)
	}

	// SQLite allows a single writer; one connection also keeps :memory:
	// databases alive for the handle's lifetime.
	sqlDB, err := orm.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sqlite handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := orm.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return nil, fmt.Errorf("failed to enable sqlite foreign keys: %w", err)
	}

	log.Info("sqlite database opened", "path", path)
	return orm, nil
}

func gormConfig(log *slog.Logger) *gorm.Config {
	return &gorm.Config{
		TranslateError: true,
		Logger: gormlogger.New(&gormWriter{log: log}, gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		}),
	}
}

type gormWriter struct {
	log *slog.Logger
}

func (w *gormWriter) Printf(format string, args ...any) {
	w.log.Warn(fmt.Sprintf(format, args...), "component", "gorm")
}
