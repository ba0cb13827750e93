package repo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"jokester/src/core/ports"
	"jokester/src/infra/config"
	"jokester/src/infra/db"
)

// Open connects to the database selected by cfg.Driver and returns the matching
// store. When migrate is true the schema is brought up to date first.
func Open(ctx context.Context, cfg config.DatabaseConfig, migrate bool, log *slog.Logger) (ports.Store, error) {
	if cfg.Driver == config.DriverSQLite {
		orm, err := db.OpenSQLite(cfg.SQLitePath, log)
		if err != nil {
			return nil, err
		}
		store := NewGormRepository(orm, log)
		if migrate {
			if err := store.AutoMigrate(ctx); err != nil {
				return nil, errors.Join(err, store.Close())
			}
		}
		return store, nil
	}

	pg, err := db.New(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	if migrate {
		if err := db.Migrate(ctx, pg, cfg.MigrationsTable, log); err != nil {
			pg.Close()
			return nil, err
		}
	}

	switch cfg.Driver {
	case config.DriverPostgres:
		return NewPostgresRepository(pg, log), nil
	case config.DriverGorm:
		orm, err := db.OpenGorm(pg, log)
		if err != nil {
			pg.Close()
			return nil, err
		}
		return &pooledGorm{GormRepository: NewGormRepository(orm, log), pg: pg}, nil
	default:
		pg.Close()
		return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
}

// pooledGorm closes the pgx pool the gorm handle runs over.
type pooledGorm struct {
	*GormRepository
	pg *db.Postgres
}

func (p *pooledGorm) Close() error {
	p.pg.Close()
	return nil
}
