// Package db provides database connections and schema migrations.
//
// This package is responsible for:
//   - PostgreSQL connection pool initialization (pgx) with retry on startup
//   - Schema migrations embedded in the binary (goose)
//   - gorm handles over the pgx pool or over a local SQLite file
//
// Example usage:
//
//	pg, err := db.New(ctx, cfg.Database, log)
//	if err != nil {
//	    return err
//	}
//	defer pg.Close()
//
//	if err := db.Migrate(ctx, pg, cfg.Database.MigrationsTable, log); err != nil {
//	    return err
//	}
//
//	orm, err := db.OpenGorm(pg, log)
package db
