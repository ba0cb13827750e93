// Package repo implements the ports.Store adapters.
//
// Two implementations share the same schema:
//   - GormRepository maps jokes and users through the gorm ORM and runs over
//     either the pgx pool or a SQLite file.
//   - PostgresRepository issues hand-written SQL over the pgx pool.
//
// Open picks one from config.DatabaseConfig.Driver.
package repo
