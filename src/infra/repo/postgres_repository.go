package repo

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"jokester/src/core/domain"
	"jokester/src/infra/db"
)

// PostgresRepository implements ports.Store with hand-written SQL over pgx.
type PostgresRepository struct {
	pg   *db.Postgres
	pool *pgxpool.Pool
	log  *slog.Logger
}

// NewPostgresRepository constructs a repository backed by Postgres.
func NewPostgresRepository(pg *db.Postgres, log *slog.Logger) *PostgresRepository {
	return &PostgresRepository{
		pg:   pg,
		pool: pg.Pool,
		log:  log,
	}
}

func (r *PostgresRepository) Health(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func (r *PostgresRepository) Close() error {
	r.pg.Close()
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}
	return false
}

// jokeInsertError maps a failed joke insert. A missing jokester means the
// session outlived its user.
func jokeInsertError(err error) error {
	if isForeignKeyViolation(err) {
		return errUnknownJokester
	}
	return err
}

func userInsertError(err error) error {
	if isUniqueViolation(err) {
		return domain.NewConflictError("username already taken")
	}
	return err
}

// Jokes

func (r *PostgresRepository) CreateJoke(ctx context.Context, name, content string, jokesterID uuid.UUID) (*domain.Joke, error) {
	const q = `
		INSERT INTO jokes (id, jokester_id, name, content)
		VALUES ($1, $2, $3, $4)
		RETURNING id, jokester_id, name, content, created_at, updated_at
	`
	var j domain.Joke
	err := r.pool.QueryRow(ctx, q, uuid.New(), jokesterID, name, content).Scan(
		&j.ID, &j.JokesterID, &j.Name, &j.Content, &j.CreatedAt, &j.UpdatedAt,
	)
	if err != nil {
		return nil, jokeInsertError(err)
	}
	return &j, nil
}

func (r *PostgresRepository) GetJoke(ctx context.Context, id uuid.UUID) (*domain.Joke, error) {
	const q = `
		SELECT id, jokester_id, name, content, created_at, updated_at
		FROM jokes
		WHERE id = $1
	`
	var j domain.Joke
	if err := r.pool.QueryRow(ctx, q, id).Scan(
		&j.ID, &j.JokesterID, &j.Name, &j.Content, &j.CreatedAt, &j.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("joke")
		}
		return nil, err
	}
	return &j, nil
}

// Users

func (r *PostgresRepository) CreateUser(ctx context.Context, username, passwordHash string) (*domain.User, error) {
	const q = `
		INSERT INTO users (id, username, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, username, password_hash, created_at
	`
	var u domain.User
	err := r.pool.QueryRow(ctx, q, uuid.New(), username, passwordHash).Scan(
		&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt,
	)
	if err != nil {
		return nil, userInsertError(err)
	}
	return &u, nil
}

func (r *PostgresRepository) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	const q = `
		SELECT id, username, password_hash, created_at
		FROM users
		WHERE username = $1
	`
	return r.scanUser(r.pool.QueryRow(ctx, q, username))
}

func (r *PostgresRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	const q = `
		SELECT id, username, password_hash, created_at
		FROM users
		WHERE id = $1
	`
	return r.scanUser(r.pool.QueryRow(ctx, q, id))
}

func (r *PostgresRepository) scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("user")
		}
		return nil, err
	}
	return &u, nil
}
