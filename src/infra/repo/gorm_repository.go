package repo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"jokester/src/core/domain"
)

// The session refers to a user that no longer exists.
var errUnknownJokester = domain.NewUnauthorizedError("jokester no longer exists")

// GormRepository implements ports.Store through the gorm ORM.
type GormRepository struct {
	db  *gorm.DB
	log *slog.Logger
}

// NewGormRepository constructs a repository over an open gorm handle.
func NewGormRepository(db *gorm.DB, log *slog.Logger) *GormRepository {
	return &GormRepository{db: db, log: log}
}

// AutoMigrate creates or updates the tables from the gorm models.
// Postgres deployments use the goose migrations instead.
func (r *GormRepository) AutoMigrate(ctx context.Context) error {
	if err := r.db.WithContext(ctx).AutoMigrate(&userModel{}, &jokeModel{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

func (r *GormRepository) Health(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (r *GormRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Jokes

func (r *GormRepository) CreateJoke(ctx context.Context, name, content string, jokesterID uuid.UUID) (*domain.Joke, error) {
	m := jokeModel{
		ID:         uuid.New(),
		JokesterID: jokesterID,
		Name:       name,
		Content:    content,
	}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, errUnknownJokester
		}
		return nil, err
	}
	return m.toDomain(), nil
}

func (r *GormRepository) GetJoke(ctx context.Context, id uuid.UUID) (*domain.Joke, error) {
	var m jokeModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("joke")
		}
		return nil, err
	}
	return m.toDomain(), nil
}

// Users

func (r *GormRepository) CreateUser(ctx context.Context, username, passwordHash string) (*domain.User, error) {
	m := userModel{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: passwordHash,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.NewConflictError("username already taken")
		}
		return nil, err
	}
	return m.toDomain(), nil
}

func (r *GormRepository) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.findUser(ctx, "username = ?", username)
}

func (r *GormRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.findUser(ctx, "id = ?", id)
}

func (r *GormRepository) findUser(ctx context.Context, query string, arg any) (*domain.User, error) {
	var m userModel
	if err := r.db.WithContext(ctx).Where(query, arg).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("user")
		}
		return nil, err
	}
	return m.toDomain(), nil
}
