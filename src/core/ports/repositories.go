// Package ports defines interfaces (ports) that connect core domain to infrastructure.
// These interfaces follow the ports and adapters (hexagonal) architecture pattern.
//
// Ports are defined here in the core layer, while implementations (adapters)
// live in src/infra/repo. This ensures the core has no dependency on infrastructure.
package ports

import (
	"context"

	"github.com/google/uuid"

	"jokester/src/core/domain"
)

// Repository is the base interface for all repositories.
type Repository interface {
	// Health checks if the underlying storage is reachable.
	Health(ctx context.Context) error
}

// JokeRepository persists jokes.
type JokeRepository interface {
	// CreateJoke stores a new joke and returns it with its generated ID.
	CreateJoke(ctx context.Context, name, content string, jokesterID uuid.UUID) (*domain.Joke, error)
	// GetJoke returns domain.ErrNotFound when no joke has the given ID.
	GetJoke(ctx context.Context, id uuid.UUID) (*domain.Joke, error)
}

// UserRepository persists the accounts behind sessions.
type UserRepository interface {
	// CreateUser returns domain.ErrConflict when the username is taken.
	CreateUser(ctx context.Context, username, passwordHash string) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// Store is the composite repository the application is wired with.
type Store interface {
	Repository
	JokeRepository
	UserRepository

	// Close releases the underlying connections.
	Close() error
}
