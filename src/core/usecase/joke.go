// Package usecase implements the application's operations on top of the ports.
package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"jokester/src/core/domain"
	"jokester/src/core/ports"
)

// JokeService creates and loads jokes.
type JokeService struct {
	repo ports.JokeRepository
	log  *slog.Logger
}

func NewJokeService(repo ports.JokeRepository, log *slog.Logger) *JokeService {
	return &JokeService{repo: repo, log: log}
}

// CreateJokeInput is a joke submission from an authenticated jokester.
type CreateJokeInput struct {
	Name       string
	Content    string
	JokesterID uuid.UUID
}

// Create validates the submission and stores it. Validation failures are
// returned as domain.FieldErrors and nothing is written.
func (s *JokeService) Create(ctx context.Context, in CreateJokeInput) (*domain.Joke, error) {
	if in.JokesterID == uuid.Nil {
		return nil, domain.NewUnauthorizedError("Unauthorized")
	}
	if err := domain.ValidateJoke(in.Name, in.Content).Err(); err != nil {
		return nil, err
	}

	joke, err := s.repo.CreateJoke(ctx, in.Name, in.Content, in.JokesterID)
	if err != nil {
		return nil, fmt.Errorf("create joke: %w", err)
	}

	s.log.Info("joke created",
		"joke_id", joke.ID,
		"jokester_id", joke.JokesterID,
	)
	return joke, nil
}

// Get returns a joke by ID.
func (s *JokeService) Get(ctx context.Context, id uuid.UUID) (*domain.Joke, error) {
	return s.repo.GetJoke(ctx, id)
}
