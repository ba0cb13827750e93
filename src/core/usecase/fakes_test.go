package usecase_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"jokester/src/core/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// memStore is an in-memory ports.JokeRepository and ports.UserRepository.
type memStore struct {
	mu      sync.Mutex
	jokes   map[uuid.UUID]domain.Joke
	users   map[uuid.UUID]domain.User
	failErr error
	creates int
}

func newMemStore() *memStore {
	return &memStore{
		jokes: make(map[uuid.UUID]domain.Joke),
		users: make(map[uuid.UUID]domain.User),
	}
}

func (m *memStore) CreateJoke(_ context.Context, name, content string, jokesterID uuid.UUID) (*domain.Joke, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.creates++
	if m.failErr != nil {
		return nil, m.failErr
	}
	j := domain.Joke{
		ID:         uuid.New(),
		Name:       name,
		Content:    content,
		JokesterID: jokesterID,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	m.jokes[j.ID] = j
	return &j, nil
}

func (m *memStore) GetJoke(_ context.Context, id uuid.UUID) (*domain.Joke, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	j, ok := m.jokes[id]
	if !ok {
		return nil, domain.NewNotFoundError("joke")
	}
	return &j, nil
}

func (m *memStore) CreateUser(_ context.Context, username, passwordHash string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Username == username {
			return nil, domain.NewConflictError("username taken")
		}
	}
	u := domain.User{ID: uuid.New(), Username: username, PasswordHash: passwordHash, CreatedAt: time.Now()}
	m.users[u.ID] = u
	return &u, nil
}

func (m *memStore) GetUserByUsername(_ context.Context, username string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failErr != nil {
		return nil, m.failErr
	}
	for _, u := range m.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, domain.NewNotFoundError("user")
}

func (m *memStore) GetUserByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, domain.NewNotFoundError("user")
	}
	return &u, nil
}

type checkerFunc func(ctx context.Context) error

func (f checkerFunc) Health(ctx context.Context) error { return f(ctx) }

var errDatabaseDown = errors.New("database down")
