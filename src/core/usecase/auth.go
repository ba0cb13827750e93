package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"jokester/src/core/domain"
	"jokester/src/core/ports"
)

const msgBadCredentials = "Username/Password combination is incorrect"

// AuthService signs users in and registers new ones.
type AuthService struct {
	users ports.UserRepository
	log   *slog.Logger
	cost  int
}

// NewAuthService creates an AuthService hashing passwords with the given bcrypt cost.
// A cost of zero selects bcrypt.DefaultCost.
func NewAuthService(users ports.UserRepository, log *slog.Logger, cost int) *AuthService {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &AuthService{users: users, log: log, cost: cost}
}

// Credentials are the fields of the login form.
type Credentials struct {
	Username string
	Password string
}

// Login verifies the credentials. Unknown users and wrong passwords both
// yield the same unauthorized error.
func (s *AuthService) Login(ctx context.Context, creds Credentials) (*domain.User, error) {
	if err := domain.ValidateCredentials(creds.Username, creds.Password).Err(); err != nil {
		return nil, err
	}

	user, err := s.users.GetUserByUsername(ctx, creds.Username)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, domain.NewUnauthorizedError(msgBadCredentials)
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, domain.NewUnauthorizedError(msgBadCredentials)
		}
		return nil, fmt.Errorf("compare password: %w", err)
	}
	return user, nil
}

// Register creates a new user with a hashed password.
func (s *AuthService) Register(ctx context.Context, creds Credentials) (*domain.User, error) {
	if err := domain.ValidateCredentials(creds.Username, creds.Password).Err(); err != nil {
		return nil, err
	}

	_, err := s.users.GetUserByUsername(ctx, creds.Username)
	switch {
	case err == nil:
		return nil, usernameTaken(creds.Username)
	case !domain.IsNotFound(err):
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.CreateUser(ctx, creds.Username, string(hash))
	if err != nil {
		// Lost a race with a concurrent registration.
		if domain.IsConflict(err) {
			return nil, usernameTaken(creds.Username)
		}
		return nil, err
	}

	s.log.Info("user registered", "user_id", user.ID)
	return user, nil
}

func usernameTaken(username string) error {
	return domain.NewConflictError(fmt.Sprintf("User with username %s already exists", username))
}
