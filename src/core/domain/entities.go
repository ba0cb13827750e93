package domain

import (
	"time"

	"github.com/google/uuid"
)

// Joke is a user-submitted joke. JokesterID is fixed at creation.
type Joke struct {
	ID         uuid.UUID
	Name       string
	Content    string
	JokesterID uuid.UUID
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsOwnedBy reports whether userID is the joke's jokester.
func (j *Joke) IsOwnedBy(userID uuid.UUID) bool {
	return userID != uuid.Nil && j.JokesterID == userID
}

// User is an account that can sign in and own jokes.
type User struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
