package repo

import (
	"time"

	"github.com/google/uuid"

	"jokester/src/core/domain"
)

type userModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username     string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (userModel) TableName() string {
	return "users"
}

func (m *userModel) toDomain() *domain.User {
	return &domain.User{
		ID:           m.ID,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
	}
}

type jokeModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	JokesterID uuid.UUID `gorm:"type:uuid;not null;index:idx_jokes_jokester_id"`
	Jokester   userModel `gorm:"foreignKey:JokesterID;constraint:OnDelete:CASCADE"`
	Name       string    `gorm:"not null"`
	Content    string    `gorm:"type:text;not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (jokeModel) TableName() string {
	return "jokes"
}

func (m *jokeModel) toDomain() *domain.Joke {
	return &domain.Joke{
		ID:         m.ID,
		Name:       m.Name,
		Content:    m.Content,
		JokesterID: m.JokesterID,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}
