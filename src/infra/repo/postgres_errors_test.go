package repo

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"jokester/src/core/domain"
)

func TestPostgresErrorClassification(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		unique     bool
		foreignKey bool
	}{
		{"unique violation", &pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"}, true, false},
		{"foreign key violation", &pgconn.PgError{Code: "23503", ConstraintName: "jokes_jokester_id_fkey"}, false, true},
		{"wrapped foreign key violation", fmt.Errorf("insert joke: %w", &pgconn.PgError{Code: "23503"}), false, true},
		{"not null violation", &pgconn.PgError{Code: "23502"}, false, false},
		{"plain error", errors.New("connection reset"), false, false},
		{"nil", nil, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.unique, isUniqueViolation(tt.err))
			assert.Equal(t, tt.foreignKey, isForeignKeyViolation(tt.err))
		})
	}
}

func TestPostgresInsertErrors(t *testing.T) {
	t.Parallel()

	err := jokeInsertError(&pgconn.PgError{Code: "23503"})
	assert.True(t, domain.IsUnauthorized(err))

	err = userInsertError(&pgconn.PgError{Code: "23505"})
	assert.True(t, domain.IsConflict(err))

	other := &pgconn.PgError{Code: "22021"}
	assert.Same(t, other, jokeInsertError(other))
	assert.Same(t, other, userInsertError(other))
}
