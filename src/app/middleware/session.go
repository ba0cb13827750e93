package middleware

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"jokester/src/app/http/response"
	"jokester/src/core/domain"
	"jokester/src/infra/session"
)

// UserIDKey is the context key for the signed-in user's ID.
const UserIDKey = "user_id"

// LoginPath is where anonymous browsers are sent to sign in.
const LoginPath = "/login"

// SessionReader resolves the user behind a request.
type SessionReader interface {
	UserID(r *http.Request) (uuid.UUID, error)
}

// UserLookup loads the account a session was issued for.
type UserLookup interface {
	GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// Session reads the session cookie and stores the user ID in the context
// under UserIDKey. Requests without a valid session, or whose user no longer
// exists, continue anonymously. A failed lookup is attached as an error and
// the request stops there.
func Session(sessions SessionReader, users UserLookup, log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := sessions.UserID(c.Request)
		if err != nil {
			if !errors.Is(err, session.ErrNoSession) {
				log.Debug("ignoring session cookie",
					"request_id", GetRequestID(c),
					"error", err,
				)
			}
			c.Next()
			return
		}

		user, err := users.GetUserByID(c.Request.Context(), userID)
		switch {
		case err == nil:
			c.Set(UserIDKey, user.ID)
		case domain.IsNotFound(err):
			log.Info("session user no longer exists",
				"request_id", GetRequestID(c),
				"user_id", userID,
			)
		default:
			_ = c.Error(fmt.Errorf("load session user: %w", err))
			c.Abort()
			return
		}
		c.Next()
	}
}

// OptionalUserID returns the signed-in user's ID, if any.
func OptionalUserID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(UserIDKey)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// RequireUserID returns the signed-in user's ID. When there is none it
// answers the request itself and aborts: browsers are redirected to the
// login page with a redirectTo back to this path, JSON clients get 401.
func RequireUserID(c *gin.Context) (uuid.UUID, bool) {
	if id, ok := OptionalUserID(c); ok {
		return id, true
	}

	c.Abort()
	if response.WantsJSON(c) {
		response.Unauthorized(c, "Unauthorized", GetRequestID(c))
		return uuid.Nil, false
	}
	c.Redirect(http.StatusSeeOther, LoginPath+"?"+url.Values{"redirectTo": {c.Request.URL.Path}}.Encode())
	return uuid.Nil, false
}
