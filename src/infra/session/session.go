// Package session keeps the signed-in user's ID in an HTTP-only cookie.
//
// The cookie holds an HS256 JWT whose subject is the user ID. Nothing is
// stored server side, so signing out only clears the cookie.
package session

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"jokester/src/infra/config"
)

const issuer = "jokester"

var (
	// ErrNoSession is returned when the request carries no session cookie.
	ErrNoSession = errors.New("session: not found")

	// ErrInvalidToken is returned when the cookie is malformed, tampered with or expired.
	ErrInvalidToken = errors.New("session: invalid token")

	// ErrBadSecret is returned when the signing secret is too short.
	ErrBadSecret = fmt.Errorf("session: secret must be %d+ bytes", config.MinSessionSecretLength)
)

// Manager issues and reads session cookies.
type Manager struct {
	secret     []byte
	cookieName string
	ttl        time.Duration
	secure     bool
	now        func() time.Time
}

// NewManager creates a Manager from the session configuration.
func NewManager(cfg config.SessionConfig) (*Manager, error) {
	if len(cfg.Secret) < config.MinSessionSecretLength {
		return nil, ErrBadSecret
	}
	return &Manager{
		secret:     []byte(cfg.Secret),
		cookieName: cfg.CookieName,
		ttl:        cfg.TTL,
		secure:     cfg.Secure,
		now:        time.Now,
	}, nil
}

// CookieName returns the name of the session cookie.
func (m *Manager) CookieName() string {
	return m.cookieName
}

// Issue returns a signed token for userID.
func (m *Manager) Issue(userID uuid.UUID) (string, error) {
	now := m.now()
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return token, nil
}

// Parse verifies token and returns the user ID it was issued for.
func (m *Manager) Parse(token string) (uuid.UUID, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &claims,
		func(*jwt.Token) (any, error) { return m.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return uuid.Nil, errors.Join(ErrInvalidToken, err)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil || userID == uuid.Nil {
		return uuid.Nil, ErrInvalidToken
	}
	return userID, nil
}

// UserID returns the user ID stored in the request's session cookie.
func (m *Manager) UserID(r *http.Request) (uuid.UUID, error) {
	c, err := r.Cookie(m.cookieName)
	if err != nil || c.Value == "" {
		return uuid.Nil, ErrNoSession
	}
	return m.Parse(c.Value)
}

// Commit starts a session for userID by setting the cookie on w.
func (m *Manager) Commit(w http.ResponseWriter, userID uuid.UUID) error {
	token, err := m.Issue(userID)
	if err != nil {
		return err
	}
	http.SetCookie(w, m.cookie(token, int(m.ttl.Seconds())))
	return nil
}

// Destroy clears the session cookie.
func (m *Manager) Destroy(w http.ResponseWriter) {
	http.SetCookie(w, m.cookie("", -1))
}

func (m *Manager) cookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     m.cookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		Secure:   m.secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
