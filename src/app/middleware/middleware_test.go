package middleware_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"jokester/src/app/middleware"
	"jokester/src/app/view"
	"jokester/src/core/domain"
	"jokester/src/infra/config"
	"jokester/src/infra/logger"
	"jokester/src/infra/session"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	goleak.VerifyTestMain(m)
}

func newRouter(t *testing.T, mw ...gin.HandlerFunc) *gin.Engine {
	t.Helper()

	tmpl, err := view.Templates()
	require.NoError(t, err)

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.Use(mw...)
	return r
}

func do(r http.Handler, method, target string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for k, v := range header {
		req.Header[http.CanonicalHeaderKey(k)] = v
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

var acceptJSON = http.Header{"Accept": {"application/json"}}

func TestRequestID(t *testing.T) {
	t.Parallel()

	r := newRouter(t, middleware.RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, middleware.GetRequestID(c)) })

	t.Run("generated", func(t *testing.T) {
		t.Parallel()

		w := do(r, http.MethodGet, "/", nil)
		id := w.Header().Get(middleware.RequestIDHeader)
		_, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.Equal(t, id, w.Body.String())
	})

	t.Run("reused", func(t *testing.T) {
		t.Parallel()

		w := do(r, http.MethodGet, "/", http.Header{middleware.RequestIDHeader: {"lb-123"}})
		assert.Equal(t, "lb-123", w.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("oversized id replaced", func(t *testing.T) {
		t.Parallel()

		w := do(r, http.MethodGet, "/", http.Header{middleware.RequestIDHeader: {strings.Repeat("a", 65)}})
		assert.NotEqual(t, strings.Repeat("a", 65), w.Header().Get(middleware.RequestIDHeader))
	})
}

func TestRecovery(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.NewWithWriter(config.LogConfig{Level: "info", Format: "json"}, &buf)

	r := newRouter(t, middleware.Recovery(log), middleware.RequestID())
	r.GET("/panic", func(*gin.Context) { panic("boom") })

	w := do(r, http.MethodGet, "/panic", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Something unexpected went wrong. Sorry about that.")
	assert.NotContains(t, w.Body.String(), "boom")
	assert.Contains(t, buf.String(), "panic recovered")

	w = do(r, http.MethodGet, "/panic", acceptJSON)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"code":"INTERNAL_ERROR"`)
}

func TestBoundary(t *testing.T) {
	t.Parallel()

	r := newRouter(t, middleware.RequestID(), middleware.Boundary())
	r.GET("/unauthorized", func(c *gin.Context) { _ = c.Error(domain.NewUnauthorizedError("Unauthorized")) })
	r.GET("/missing", func(c *gin.Context) { _ = c.Error(domain.NewNotFoundError("joke")) })
	r.GET("/broken", func(c *gin.Context) { _ = c.Error(errors.New("connection reset")) })
	r.GET("/answered", func(c *gin.Context) {
		_ = c.Error(errors.New("logged only"))
		c.String(http.StatusOK, "fine")
	})

	w := do(r, http.MethodGet, "/unauthorized", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "You must be logged in to create a joke.")
	assert.Contains(t, w.Body.String(), `<a href="/login">Login</a>`)

	w = do(r, http.MethodGet, "/unauthorized", acceptJSON)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), `"code":"UNAUTHORIZED"`)

	w = do(r, http.MethodGet, "/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(r, http.MethodGet, "/broken", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection reset")

	w = do(r, http.MethodGet, "/answered", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "fine", w.Body.String())
}

type fakeSessions struct {
	id  uuid.UUID
	err error
}

func (f fakeSessions) UserID(*http.Request) (uuid.UUID, error) {
	return f.id, f.err
}

type fakeUsers map[uuid.UUID]error

func (f fakeUsers) GetUserByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	err, ok := f[id]
	if !ok {
		return nil, domain.NewNotFoundError("user")
	}
	if err != nil {
		return nil, err
	}
	return &domain.User{ID: id, Username: "kody"}, nil
}

func TestSession(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	users := fakeUsers{userID: nil}

	routes := func(r *gin.Engine) {
		r.GET("/whoami", func(c *gin.Context) {
			id, ok := middleware.OptionalUserID(c)
			if !ok {
				c.String(http.StatusOK, "anonymous")
				return
			}
			c.String(http.StatusOK, id.String())
		})
		r.POST("/jokes/new", func(c *gin.Context) {
			id, ok := middleware.RequireUserID(c)
			if !ok {
				return
			}
			c.String(http.StatusOK, id.String())
		})
	}

	t.Run("signed in", func(t *testing.T) {
		t.Parallel()

		r := newRouter(t, middleware.Session(fakeSessions{id: userID}, users, logger.Discard()))
		routes(r)

		assert.Equal(t, userID.String(), do(r, http.MethodGet, "/whoami", nil).Body.String())
		assert.Equal(t, userID.String(), do(r, http.MethodPost, "/jokes/new", nil).Body.String())
	})

	t.Run("bad cookie is anonymous", func(t *testing.T) {
		t.Parallel()

		r := newRouter(t, middleware.Session(fakeSessions{err: session.ErrInvalidToken}, users, logger.Discard()))
		routes(r)

		assert.Equal(t, "anonymous", do(r, http.MethodGet, "/whoami", nil).Body.String())
	})

	t.Run("deleted user is anonymous", func(t *testing.T) {
		t.Parallel()

		r := newRouter(t, middleware.RequestID(), middleware.Session(fakeSessions{id: uuid.New()}, users, logger.Discard()))
		routes(r)

		assert.Equal(t, "anonymous", do(r, http.MethodGet, "/whoami", nil).Body.String())
		w := do(r, http.MethodPost, "/jokes/new", acceptJSON)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("lookup failure renders the error boundary", func(t *testing.T) {
		t.Parallel()

		brokenID := uuid.New()
		broken := fakeUsers{brokenID: errors.New("connection refused")}
		r := newRouter(t,
			middleware.RequestID(),
			middleware.Boundary(),
			middleware.Session(fakeSessions{id: brokenID}, broken, logger.Discard()),
		)
		routes(r)

		w := do(r, http.MethodGet, "/whoami", nil)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "connection refused")
	})

	t.Run("required session", func(t *testing.T) {
		t.Parallel()

		r := newRouter(t, middleware.RequestID(), middleware.Session(fakeSessions{err: session.ErrNoSession}, users, logger.Discard()))
		routes(r)

		w := do(r, http.MethodPost, "/jokes/new", nil)
		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/login?redirectTo=%2Fjokes%2Fnew", w.Header().Get("Location"))

		w = do(r, http.MethodPost, "/jokes/new", acceptJSON)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), `"code":"UNAUTHORIZED"`)
	})
}

func TestRateLimiter(t *testing.T) {
	t.Parallel()

	t.Run("rejects over burst", func(t *testing.T) {
		t.Parallel()

		limiter := middleware.NewRateLimiter(1, 2)
		r := newRouter(t, middleware.RequestID(), limiter.Handler())
		r.POST("/login", func(c *gin.Context) { c.Status(http.StatusNoContent) })

		assert.Equal(t, http.StatusNoContent, do(r, http.MethodPost, "/login", nil).Code)
		assert.Equal(t, http.StatusNoContent, do(r, http.MethodPost, "/login", nil).Code)

		w := do(r, http.MethodPost, "/login", acceptJSON)
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Contains(t, w.Body.String(), `"code":"RATE_LIMITED"`)
	})

	t.Run("clients are independent and swept when idle", func(t *testing.T) {
		t.Parallel()

		now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		limiter := middleware.NewRateLimiter(1, 1)
		limiter.SetClock(func() time.Time { return now })

		assert.True(t, limiter.Allow("10.0.0.1"))
		assert.False(t, limiter.Allow("10.0.0.1"))
		assert.True(t, limiter.Allow("10.0.0.2"))
		assert.Equal(t, 2, limiter.Len())

		now = now.Add(time.Hour)
		assert.True(t, limiter.Allow("10.0.0.3"))
		assert.Equal(t, 1, limiter.Len())
	})
}

func TestCORS(t *testing.T) {
	t.Parallel()

	r := newRouter(t, middleware.CORS("https://jokes.example"))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := do(r, http.MethodOptions, "/", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://jokes.example", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))

	w = do(r, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "GET, POST, OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
}

func TestLogging(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.NewWithWriter(config.LogConfig{Level: "info", Format: "plain"}, &buf)

	r := newRouter(t, middleware.RequestID(), middleware.Logging(log))
	r.GET("/jokes/:id", func(c *gin.Context) { c.String(http.StatusNotFound, "nope") })

	do(r, http.MethodGet, "/jokes/abc?x=1", http.Header{middleware.RequestIDHeader: {"req-9"}})

	line := buf.String()
	assert.True(t, strings.HasPrefix(line, "request request_id=req-9 method=GET path=/jokes/abc?x=1 status=404"), line)
	assert.Contains(t, line, "size=4")
}
