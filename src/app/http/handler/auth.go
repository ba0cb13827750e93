package handler

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"jokester/src/app/http/dto"
	"jokester/src/app/http/response"
	"jokester/src/app/middleware"
	"jokester/src/app/view"
	"jokester/src/core/domain"
	"jokester/src/core/usecase"
)

// SessionStore starts and ends the browser session.
type SessionStore interface {
	Commit(w http.ResponseWriter, userID uuid.UUID) error
	Destroy(w http.ResponseWriter)
}

// AuthHandler handles signing in, registering and signing out.
type AuthHandler struct {
	auth     *usecase.AuthService
	sessions SessionStore
	log      *slog.Logger
}

func NewAuthHandler(auth *usecase.AuthService, sessions SessionStore, log *slog.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, sessions: sessions, log: log}
}

// LoginForm renders the login page.
// GET /login
func (h *AuthHandler) LoginForm(c *gin.Context) {
	data := dto.LoginActionData{
		Fields: &dto.LoginFields{
			LoginType:  dto.LoginTypeLogin,
			RedirectTo: safeRedirect(c.Query("redirectTo")),
		},
	}
	c.HTML(http.StatusOK, view.PageLogin, view.NewLoginPage(data))
}

// Login signs a user in or registers them, depending on loginType, and
// redirects to redirectTo with a fresh session.
// POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	loginType, hasType := postFormText(c, "loginType")
	username, hasUsername := postFormText(c, "username")
	password, hasPassword := postFormText(c, "password")
	fields := dto.LoginFields{
		LoginType:  loginType,
		Username:   username,
		RedirectTo: safeRedirect(c.PostForm("redirectTo")),
	}

	if !hasType || !hasUsername || !hasPassword {
		h.rejectLogin(c, dto.LoginActionData{FormError: dto.MsgLoginFormMalformed, Fields: &fields})
		return
	}
	if fieldErrs := domain.ValidateCredentials(username, password); len(fieldErrs) > 0 {
		h.rejectLogin(c, dto.NewLoginValidationData(fieldErrs, fields))
		return
	}

	creds := usecase.Credentials{Username: username, Password: password}
	var (
		user *domain.User
		err  error
	)
	switch loginType {
	case dto.LoginTypeLogin:
		user, err = h.auth.Login(c.Request.Context(), creds)
	case dto.LoginTypeRegister:
		user, err = h.auth.Register(c.Request.Context(), creds)
	default:
		h.rejectLogin(c, dto.LoginActionData{FormError: dto.MsgLoginTypeInvalid, Fields: &fields})
		return
	}
	if err != nil {
		if domain.IsUnauthorized(err) || domain.IsConflict(err) {
			h.rejectLogin(c, dto.LoginActionData{FormError: domain.Message(err), Fields: &fields})
			return
		}
		_ = c.Error(err)
		return
	}

	if err := h.sessions.Commit(c.Writer, user.ID); err != nil {
		_ = c.Error(err)
		return
	}
	h.log.Info("user signed in",
		"request_id", middleware.GetRequestID(c),
		"user_id", user.ID,
		"login_type", loginType,
	)
	c.Redirect(http.StatusSeeOther, fields.RedirectTo)
}

func (h *AuthHandler) rejectLogin(c *gin.Context, data dto.LoginActionData) {
	if response.WantsJSON(c) {
		c.JSON(http.StatusBadRequest, data)
		return
	}
	c.HTML(http.StatusBadRequest, view.PageLogin, view.NewLoginPage(data))
}

// Logout clears the session cookie.
// POST /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	h.sessions.Destroy(c.Writer)
	c.Redirect(http.StatusSeeOther, middleware.LoginPath)
}

// safeRedirect keeps redirects on this site. Anything that isn't a local
// path falls back to the new-joke page. Browsers drop tabs and newlines
// from URLs, so control characters are rejected outright.
func safeRedirect(to string) string {
	if strings.ContainsFunc(to, unicode.IsControl) || !isLocalPath(to) {
		return domain.DefaultRedirectPath
	}

	u, err := url.Parse(to)
	if err != nil || u.Scheme != "" || u.Host != "" || u.User != nil || !isLocalPath(u.Path) {
		return domain.DefaultRedirectPath
	}
	return to
}

func isLocalPath(p string) bool {
	return strings.HasPrefix(p, "/") && !strings.HasPrefix(p, "//") && !strings.HasPrefix(p, "/\\")
}
