package view_test

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jokester/src/app/http/dto"
	"jokester/src/app/view"
	"jokester/src/core/domain"
)

func render(t *testing.T, name string, data any) string {
	t.Helper()

	tmpl, err := view.Templates()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tmpl.ExecuteTemplate(&buf, name, data))
	return buf.String()
}

func TestNewJokeForm(t *testing.T) {
	t.Parallel()

	t.Run("empty form", func(t *testing.T) {
		t.Parallel()

		html := render(t, view.PageNewJoke, view.NewJokeForm(dto.JokeActionData{}))
		assert.Contains(t, html, "Add your own hilarious joke")
		assert.NotContains(t, html, "aria-invalid")
		assert.NotContains(t, html, `role="alert"`)
	})

	t.Run("field errors annotate inputs and keep values", func(t *testing.T) {
		t.Parallel()

		data := dto.NewJokeValidationData(
			domain.ValidateJoke("A", "Why did the chicken cross the road?"),
			"A", "Why did the chicken cross the road?",
		)
		html := render(t, view.PageNewJoke, view.NewJokeForm(data))

		assert.Contains(t, html, `value="A" aria-invalid="true" aria-describedby="name-error"`)
		assert.Contains(t, html, `id="name-error">That joke&#39;s name is too short. Min 3 characters</p>`)
		assert.NotContains(t, html, "content-error")
		assert.Contains(t, html, ">Why did the chicken cross the road?</textarea>")
	})

	t.Run("form error is shown", func(t *testing.T) {
		t.Parallel()

		html := render(t, view.PageNewJoke, view.NewJokeForm(dto.JokeActionData{FormError: dto.MsgJokeFormMalformed}))
		assert.Contains(t, html, "Form not sumitted correctly. Name and Content are required.")
	})

	t.Run("submitted values are escaped", func(t *testing.T) {
		t.Parallel()

		page := view.NewJokeForm(dto.JokeActionData{Fields: &dto.JokeFields{Name: `"><script>`, Content: "</textarea>"}})
		html := render(t, view.PageNewJoke, page)
		assert.NotContains(t, html, "<script>")
		assert.NotContains(t, html, "</textarea></textarea>")
	})
}

func TestNewJokeSubmission(t *testing.T) {
	t.Parallel()

	t.Run("valid submission previews the joke", func(t *testing.T) {
		t.Parallel()

		page := view.NewJokeSubmission("Chuck", "Why did the chicken cross the road?", true)
		require.NotNil(t, page.Preview)
		assert.True(t, page.Preview.IsOwner)
		assert.False(t, page.Preview.CanDelete)

		html := render(t, view.FragmentNewJoke, page)
		assert.Contains(t, html, "Here's your hilarious joke:")
		assert.Contains(t, html, "<span>Chuck Permalink</span>")
		assert.Contains(t, html, "disabled")
		assert.NotContains(t, html, "<form method=\"post\" action=\"/jokes/new\">")
		assert.NotContains(t, html, "<!DOCTYPE html>")
	})

	t.Run("invalid submission keeps the form", func(t *testing.T) {
		t.Parallel()

		page := view.NewJokeSubmission("A", "Why did the chicken cross the road?", true)
		assert.Nil(t, page.Preview)
		assert.Equal(t, "A", page.Name)
		assert.Empty(t, page.NameError, "no errors before the server answers")
	})

	t.Run("missing fields never preview", func(t *testing.T) {
		t.Parallel()

		page := view.NewJokeSubmission("Chuck", "Why did the chicken cross the road?", false)
		assert.Nil(t, page.Preview)
	})
}

func TestJokeDisplay(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	joke := &domain.Joke{ID: uuid.New(), Name: "Chuck", Content: "Why did the chicken cross the road?", JokesterID: owner}

	html := render(t, view.PageJoke, view.NewJokeDisplay(joke, owner))
	assert.Contains(t, html, `<a href="/jokes/`+joke.ID.String()+`">Chuck Permalink</a>`)
	assert.Contains(t, html, "Delete")

	html = render(t, view.PageJoke, view.NewJokeDisplay(joke, uuid.Nil))
	assert.NotContains(t, html, "Delete")
}

func TestBoundaryPages(t *testing.T) {
	t.Parallel()

	html := render(t, view.PageUnauthorized, view.NewBoundaryPage("req-1"))
	assert.Contains(t, html, "You must be logged in to create a joke.")
	assert.Contains(t, html, `<a href="/login">Login</a>`)

	html = render(t, view.PageError, view.NewBoundaryPage("req-1"))
	assert.Contains(t, html, "Something unexpected went wrong. Sorry about that.")
	assert.Contains(t, html, "req-1")
}

func TestLoginPage(t *testing.T) {
	t.Parallel()

	page := view.NewLoginPage(dto.LoginActionData{})
	assert.Equal(t, dto.LoginTypeLogin, page.LoginType)

	data := dto.NewLoginValidationData(
		domain.ValidateCredentials("ko", "secret1"),
		dto.LoginFields{LoginType: dto.LoginTypeRegister, Username: "ko", RedirectTo: "/jokes/new"},
	)
	html := render(t, view.PageLogin, view.NewLoginPage(data))
	assert.Contains(t, html, `value="register" checked`)
	assert.Contains(t, html, `id="username-error">Usernames must be at least 3 characters long</p>`)
	assert.NotContains(t, html, "password-error")
	assert.Contains(t, html, `name="redirectTo" value="/jokes/new"`)
}
