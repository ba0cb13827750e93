package view

import (
	"github.com/google/uuid"

	"jokester/src/app/http/dto"
	"jokester/src/core/domain"
)

// NewJokePage is the model of the new-joke page.
type NewJokePage struct {
	FormError    string
	Name         string
	Content      string
	NameError    string
	ContentError string

	// Preview replaces the form when set.
	Preview *JokeDisplay
}

// NewJokeForm builds the form from the action's result, if any.
func NewJokeForm(data dto.JokeActionData) NewJokePage {
	page := NewJokePage{FormError: data.FormError}
	if data.Fields != nil {
		page.Name = data.Fields.Name
		page.Content = data.Fields.Content
	}
	if data.FieldErrors != nil {
		page.NameError = data.FieldErrors.Name
		page.ContentError = data.FieldErrors.Content
	}
	return page
}

// NewJokeSubmission builds the page shown while a submission is in flight.
// Values that already pass validation are previewed as the finished joke;
// anything else shows the form holding the values.
func NewJokeSubmission(name, content string, present bool) NewJokePage {
	if present && domain.ValidateJoke(name, content).Err() == nil {
		return NewJokePage{
			Preview: &JokeDisplay{
				Name:    name,
				Content: content,
				IsOwner: true,
			},
		}
	}
	return NewJokePage{Name: name, Content: content}
}

// JokeDisplay is a rendered joke. ID is empty for a preview.
type JokeDisplay struct {
	ID        string
	Name      string
	Content   string
	IsOwner   bool
	CanDelete bool
}

// NewJokeDisplay shows a stored joke to viewerID (uuid.Nil for anonymous viewers).
// Deleting is not offered by this service.
func NewJokeDisplay(j *domain.Joke, viewerID uuid.UUID) JokeDisplay {
	return JokeDisplay{
		ID:      j.ID.String(),
		Name:    j.Name,
		Content: j.Content,
		IsOwner: j.IsOwnedBy(viewerID),
	}
}

// LoginPage is the model of the login page.
type LoginPage struct {
	FormError     string
	LoginType     string
	Username      string
	UsernameError string
	PasswordError string
	RedirectTo    string
}

// NewLoginPage builds the login form from the action's result, if any.
func NewLoginPage(data dto.LoginActionData) LoginPage {
	page := LoginPage{
		FormError: data.FormError,
		LoginType: dto.LoginTypeLogin,
	}
	if data.Fields != nil {
		if data.Fields.LoginType != "" {
			page.LoginType = data.Fields.LoginType
		}
		page.Username = data.Fields.Username
		page.RedirectTo = data.Fields.RedirectTo
	}
	if data.FieldErrors != nil {
		page.UsernameError = data.FieldErrors.Username
		page.PasswordError = data.FieldErrors.Password
	}
	return page
}

// BoundaryPage is the model of the error pages.
type BoundaryPage struct {
	RequestID string
	LoginURL  string
}

func NewBoundaryPage(requestID string) BoundaryPage {
	return BoundaryPage{RequestID: requestID, LoginURL: "/login"}
}
