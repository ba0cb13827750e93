package dto

import (
	"time"

	"jokester/src/core/domain"
)

// MsgJokeFormMalformed is the form error for a submission missing name or content.
const MsgJokeFormMalformed = "Form not sumitted correctly. Name and Content are required."

// JokeActionData is the 400 payload of the create-joke action.
type JokeActionData struct {
	FormError   string           `json:"formError,omitempty"`
	FieldErrors *JokeFieldErrors `json:"fieldErrors,omitempty"`
	Fields      *JokeFields      `json:"fields,omitempty"`
}

// JokeFieldErrors holds the per-field messages; valid fields are empty.
type JokeFieldErrors struct {
	Name    string `json:"name,omitempty"`
	Content string `json:"content,omitempty"`
}

// JokeFields echoes the submitted values.
type JokeFields struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

// NewJokeValidationData builds the payload for a submission that failed validation.
func NewJokeValidationData(errs domain.FieldErrors, name, content string) JokeActionData {
	return JokeActionData{
		FieldErrors: &JokeFieldErrors{
			Name:    errs[domain.FieldName],
			Content: errs[domain.FieldContent],
		},
		Fields: &JokeFields{
			Name:    name,
			Content: content,
		},
	}
}

// JokeResponse is the JSON form of a joke.
type JokeResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Content    string    `json:"content"`
	JokesterID string    `json:"jokesterId"`
	CreatedAt  time.Time `json:"createdAt"`
}

// NewJokeResponse converts a domain joke.
func NewJokeResponse(j *domain.Joke) JokeResponse {
	return JokeResponse{
		ID:         j.ID.String(),
		Name:       j.Name,
		Content:    j.Content,
		JokesterID: j.JokesterID.String(),
		CreatedAt:  j.CreatedAt,
	}
}
