package dto

import "jokester/src/core/domain"

// Login form types.
const (
	LoginTypeLogin    = "login"
	LoginTypeRegister = "register"
)

const (
	// MsgLoginFormMalformed is the form error for a submission missing a field.
	MsgLoginFormMalformed = "Form not submitted correctly."
	// MsgLoginTypeInvalid is the form error for an unknown loginType.
	MsgLoginTypeInvalid = "Login type invalid"
)

// LoginActionData is the 400 payload of the login action.
type LoginActionData struct {
	FormError   string            `json:"formError,omitempty"`
	FieldErrors *LoginFieldErrors `json:"fieldErrors,omitempty"`
	Fields      *LoginFields      `json:"fields,omitempty"`
}

// LoginFieldErrors holds the per-field messages; valid fields are empty.
type LoginFieldErrors struct {
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`
}

// LoginFields echoes the submitted values. The password is never echoed.
type LoginFields struct {
	LoginType  string `json:"loginType"`
	Username   string `json:"username"`
	RedirectTo string `json:"redirectTo"`
}

// NewLoginValidationData builds the payload for credentials that failed validation.
func NewLoginValidationData(errs domain.FieldErrors, fields LoginFields) LoginActionData {
	return LoginActionData{
		FieldErrors: &LoginFieldErrors{
			Username: errs[domain.FieldUsername],
			Password: errs[domain.FieldPassword],
		},
		Fields: &fields,
	}
}
