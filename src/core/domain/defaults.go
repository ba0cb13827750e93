package domain

// Field names used in submitted forms and in FieldErrors.
const (
	FieldName     = "name"
	FieldContent  = "content"
	FieldUsername = "username"
	FieldPassword = "password"
)

// MinJokeNameLength is the minimum number of characters in a joke's name.
const MinJokeNameLength = 2

// MinJokeContentLength is the minimum number of characters in a joke's content.
const MinJokeContentLength = 11

// MinUsernameLength is the minimum number of characters in a username.
const MinUsernameLength = 3

// MinPasswordLength is the minimum number of characters in a password.
const MinPasswordLength = 6

// DefaultRedirectPath is where a successful login lands when no safe target was given.
const DefaultRedirectPath = "/jokes/new"
