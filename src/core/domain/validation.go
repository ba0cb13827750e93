package domain

import "unicode/utf8"

// The minimums in these messages read one higher (name) and one lower (content)
// than the lengths actually enforced. Existing users see these exact strings.
const (
	msgJokeNameTooShort    = "That joke's name is too short. Min 3 characters"
	msgJokeContentTooShort = "That joke's content is too short. Min 10 characters"
	msgUsernameTooShort    = "Usernames must be at least 3 characters long"
	msgPasswordTooShort    = "Passwords must be at least 6 characters long"
)

// ValidateJokeName returns a message when name is too short, or "" when it is valid.
func ValidateJokeName(name string) string {
	if utf8.RuneCountInString(name) < MinJokeNameLength {
		return msgJokeNameTooShort
	}
	return ""
}

// ValidateJokeContent returns a message when content is too short, or "" when it is valid.
func ValidateJokeContent(content string) string {
	if utf8.RuneCountInString(content) < MinJokeContentLength {
		return msgJokeContentTooShort
	}
	return ""
}

// ValidateJoke runs both joke validators.
func ValidateJoke(name, content string) FieldErrors {
	errs := FieldErrors{}
	errs.Add(FieldName, ValidateJokeName(name))
	errs.Add(FieldContent, ValidateJokeContent(content))
	return errs
}

// ValidateUsername returns a message when username is too short.
func ValidateUsername(username string) string {
	if utf8.RuneCountInString(username) < MinUsernameLength {
		return msgUsernameTooShort
	}
	return ""
}

// ValidatePassword returns a message when password is too short.
func ValidatePassword(password string) string {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return msgPasswordTooShort
	}
	return ""
}

// ValidateCredentials runs the username and password validators.
func ValidateCredentials(username, password string) FieldErrors {
	errs := FieldErrors{}
	errs.Add(FieldUsername, ValidateUsername(username))
	errs.Add(FieldPassword, ValidatePassword(password))
	return errs
}
