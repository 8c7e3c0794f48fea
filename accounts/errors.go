package accounts

import "errors"

var (
	ErrEmptyField      = errors.New("empty username or password")
	ErrDuplicateUser   = errors.New("username already exists")
	ErrInvalidUsername = errors.New("invalid username")
	ErrUserNotFound    = errors.New("user not found")
	ErrWrongPassword   = errors.New("incorrect password")
)

// Message returns the text shown to the user for an account error.
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrEmptyField):
		return "Please enter both username and password."
	case errors.Is(err, ErrDuplicateUser):
		return "Username already exists!"
	case errors.Is(err, ErrInvalidUsername):
		return "Username cannot be used as a folder name."
	case errors.Is(err, ErrUserNotFound):
		return "User not found! Please sign up."
	case errors.Is(err, ErrWrongPassword):
		return "Incorrect password!"
	}
	return err.Error()
}
