package auth

import "errors"

var (
	// ErrDuplicateUser means the username or email is already taken.
	ErrDuplicateUser = errors.New("username or email already exists")
	// ErrUserNotFound means no account matches the given username.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password, so login responses cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken means the token is malformed, tampered or expired.
	ErrInvalidToken = errors.New("invalid token")
)
