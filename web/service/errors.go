package service

import "errors"

var (
	// ErrUnauthorized is returned when an anonymous actor attempts a write
	// that requires an authenticated author.
	ErrUnauthorized = errors.New("authentication required")

	// ErrWrongPassword is returned when the login exists but the submitted
	// password does not match.
	ErrWrongPassword = errors.New("incorrect password")

	// ErrLoginTaken is returned when registration collides with an
	// existing login name.
	ErrLoginTaken = errors.New("login already taken")
)
