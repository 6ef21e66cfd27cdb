package domain

import "errors"

// Auth errors
var (
	ErrEmailTaken         = errors.New("an account already exists with this email")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

// Matchup errors
var (
	ErrMatchupNotFound = errors.New("matchup not found")
	ErrValidation      = errors.New("validation failed")
)
