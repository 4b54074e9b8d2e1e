// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors. The input sentinels carry the user-facing
// guard text; the backend and configuration sentinels are wrapped at the
// API client boundary.
var (
	// Input errors.
	ErrEmptyTransaction = errors.New("enter a transaction description first")
	ErrNoLabel          = errors.New("select a category label first")
	ErrNoFile           = errors.New("select a file first")
	ErrNoPrediction     = errors.New("no prediction to add yet")

	// Backend errors.
	ErrAPIUnavailable = errors.New("categorizer API unavailable")
	ErrTaxonomyLoad   = errors.New("taxonomy load failed")

	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}
