// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session owns the current-user pointer and the account lifecycle.
package session

import "errors"

// =============================================================================
// ERROR TAXONOMY
// =============================================================================

// ValidationError reports malformed registration input. Validation is
// ordered and short-circuit, so a registration attempt yields at most one
// of these.
type ValidationError struct {
	Field   string // "username", "email", "password", "confirm_password"
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Message
}

// Is implements errors.Is support for comparing validation errors by field.
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	if !ok {
		return false
	}
	return e.Field == t.Field
}

// The four validation failures, in the order they are checked.
var (
	ErrUsernameTooShort = &ValidationError{Field: "username", Message: "username must be at least 3 characters"}
	ErrEmailMalformed   = &ValidationError{Field: "email", Message: "enter a valid email address"}
	ErrPasswordTooShort = &ValidationError{Field: "password", Message: "password must be at least 6 characters"}
	ErrPasswordMismatch = &ValidationError{Field: "confirm_password", Message: "passwords do not match"}
)

// UniquenessError reports a registration conflict with an existing account.
type UniquenessError struct {
	Field string // "email" or "username"
}

// Error implements the error interface.
func (e *UniquenessError) Error() string {
	switch e.Field {
	case "email":
		return "a user with this email already exists"
	default:
		return "this username is already taken"
	}
}

// Is implements errors.Is support for comparing uniqueness errors by field.
func (e *UniquenessError) Is(target error) bool {
	t, ok := target.(*UniquenessError)
	if !ok {
		return false
	}
	return e.Field == t.Field
}

var (
	ErrEmailTaken    = &UniquenessError{Field: "email"}
	ErrUsernameTaken = &UniquenessError{Field: "username"}
)

// ErrInvalidCredentials is the single, deliberately undifferentiated login
// failure: it never reveals whether the login identifier or the password
// was wrong.
var ErrInvalidCredentials = errors.New("invalid email/username or password")
