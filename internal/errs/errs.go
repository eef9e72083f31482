// Copyright (c) 2025 CareerPrep
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package errs defines typed errors with categories for user-friendly reporting.
// It provides a structured approach to error handling with machine-readable error kinds
// and human-friendly messages, so callers can distinguish expected outcomes (wrong
// password, duplicate email) from transport failures without string matching.
//
// The package supports wrapping underlying errors while maintaining error kind
// information, making it easier to handle different types of failures appropriately.
package errs

import (
	stderrors "errors"
	"fmt"
)

// Kind is a machine-readable error category.
type Kind string

const (
	// InvalidCredentials indicates a login attempt with no matching account
	// or a password mismatch.
	InvalidCredentials Kind = "invalid_credentials"
	// DuplicateEmail indicates a registration attempt for an email that is
	// already registered.
	DuplicateEmail Kind = "duplicate_email"
	// InvalidToken indicates a token that does not map to an active session.
	InvalidToken Kind = "invalid_token"
	// OAuthNotConfigured indicates an OAuth provider with no configured
	// redirect URL.
	OAuthNotConfigured Kind = "oauth_not_configured"
	// BackendFailure is the catch-all for transport and unexpected errors.
	BackendFailure Kind = "backend_failure"
)

// E wraps an error with kind and human-friendly message.
type E struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *E) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *E) Unwrap() error { return e.Err }

func Wrap(kind Kind, msg string, err error) *E { return &E{Kind: kind, Message: msg, Err: err} }
func New(kind Kind, msg string) *E             { return &E{Kind: kind, Message: msg} }

// KindOf returns the kind carried by err, or BackendFailure when err carries none.
func KindOf(err error) Kind {
	var e *E
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return BackendFailure
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	var e *E
	return stderrors.As(err, &e) && e.Kind == kind
}

// UserMessage returns the human-friendly message carried by err,
// or fallback when err carries none.
func UserMessage(err error, fallback string) string {
	var e *E
	if stderrors.As(err, &e) && e.Message != "" {
		return e.Message
	}
	return fallback
}
