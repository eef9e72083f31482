// Copyright (c) 2025 CareerPrep
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package backend provides interfaces and implementations for communicating with
// the CareerPrep auth backend. It defines the API contract for credential
// verification and identity lookup. The package includes both an HTTP
// implementation talking to the real service and an in-memory implementation
// that simulates it, selected by configuration at the boundary.
package backend

import "context"

// User is the identity record returned by the backend.
// It is immutable once returned; the session store replaces it wholesale.
type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AuthResponse is the result of a successful login.
type AuthResponse struct {
	User         User   `json:"user"`
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken,omitempty"`
}

// API defines the auth operations the session store depends on.
// All operations may suspend on I/O and may fail; failures carry an
// errs.Kind so callers can tell expected outcomes from transport errors.
type API interface {
	// Login verifies credentials and returns the user with a fresh token.
	// Fails with errs.InvalidCredentials when no account matches.
	Login(ctx context.Context, email, password string) (AuthResponse, error)
	// Register creates an account and returns a human-readable message.
	// It does not sign the user in. Fails with errs.DuplicateEmail when the
	// email is already registered.
	Register(ctx context.Context, name, email, password string) (string, error)
	// Me resolves a token to its user for session restore.
	// Fails with errs.InvalidToken when the token maps to no active session.
	Me(ctx context.Context, token string) (User, error)
	// VerifyEmail confirms an email verification token and returns a message.
	VerifyEmail(ctx context.Context, token string) (string, error)
}
