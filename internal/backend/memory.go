// Copyright (c) 2025 CareerPrep
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"context"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"careerprep/cli/internal/errs"
)

// DefaultLatency is the simulated network delay of the memory backend.
// Callers correctly written against API must handle suspension, so the
// simulator never completes synchronously unless latency is set to zero.
const DefaultLatency = 500 * time.Millisecond

// Demo account pre-populated in every memory backend.
const (
	DemoEmail    = "demo@example.com"
	DemoPassword = "demo123"
)

// memorySignKey signs the simulator's tokens. The client never validates
// them; they exist only so issued tokens look and behave like real ones.
var memorySignKey = []byte("careerprep-memory-backend")

// account is a private directory entry of the memory backend.
type account struct {
	user     User
	password string
	token    string
}

// Memory simulates the auth backend in process. It maintains a private
// email directory and a reverse token lookup, neither exposed to callers,
// and delays every operation to mimic network latency.
type Memory struct {
	mu       sync.Mutex
	latency  time.Duration
	accounts map[string]*account // email -> account
	tokens   map[string]string   // token -> email
}

var _ API = (*Memory)(nil)

// NewMemory creates a memory backend with the given simulated latency
// and the demo account already registered.
func NewMemory(latency time.Duration) *Memory {
	m := &Memory{
		latency:  latency,
		accounts: make(map[string]*account),
		tokens:   make(map[string]string),
	}
	demo := &account{
		user:     User{ID: 1, Name: "Demo User", Email: DemoEmail},
		password: DemoPassword,
		token:    mintToken(DemoEmail),
	}
	m.accounts[DemoEmail] = demo
	m.tokens[demo.token] = DemoEmail
	return m
}

// Login verifies the credentials against the directory.
func (m *Memory) Login(ctx context.Context, email, password string) (AuthResponse, error) {
	if err := m.sleep(ctx); err != nil {
		return AuthResponse{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	acc, ok := m.accounts[email]
	if !ok || acc.password != password {
		return AuthResponse{}, errs.New(errs.InvalidCredentials, "Invalid email or password")
	}
	return AuthResponse{
		User:         acc.user,
		Token:        acc.token,
		RefreshToken: "refresh-" + acc.token,
	}, nil
}

// Register creates a new account. Registration does not issue a session;
// the caller still has to log in.
func (m *Memory) Register(ctx context.Context, name, email, password string) (string, error) {
	if err := m.sleep(ctx); err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.accounts[email]; exists {
		return "", errs.New(errs.DuplicateEmail, "Email already registered")
	}
	acc := &account{
		user:     User{ID: len(m.accounts) + 1, Name: name, Email: email},
		password: password,
		token:    mintToken(email),
	}
	m.accounts[email] = acc
	m.tokens[acc.token] = email
	return "Registration successful! You can now log in.", nil
}

// Me resolves a token through the reverse lookup.
func (m *Memory) Me(ctx context.Context, token string) (User, error) {
	if err := m.sleep(ctx); err != nil {
		return User{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	email, ok := m.tokens[token]
	if !ok {
		return User{}, errs.New(errs.InvalidToken, "Invalid token")
	}
	return m.accounts[email].user, nil
}

// VerifyEmail always succeeds; the simulator tracks no verification state.
// A real backend must reject unknown or expired tokens with errs.InvalidToken.
func (m *Memory) VerifyEmail(ctx context.Context, token string) (string, error) {
	if err := m.sleep(ctx); err != nil {
		return "", err
	}
	return "Email verified successfully!", nil
}

// sleep simulates network latency, honoring context cancellation.
func (m *Memory) sleep(ctx context.Context) error {
	if m.latency <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return errs.Wrap(errs.BackendFailure, "", ctx.Err())
	case <-time.After(m.latency):
		return nil
	}
}

// mintToken issues a signed HS256 token for the given subject. Tokens are
// opaque to the client; signing just makes them realistic and unique.
func mintToken(email string) string {
	claims := jwt.RegisteredClaims{
		Subject:  email,
		ID:       uuid.NewString(),
		IssuedAt: jwt.NewNumericDate(time.Now()),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(memorySignKey)
	if err != nil {
		// HS256 signing of registered claims cannot fail with a valid key.
		panic(err)
	}
	return signed
}
