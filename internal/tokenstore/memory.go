// Copyright (c) 2025 CareerPrep
// Licensed under the MIT License. See LICENSE file in the project root for details.

package tokenstore

import "sync"

// Memory is an in-process Store for tests and ephemeral sessions.
type Memory struct {
	mu     sync.Mutex
	tokens Tokens
}

var _ Store = (*Memory)(nil)

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory { return &Memory{} }

func (m *Memory) Get() (Tokens, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tokens, nil
}

func (m *Memory) Set(t Tokens) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if t.AccessToken != "" {
		m.tokens.AccessToken = t.AccessToken
	}
	if t.RefreshToken != "" {
		m.tokens.RefreshToken = t.RefreshToken
	}
	return nil
}

func (m *Memory) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tokens = Tokens{}
	return nil
}
