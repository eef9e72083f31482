// Copyright (c) 2025 CareerPrep
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package tokenstore provides durable persistence for session tokens.
//
// The access token and refresh token occupy two independent slots; either may
// be absent. Writes are immediately durable and idempotent per slot, so a
// crash between writes never leaves a pair the caller did not intend. The
// session store is the only component that writes through this package.
package tokenstore

// Tokens is the durable token pair. Either field may be empty.
type Tokens struct {
	AccessToken  string
	RefreshToken string
}

// Store is the persistence contract consumed by the session store.
// Implementations must treat absent slots as empty strings, not errors.
type Store interface {
	// Get reads both slots. Missing slots yield empty strings.
	Get() (Tokens, error)
	// Set writes each non-empty slot independently; empty fields are left
	// untouched. Order of the two writes is not significant.
	Set(t Tokens) error
	// Clear removes both slots, even if only one was ever set.
	Clear() error
}
