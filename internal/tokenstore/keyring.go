// Copyright (c) 2025 CareerPrep
// Licensed under the MIT License. See LICENSE file in the project root for details.

package tokenstore

import (
	"errors"
	"sync"

	"github.com/99designs/keyring"

	"careerprep/cli/internal/xdg"
)

// ServiceName identifies our keychain/credential store namespace.
const ServiceName = "careerprep"

// Keys used for storing secrets in the OS keychain.
const (
	KeyAccessToken  = "auth_token"
	KeyRefreshToken = "auth_refresh_token"
)

// Keyring persists tokens in the OS keychain via the keyring library.
// On platforms without a native credential store it falls back to an
// encrypted file under the XDG state directory.
type Keyring struct {
	mu   sync.Mutex
	ring keyring.Keyring
}

var _ Store = (*Keyring)(nil)

// OpenKeyring opens the OS keyring for the careerprep namespace.
func OpenKeyring() (*Keyring, error) {
	fileDir, err := xdg.StateDir()
	if err != nil {
		return nil, err
	}

	ring, err := keyring.Open(keyring.Config{
		ServiceName:              ServiceName,
		KeychainTrustApplication: true,
		WinCredPrefix:            ServiceName,
		PassPrefix:               ServiceName,
		FileDir:                  fileDir,
		FilePasswordFunc:         keyring.FixedStringPrompt(ServiceName),
	})
	if err != nil {
		return nil, err
	}
	return &Keyring{ring: ring}, nil
}

// Get reads both token slots. Missing keys yield empty strings.
func (k *Keyring) Get() (Tokens, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	var t Tokens
	access, err := k.read(KeyAccessToken)
	if err != nil {
		return Tokens{}, err
	}
	refresh, err := k.read(KeyRefreshToken)
	if err != nil {
		return Tokens{}, err
	}
	t.AccessToken = access
	t.RefreshToken = refresh
	return t, nil
}

// Set writes each non-empty slot as an independent keychain item.
func (k *Keyring) Set(t Tokens) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	if t.AccessToken != "" {
		if err := k.ring.Set(keyring.Item{Key: KeyAccessToken, Data: []byte(t.AccessToken)}); err != nil {
			return err
		}
	}
	if t.RefreshToken != "" {
		if err := k.ring.Set(keyring.Item{Key: KeyRefreshToken, Data: []byte(t.RefreshToken)}); err != nil {
			return err
		}
	}
	return nil
}

// Clear removes both slots. Keys that were never set are not an error.
func (k *Keyring) Clear() error {
	k.mu.Lock()
	defer k.mu.Unlock()

	for _, key := range []string{KeyAccessToken, KeyRefreshToken} {
		if err := k.ring.Remove(key); err != nil && !errors.Is(err, keyring.ErrKeyNotFound) {
			return err
		}
	}
	return nil
}

func (k *Keyring) read(key string) (string, error) {
	item, err := k.ring.Get(key)
	if err != nil {
		if errors.Is(err, keyring.ErrKeyNotFound) {
			return "", nil
		}
		return "", err
	}
	return string(item.Data), nil
}
