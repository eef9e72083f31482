// Copyright (c) 2025 CareerPrep
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"careerprep/cli/internal/errs"
)

// REST API endpoint paths.
const (
	pathLogin       = "/api/auth/login"
	pathRegister    = "/api/auth/register"
	pathMe          = "/api/auth/me"
	pathVerifyEmail = "/api/auth/verify-email"
)

// HTTP implements API over REST endpoints.
type HTTP struct {
	// baseURL is the base URL for all requests (e.g., "https://api.careerprep.dev")
	baseURL string
	// client is the underlying HTTP client with configured timeout
	client *http.Client
}

var _ API = (*HTTP)(nil)

// newHTTP creates a new HTTP client with the given base URL.
// It configures a 10-second timeout for all requests.
func newHTTP(baseURL string) *HTTP {
	return &HTTP{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Login calls POST /api/auth/login with the credentials as JSON.
func (h *HTTP) Login(ctx context.Context, email, password string) (AuthResponse, error) {
	body := map[string]string{"email": email, "password": password}
	resp, err := h.postJSON(ctx, pathLogin, body, "")
	if err != nil {
		return AuthResponse{}, errs.Wrap(errs.BackendFailure, "Login failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		if resp.StatusCode == http.StatusUnauthorized {
			return AuthResponse{}, readError(resp, errs.InvalidCredentials, "Invalid email or password")
		}
		return AuthResponse{}, readError(resp, errs.BackendFailure, "Login failed")
	}

	var out AuthResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return AuthResponse{}, errs.Wrap(errs.BackendFailure, "Login failed", err)
	}
	return out, nil
}

// Register calls POST /api/auth/register and returns the backend's message.
func (h *HTTP) Register(ctx context.Context, name, email, password string) (string, error) {
	body := map[string]string{"name": name, "email": email, "password": password}
	resp, err := h.postJSON(ctx, pathRegister, body, "")
	if err != nil {
		return "", errs.Wrap(errs.BackendFailure, "Registration failed", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		return readMessage(resp.Body), nil
	case http.StatusConflict:
		return "", readError(resp, errs.DuplicateEmail, "Email already registered")
	default:
		return "", readError(resp, errs.BackendFailure, "Registration failed")
	}
}

// Me calls GET /api/auth/me with an Authorization header.
func (h *HTTP) Me(ctx context.Context, token string) (User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.baseURL+pathMe, nil)
	if err != nil {
		return User{}, errs.Wrap(errs.BackendFailure, "", err)
	}
	h.setStandardHeaders(req)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return User{}, errs.Wrap(errs.BackendFailure, "", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		if resp.StatusCode == http.StatusUnauthorized {
			return User{}, readError(resp, errs.InvalidToken, "Invalid token")
		}
		return User{}, readError(resp, errs.BackendFailure, "")
	}

	var out struct {
		User User `json:"user"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return User{}, errs.Wrap(errs.BackendFailure, "", err)
	}
	return out.User, nil
}

// VerifyEmail calls POST /api/auth/verify-email with the verification token.
func (h *HTTP) VerifyEmail(ctx context.Context, token string) (string, error) {
	resp, err := h.postJSON(ctx, pathVerifyEmail, map[string]string{"token": token}, "")
	if err != nil {
		return "", errs.Wrap(errs.BackendFailure, "Verification failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusBadRequest {
			return "", readError(resp, errs.InvalidToken, "Invalid token")
		}
		return "", readError(resp, errs.BackendFailure, "Verification failed")
	}
	return readMessage(resp.Body), nil
}

// postJSON posts a JSON body to baseURL+path with standard headers.
func (h *HTTP) postJSON(ctx context.Context, path string, body map[string]string, token string) (*http.Response, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.baseURL+path, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	h.setStandardHeaders(req)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return h.client.Do(req)
}

// setStandardHeaders applies headers common to all requests.
func (h *HTTP) setStandardHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/json, */*")
	req.Header.Set("User-Agent", "careerprep-cli")
}

// readMessage extracts a "message" field from a JSON body, tolerating
// other shapes by returning an empty string.
func readMessage(r io.Reader) string {
	var out struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r).Decode(&out); err != nil {
		return ""
	}
	return strings.TrimSpace(out.Message)
}

// readError builds a typed error for a non-OK response, preferring the
// backend-supplied message ("error" or "message" field) over the fallback.
func readError(resp *http.Response, kind errs.Kind, fallback string) error {
	msg := fallback
	var raw struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err == nil {
		if m := strings.TrimSpace(raw.Error); m != "" {
			msg = m
		} else if m := strings.TrimSpace(raw.Message); m != "" {
			msg = m
		}
	}
	return errs.New(kind, msg)
}
