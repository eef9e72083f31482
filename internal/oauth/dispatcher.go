// Copyright (c) 2025 CareerPrep
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package oauth dispatches sign-in redirects to configured third-party
// providers. No authorization-code or token exchange happens here; the
// dispatcher only resolves a provider name to its configured URL and hands
// control to the provider. When a redirect succeeds, nothing the caller does
// afterwards is guaranteed to run, since navigation may unload the context.
package oauth

import (
	"fmt"
	"strings"

	"careerprep/cli/internal/errs"
	"careerprep/cli/internal/notify"
)

// Dispatcher resolves provider names to redirect URLs and performs the
// navigation. The auth-modal close handle is injected as a function so the
// dispatcher never reaches into ambient session state.
type Dispatcher struct {
	urls       map[string]string
	redirector Redirector
	sink       notify.Sink
	closeModal func()
}

// NewDispatcher creates a dispatcher over the provider→URL table.
// Keys are matched case-insensitively. closeModal may be nil.
func NewDispatcher(urls map[string]string, r Redirector, sink notify.Sink, closeModal func()) *Dispatcher {
	normalized := make(map[string]string, len(urls))
	for k, v := range urls {
		normalized[strings.ToLower(k)] = v
	}
	return &Dispatcher{
		urls:       normalized,
		redirector: r,
		sink:       sink,
		closeModal: closeModal,
	}
}

// SignIn dispatches a redirect to the named provider. On success it closes
// the auth modal, navigates, and emits an informational notification. When
// the provider has no configured URL it emits an error notification and
// fails with errs.OAuthNotConfigured; the modal stays as it was.
func (d *Dispatcher) SignIn(provider string) error {
	url, ok := d.urls[strings.ToLower(provider)]
	if !ok || url == "" {
		d.sink.Error(fmt.Sprintf("%s sign-in is not configured yet", provider))
		return errs.New(errs.OAuthNotConfigured, "OAuth not configured")
	}

	if d.closeModal != nil {
		d.closeModal()
	}
	if err := d.redirector.Redirect(url); err != nil {
		d.sink.Error(fmt.Sprintf("Could not open %s sign-in", provider))
		return errs.Wrap(errs.BackendFailure, "OAuth redirect failed", err)
	}
	d.sink.Info(fmt.Sprintf("Redirecting to %s...", provider))
	return nil
}
