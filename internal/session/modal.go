// Copyright (c) 2025 CareerPrep
// Licensed under the MIT License. See LICENSE file in the project root for details.

package session

import "sync"

// View identifies the active pane of the auth modal.
type View string

const (
	ViewLogin    View = "login"
	ViewRegister View = "register"
)

// ModalState is the published open/closed state of the auth prompt.
// View is meaningful only while Open is true, but its last value is retained
// when closed so reopening defaults to the last requested view.
type ModalState struct {
	Open bool `json:"open"`
	View View `json:"view"`
}

// Modal is the sub-state machine for the auth prompt's visibility.
// There is no submitting or error sub-state; error feedback is delegated
// entirely to the notification sink and never affects visibility.
type Modal struct {
	mu    sync.Mutex
	state ModalState
}

// newModal creates a closed modal defaulting to the login view.
func newModal() *Modal {
	return &Modal{state: ModalState{View: ViewLogin}}
}

// Open opens the modal. With a view argument it switches to that view;
// without one it keeps the last-known view. Valid from any state.
func (m *Modal) Open(view ...View) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(view) > 0 && view[0] != "" {
		m.state.View = view[0]
	}
	m.state.Open = true
}

// Close closes the modal from any state, retaining the view for the next open.
func (m *Modal) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.Open = false
}

// State returns the current modal state.
func (m *Modal) State() ModalState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}
