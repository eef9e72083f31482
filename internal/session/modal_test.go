package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModalDefaultsClosedOnLoginView(t *testing.T) {
	m := newModal()
	assert.Equal(t, ModalState{Open: false, View: ViewLogin}, m.State())
}

func TestModalOpenDefaultsToLogin(t *testing.T) {
	m := newModal()
	m.Open()
	assert.Equal(t, ModalState{Open: true, View: ViewLogin}, m.State())
}

func TestModalRetainsLastViewAcrossClose(t *testing.T) {
	m := newModal()

	m.Open()
	m.Open(ViewRegister)
	m.Close()
	require.False(t, m.State().Open)

	// Reopening without an explicit view restores the last requested one.
	m.Open()
	assert.Equal(t, ModalState{Open: true, View: ViewRegister}, m.State())
}

func TestModalExplicitViewWins(t *testing.T) {
	m := newModal()
	m.Open(ViewRegister)
	m.Close()

	m.Open(ViewLogin)
	assert.Equal(t, ModalState{Open: true, View: ViewLogin}, m.State())
}

func TestModalCloseIsValidFromAnyState(t *testing.T) {
	m := newModal()
	m.Close() // already closed
	assert.False(t, m.State().Open)

	m.Open(ViewRegister)
	m.Close()
	m.Close()
	assert.Equal(t, ModalState{Open: false, View: ViewRegister}, m.State())
}
