package tokenstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySetWritesSlotsIndependently(t *testing.T) {
	m := NewMemory()

	require.NoError(t, m.Set(Tokens{AccessToken: "access-1"}))
	got, err := m.Get()
	require.NoError(t, err)
	assert.Equal(t, "access-1", got.AccessToken)
	assert.Empty(t, got.RefreshToken)

	// Writing only the refresh slot must not disturb the access slot.
	require.NoError(t, m.Set(Tokens{RefreshToken: "refresh-1"}))
	got, err = m.Get()
	require.NoError(t, err)
	assert.Equal(t, "access-1", got.AccessToken)
	assert.Equal(t, "refresh-1", got.RefreshToken)

	// Overwriting the access slot alone leaves the refresh slot intact.
	require.NoError(t, m.Set(Tokens{AccessToken: "access-2"}))
	got, err = m.Get()
	require.NoError(t, err)
	assert.Equal(t, "access-2", got.AccessToken)
	assert.Equal(t, "refresh-1", got.RefreshToken)
}

func TestMemoryClearRemovesBothSlots(t *testing.T) {
	m := NewMemory()
	require.NoError(t, m.Set(Tokens{AccessToken: "a", RefreshToken: "r"}))

	require.NoError(t, m.Clear())
	got, err := m.Get()
	require.NoError(t, err)
	assert.Equal(t, Tokens{}, got)

	// Clear on an already-empty store is still fine.
	require.NoError(t, m.Clear())
}
