package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreatesRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "nested", "store")

	_, err := New(root)
	require.NoError(t, err)

	info, err := os.Stat(root)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestLoadMissingKey(t *testing.T) {
	b, err := New(t.TempDir())
	require.NoError(t, err)

	data, ok, err := b.Load("absent")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, data)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	b, err := New(t.TempDir())
	require.NoError(t, err)

	payload := []byte(`{"forums":[]}`)
	require.NoError(t, b.Save("slot-v3", payload))

	got, ok, err := b.Load("slot-v3")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, payload, got)
}

func TestSaveOverwritesAndLeavesNoTempFile(t *testing.T) {
	root := t.TempDir()
	b, err := New(root)
	require.NoError(t, err)

	require.NoError(t, b.Save("slot", []byte("old")))
	require.NoError(t, b.Save("slot", []byte("new")))

	got, ok, err := b.Load("slot")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("new"), got)

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "slot.json", entries[0].Name())
}

func TestDeleteMissingKeyIsNoError(t *testing.T) {
	b, err := New(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, b.Delete("never-saved"))
}

func TestDeleteRemovesFile(t *testing.T) {
	b, err := New(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, b.Save("slot", []byte("data")))
	require.NoError(t, b.Delete("slot"))

	_, ok, err := b.Load("slot")
	require.NoError(t, err)
	assert.False(t, ok)
}
