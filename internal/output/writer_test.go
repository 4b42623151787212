package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteHosts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "alive.txt")

	wrote, err := WriteHosts(path, []string{"good.example", "good.example"})
	require.NoError(t, err)
	assert.True(t, wrote)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "good.example\ngood.example\n", string(b))
}

func TestWriteHosts_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "alive.txt")
	hosts := []string{"b.example", "a.example"}

	_, err := WriteHosts(path, hosts)
	require.NoError(t, err)
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	_, err = WriteHosts(path, hosts)
	require.NoError(t, err)
	second, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestWriteHosts_TruncatesLongerFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "alive.txt")
	require.NoError(t, os.WriteFile(path, []byte("old.example\nold.example\nold.example\n"), 0o644))

	_, err := WriteHosts(path, []string{"new.example"})
	require.NoError(t, err)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new.example\n", string(b))
}

func TestWriteHosts_EmptyDoesNotCreate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "alive.txt")

	wrote, err := WriteHosts(path, nil)
	require.NoError(t, err)
	assert.False(t, wrote)

	_, err = os.Stat(path)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriteHosts_EmptyLeavesExistingUntouched(t *testing.T) {
	path := filepath.Join(t.TempDir(), "alive.txt")
	require.NoError(t, os.WriteFile(path, []byte("previous\n"), 0o600))

	_, err := WriteHosts(path, []string{})
	require.NoError(t, err)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "previous\n", string(b))
}

func TestWriteHosts_Unwritable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "alive.txt")

	wrote, err := WriteHosts(path, []string{"a.example"})
	assert.False(t, wrote)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}
