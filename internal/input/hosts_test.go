package input

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_TrimsAndSkipsBlanks(t *testing.T) {
	in := "good.example\n\n  bad.example \t\r\n\t\ngood.example"

	hosts, err := Parse(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []string{"good.example", "bad.example", "good.example"}, hosts)
}

func TestParse_Empty(t *testing.T) {
	hosts, err := Parse(strings.NewReader("\n \n"))
	require.NoError(t, err)
	assert.Empty(t, hosts)
}

func TestReadHosts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hosts.txt")
	require.NoError(t, os.WriteFile(path, []byte("a.example\nb.example\n"), 0o644))

	hosts, err := ReadHosts(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.example", "b.example"}, hosts)
}

func TestReadHosts_MissingFileNamesPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.txt")

	_, err := ReadHosts(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), path)
}
