package location

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/pocket/internal/common"
)

func TestResolve_Explicit(t *testing.T) {
	base := filepath.Join(t.TempDir(), "nested", "base")

	dir, err := Resolve(base)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, DirName), dir)

	fi, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, fi.IsDir())

	again, err := Resolve(base)
	require.NoError(t, err)
	assert.Equal(t, dir, again)
}

func TestResolve_Home(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir, err := Resolve("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, DirName), dir)
}

func TestResolve_HomeUnavailable(t *testing.T) {
	orig := userHomeDir
	t.Cleanup(func() { userHomeDir = orig })

	userHomeDir = func() (string, error) { return "", errors.New("$HOME is not defined") }
	_, err := Resolve("")
	assert.ErrorIs(t, err, common.ErrDirectoryUnavailable)

	userHomeDir = func() (string, error) { return "", nil }
	_, err = Resolve("")
	assert.ErrorIs(t, err, common.ErrDirectoryUnavailable)
}

func TestResolve_NotADirectory(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(base, DirName), []byte("x"), 0o600))

	_, err := Resolve(base)
	assert.ErrorIs(t, err, common.ErrDirectoryUnavailable)
}

func TestResolve_BaseIsFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "plain")
	require.NoError(t, os.WriteFile(file, nil, 0o600))

	_, err := Resolve(file)
	assert.ErrorIs(t, err, common.ErrDirectoryUnavailable)
}

func TestPathsAndExists(t *testing.T) {
	dir := t.TempDir()

	assert.Equal(t, filepath.Join(dir, "D1.db"), DatabasePath(dir, "D1"))
	assert.Equal(t, filepath.Join(dir, "D1.lock"), LockPath(dir, "D1"))

	assert.False(t, Exists(dir, "D1"))
	require.NoError(t, os.WriteFile(DatabasePath(dir, "D1"), nil, 0o600))
	assert.True(t, Exists(dir, "D1"))
}
