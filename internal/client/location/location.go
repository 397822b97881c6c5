// Package location resolves where a device's local vault lives on disk.
//
// Every device gets its own files inside a single storage directory:
//
//	<base>/.pocket/<device uuid>.db
//	<base>/.pocket/<device uuid>.lock
//
// The base is an explicit path when one is configured and the user's home
// directory otherwise.
package location

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/pocket/internal/common"
	"github.com/dmitrijs2005/pocket/internal/filex"
)

// DirName is the storage subdirectory created under the base path.
const DirName = ".pocket"

const (
	dbExt   = ".db"
	lockExt = ".lock"
)

var userHomeDir = os.UserHomeDir

// Resolve returns the storage directory, creating it if needed. An empty
// explicit path means the home directory of the current user.
func Resolve(explicit string) (string, error) {
	base := explicit
	if base == "" {
		home, err := userHomeDir()
		if err != nil {
			return "", fmt.Errorf("%w: %w", common.ErrDirectoryUnavailable, err)
		}
		if home == "" {
			return "", fmt.Errorf("%w: %w", common.ErrDirectoryUnavailable, errors.New("home directory is empty"))
		}
		base = home
	}

	dir, err := filex.EnsureDir(base, DirName)
	if err != nil {
		return "", fmt.Errorf("%w: %w", common.ErrDirectoryUnavailable, err)
	}
	return dir, nil
}

// DatabasePath returns the database file of a device.
func DatabasePath(dir, deviceUUID string) string {
	return filepath.Join(dir, deviceUUID+dbExt)
}

// LockPath returns the session lock file of a device.
func LockPath(dir, deviceUUID string) string {
	return filepath.Join(dir, deviceUUID+lockExt)
}

// Exists reports whether the device already has a database in dir.
func Exists(dir, deviceUUID string) bool {
	return filex.Exists(DatabasePath(dir, deviceUUID))
}
