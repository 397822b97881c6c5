// Package lock guards a device directory against concurrent sessions with an
// advisory file lock.
package lock

import (
	"fmt"
	"os"
	"strconv"

	"github.com/gofrs/flock"

	"github.com/dmitrijs2005/pocket/internal/common"
)

// Lock is an exclusive lock held on a lock file.
type Lock struct {
	fl *flock.Flock
}

// Acquire takes the lock at path without blocking and records the current
// process id in the file. A lock held elsewhere yields
// common.ErrSessionLocked.
func Acquire(path string) (*Lock, error) {
	fl := flock.New(path)

	locked, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("lock %s: %w", path, err)
	}
	if !locked {
		return nil, fmt.Errorf("%w: %s", common.ErrSessionLocked, path)
	}

	if err := os.WriteFile(path, []byte(strconv.Itoa(os.Getpid())+"\n"), 0o600); err != nil {
		_ = fl.Unlock()
		return nil, fmt.Errorf("write lock owner: %w", err)
	}

	return &Lock{fl: fl}, nil
}

// Path returns the lock file path.
func (l *Lock) Path() string {
	if l == nil || l.fl == nil {
		return ""
	}
	return l.fl.Path()
}

// Release drops the lock. The file stays in place so that every process
// keeps locking the same inode. Release is safe to call more than once.
func (l *Lock) Release() error {
	if l == nil || l.fl == nil {
		return nil
	}
	err := l.fl.Unlock()
	l.fl = nil
	return err
}
