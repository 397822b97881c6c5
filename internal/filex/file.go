// Package filex holds filesystem helpers for the vault's on-disk layout.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

// DirMode is the permission used for vault directories. The vault holds
// credentials, so only the owner gets access.
const DirMode os.FileMode = 0o700

// EnsureDir joins base and name, creates the resulting directory and any
// missing parents, and returns its path. It fails if the path exists but is
// not a directory.
func EnsureDir(base, name string) (string, error) {
	dir := filepath.Join(base, name)

	if err := os.MkdirAll(dir, DirMode); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	fi, err := os.Stat(dir)
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", dir, err)
	}
	if !fi.IsDir() {
		return "", fmt.Errorf("%s is not a directory", dir)
	}

	return dir, nil
}

// Exists reports whether path names an existing regular file.
func Exists(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.Mode().IsRegular()
}
