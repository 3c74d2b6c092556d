package platform

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// ErrSymlinkUnsupported is returned on Windows when native symlinks are not
// available to the current user.
var ErrSymlinkUnsupported = errors.New("symlinks require developer mode or administrator rights on windows")

// CreateSymlink creates a symbolic link at link pointing to target. The
// target is stored as given, so relative targets resolve against the
// link's directory. An existing entry at link is never replaced.
func CreateSymlink(target, link string) error {
	err := os.Symlink(target, link)
	if err == nil {
		return nil
	}
	if runtime.GOOS == "windows" && !errors.Is(err, os.ErrExist) && !IsSymlinkSupported() {
		return fmt.Errorf("%w: %w", ErrSymlinkUnsupported, err)
	}
	return err
}

// ReadSymlinkTarget returns the raw target of a symlink.
func ReadSymlinkTarget(path string) (string, error) {
	return os.Readlink(path)
}

// ResolveSymlinkTarget returns the target of the symlink at path, joined to
// the link's directory when it is relative.
func ResolveSymlinkTarget(path string) (string, error) {
	target, err := os.Readlink(path)
	if err != nil {
		return "", err
	}
	if filepath.IsAbs(target) {
		return target, nil
	}
	return filepath.Join(filepath.Dir(path), target), nil
}

// IsSymlinkSupported returns true if the current platform supports native symlinks.
// On Windows this attempts a test symlink to check developer mode.
func IsSymlinkSupported() bool {
	if runtime.GOOS != "windows" {
		return true
	}

	tmpDir := os.TempDir()
	link := filepath.Join(tmpDir, ".kls-symlink-test")
	defer os.Remove(link)

	if err := os.Symlink(tmpDir, link); err != nil {
		return false
	}
	return true
}
