package alias

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/kls-dev/kls/internal/platform"
)

// Kind classifies the entry found at the alias path.
type Kind string

const (
	KindMissing Kind = "missing"
	KindSymlink Kind = "symlink"
	KindFile    Kind = "file"
	KindDir     Kind = "directory"
	KindOther   Kind = "other"
)

// Status describes the alias entry without modifying it.
type Status struct {
	Path   string
	Kind   Kind
	Target string // raw symlink target, only for KindSymlink
	// Resolved is Target joined to the alias directory when relative.
	Resolved string
	// Matches is true when the entry is a symlink whose raw target equals
	// the expected target.
	Matches bool
	// Dangling is true when the entry is a symlink whose target does not exist.
	Dangling bool
}

// Inspect reports what currently occupies name in dir.
func Inspect(dir, name, expectedTarget string) (*Status, error) {
	linkPath := filepath.Join(dir, name)
	st := &Status{Path: linkPath}

	info, err := os.Lstat(linkPath)
	if errors.Is(err, fs.ErrNotExist) {
		st.Kind = KindMissing
		return st, nil
	}
	if err != nil {
		return nil, fmt.Errorf("checking alias %s: %w", linkPath, err)
	}

	mode := info.Mode()
	switch {
	case mode&os.ModeSymlink != 0:
		st.Kind = KindSymlink
		target, err := platform.ReadSymlinkTarget(linkPath)
		if err != nil {
			return nil, fmt.Errorf("reading alias %s: %w", linkPath, err)
		}
		st.Target = target
		st.Matches = filepath.Clean(target) == filepath.Clean(expectedTarget)
		if st.Resolved, err = platform.ResolveSymlinkTarget(linkPath); err != nil {
			return nil, fmt.Errorf("resolving alias %s: %w", linkPath, err)
		}
		if _, err := os.Stat(st.Resolved); err != nil {
			st.Dangling = true
		}
	case mode.IsDir():
		st.Kind = KindDir
	case mode.IsRegular():
		st.Kind = KindFile
	default:
		st.Kind = KindOther
	}

	return st, nil
}
