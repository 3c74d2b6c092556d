package alias

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/kls-dev/kls/internal/platform"
)

// Outcome reports what Ensure did.
type Outcome int

const (
	// OutcomeCreated means a new symlink was created.
	OutcomeCreated Outcome = iota
	// OutcomeExisting means an entry with the alias name was already present
	// and was not touched.
	OutcomeExisting
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCreated:
		return "created"
	case OutcomeExisting:
		return "existing"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Ensure makes sure an entry called name exists in dir. When nothing by that
// name exists, a symlink name -> target is created; target is stored as given
// (normally a path relative to dir). When anything already exists, including
// a dangling symlink or a directory, nothing happens.
//
// The existence check and the link creation are not atomic. If another
// process creates the name in between, the symlink call fails with
// os.ErrExist and that failure is returned.
func Ensure(dir, name, target string, logger *log.Logger) (Outcome, error) {
	linkPath := filepath.Join(dir, name)

	_, err := os.Lstat(linkPath)
	if err == nil {
		logger.Debug("Alias already present, leaving it alone", "alias", name)
		return OutcomeExisting, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return OutcomeExisting, fmt.Errorf("checking alias %s: %w", linkPath, err)
	}

	logger.Info("Linking", "alias", name, "target", target)
	if err := platform.CreateSymlink(target, linkPath); err != nil {
		return OutcomeCreated, fmt.Errorf("creating alias %s -> %s: %w", name, target, err)
	}

	return OutcomeCreated, nil
}
