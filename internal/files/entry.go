package files

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/kls-dev/kls/internal/platform"
)

// Kind is the type of a directory entry.
type Kind int

const (
	KindFile Kind = iota
	KindDir
	KindSymlink
)

func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDir:
		return "dir"
	case KindSymlink:
		return "symlink"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// recentWindow is how far back a modification time still prints with a
// clock time instead of a year.
const recentWindow = 180 * 24 * time.Hour

// Entry is a single listed filesystem object. Metadata is taken from the
// entry itself, never from a symlink's target.
type Entry struct {
	Path    string
	Name    string
	Kind    Kind
	Perm    os.FileMode
	Size    int64
	ModTime time.Time
	Links   uint64
	UID     uint32
	GID     uint32
	// Blocks counts 512-byte blocks allocated to the entry.
	Blocks int64

	// LinkTarget is the raw symlink target, TargetKind what it resolves to
	// (KindSymlink when it cannot be resolved), TargetExec whether the
	// resolved file has any execute bit.
	LinkTarget string
	TargetKind Kind
	TargetExec bool
}

// NewEntry reads the metadata for path without following a final symlink.
func NewEntry(path string) (*Entry, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return nil, err
	}

	e := &Entry{
		Path:    path,
		Name:    filepath.Base(path),
		Perm:    info.Mode().Perm(),
		Size:    info.Size(),
		ModTime: info.ModTime(),
	}
	e.Links, e.UID, e.GID, e.Blocks = statSys(path)

	switch {
	case info.Mode()&os.ModeSymlink != 0:
		e.Kind = KindSymlink
		e.resolveTarget()
	case info.IsDir():
		e.Kind = KindDir
	default:
		e.Kind = KindFile
	}

	return e, nil
}

func (e *Entry) resolveTarget() {
	e.TargetKind = KindSymlink
	target, err := platform.ReadSymlinkTarget(e.Path)
	if err != nil {
		return
	}
	e.LinkTarget = target

	info, err := os.Stat(e.Path)
	if err != nil {
		return
	}
	if info.IsDir() {
		e.TargetKind = KindDir
		return
	}
	e.TargetKind = KindFile
	e.TargetExec = info.Mode().Perm()&0o111 != 0
}

// IsExecutable reports whether any execute bit is set on the entry itself.
func (e *Entry) IsExecutable() bool {
	return e.Perm&0o111 != 0
}

// ModeString renders the type character followed by rwx triplets,
// e.g. "drwxr-xr-x".
func (e *Entry) ModeString() string {
	var b strings.Builder
	switch e.Kind {
	case KindDir:
		b.WriteByte('d')
	case KindSymlink:
		b.WriteByte('l')
	default:
		b.WriteByte('-')
	}

	const rwx = "rwx"
	for i := 0; i < 9; i++ {
		if e.Perm&(1<<uint(8-i)) != 0 {
			b.WriteByte(rwx[i%3])
		} else {
			b.WriteByte('-')
		}
	}
	return b.String()
}

// Modified formats the modification time the way ls does: month, padded
// day and HH:MM for recent files, the year instead of the clock time for
// anything at least 180 days older than now.
func (e *Entry) Modified(now time.Time) string {
	t := e.ModTime.Local()
	if !t.After(now.Add(-recentWindow)) {
		// Trailing space keeps the column as wide as the HH:MM form.
		return t.Format("Jan _2 2006 ")
	}
	return t.Format("Jan _2 15:04")
}

// Owner returns the owning user's name, or the numeric id when it cannot
// be resolved.
func (e *Entry) Owner() string {
	if !ownershipSupported {
		return ""
	}
	return lookupUser(e.UID)
}

// Group returns the owning group's name, or the numeric id when it cannot
// be resolved.
func (e *Entry) Group() string {
	if !ownershipSupported {
		return ""
	}
	return lookupGroup(e.GID)
}

// LinkCount returns the hard link count as a decimal string.
func (e *Entry) LinkCount() string {
	return strconv.FormatUint(e.Links, 10)
}
