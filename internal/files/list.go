package files

import (
	"cmp"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/text/cases"
)

const defaultBlockSize = 1024

// Options controls what NewList collects.
type Options struct {
	// All includes the directory itself and its parent in the list
	// (displayed as "." and "..") and in the block total.
	All bool
	// Logger receives entries that disappear or fail to stat while the
	// directory is read. Nil discards them.
	Logger *log.Logger
}

// List is the listing of one command-line path.
type List struct {
	// Path is the path as given on the command line.
	Path string
	// Dir and Parent are set for directory listings with Options.All.
	Dir    *Entry
	Parent *Entry
	// Entries holds the directory's children, or the single entry for a
	// non-directory path.
	Entries []*Entry
	// Total is the block count in units of BlockSize.
	Total int64
}

// NewList reads path. A directory yields its sorted children; any other
// kind of entry yields a list containing just that entry. The path itself
// is followed if it is a symlink.
func NewList(path string, opts Options) (*List, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	list := &List{Path: path}

	if !info.IsDir() {
		e, err := NewEntry(path)
		if err != nil {
			return nil, err
		}
		e.Name = path
		list.Entries = []*Entry{e}
		list.Total = scaleBlocks(e.Blocks, BlockSize())
		return list, nil
	}

	children, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", path, err)
	}

	var blocks int64
	for _, child := range children {
		e, err := NewEntry(filepath.Join(path, child.Name()))
		if err != nil {
			if opts.Logger != nil {
				opts.Logger.Debug("Skipping entry", "path", child.Name(), "err", err)
			}
			continue
		}
		blocks += e.Blocks
		list.Entries = append(list.Entries, e)
	}

	if opts.All {
		list.Dir, err = NewEntry(path)
		if err != nil {
			return nil, err
		}
		blocks += list.Dir.Blocks

		list.Parent = parentEntry(path, list.Dir)
		if list.Parent != list.Dir {
			blocks += list.Parent.Blocks
		}
	}

	Sort(list.Entries)
	list.Total = scaleBlocks(blocks, BlockSize())
	return list, nil
}

// parentEntry returns the entry for path's parent directory, or dir itself
// when path is a filesystem root or the parent cannot be read.
func parentEntry(path string, dir *Entry) *Entry {
	abs, err := filepath.Abs(path)
	if err != nil {
		return dir
	}
	parent := filepath.Dir(abs)
	if parent == abs {
		return dir
	}
	e, err := NewEntry(parent)
	if err != nil {
		return dir
	}
	return e
}

// sortKey folds case and drops dots, so ".bashrc" sorts next to "bashrc".
func sortKey(fold cases.Caser, name string) string {
	return strings.ReplaceAll(fold.String(name), ".", "")
}

// Sort orders entries by case-folded name with dots removed, falling back
// to the raw name.
func Sort(entries []*Entry) {
	fold := cases.Fold()
	slices.SortStableFunc(entries, func(a, b *Entry) int {
		if c := cmp.Compare(sortKey(fold, a.Name), sortKey(fold, b.Name)); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
}

// BlockSize returns the unit for block totals: the first positive integer
// among LS_BLOCK_SIZE, BLOCK_SIZE and BLOCKSIZE, 512 when POSIXLY_CORRECT
// is set, and 1024 otherwise.
func BlockSize() int64 {
	for _, key := range []string{"LS_BLOCK_SIZE", "BLOCK_SIZE", "BLOCKSIZE"} {
		if n, err := strconv.ParseInt(os.Getenv(key), 10, 64); err == nil && n > 0 {
			return n
		}
	}
	if _, ok := os.LookupEnv("POSIXLY_CORRECT"); ok {
		return 512
	}
	return defaultBlockSize
}

func scaleBlocks(blocks, size int64) int64 {
	return blocks * 512 / size
}
