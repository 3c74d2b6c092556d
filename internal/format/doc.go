// Package format renders files.List values in the short (names only) and
// long (ls -l style) layouts, coloring names by kind and LS_COLORS.
package format
