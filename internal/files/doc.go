// Package files builds the listing model used by kls: one Entry per
// directory entry with its permissions, ownership, size, timestamps and
// symlink target, grouped into a sorted List with a block total.
package files
