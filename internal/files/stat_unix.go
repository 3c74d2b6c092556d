//go:build unix

package files

import "golang.org/x/sys/unix"

const ownershipSupported = true

// statSys returns link count, owner, group and 512-byte block count for
// path without following a final symlink. Zero values are returned when the
// call fails.
func statSys(path string) (links uint64, uid, gid uint32, blocks int64) {
	var st unix.Stat_t
	if err := unix.Lstat(path, &st); err != nil {
		return 0, 0, 0, 0
	}
	return uint64(st.Nlink), st.Uid, st.Gid, int64(st.Blocks)
}
