// Package platform wraps the symlink primitives used by the bootstrap alias
// step and the lister. Native symlinks are required everywhere; on Windows a
// missing privilege is reported as ErrSymlinkUnsupported instead of being
// papered over.
package platform
