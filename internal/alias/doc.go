// Package alias creates the short-named convenience link that points at the
// debug build artifact. The link is created at most once: any existing entry
// with the alias name, whatever its kind or target, is left exactly as found.
package alias
