// Package project loads the optional per-project bootstrap configuration
// (kls-bootstrap.yaml). The file is validated against an embedded JSON
// schema before it is decoded, and a missing file yields the defaults.
package project
