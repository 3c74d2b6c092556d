// Package toolchain invokes the external build program that produces the
// debug artifact. Dispatch selects the implementation from the project's
// toolchain identifier; the go and cargo toolchains stream child output to
// the configured writers and report a non-zero exit as a *BuildError.
package toolchain
