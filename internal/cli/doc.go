// Package cli defines the Cobra commands for the two binaries: kls, the
// directory lister, and kls-bootstrap, which builds kls and links it into the
// project root. Commands handle flags and output only and delegate the work
// to the internal packages.
package cli
