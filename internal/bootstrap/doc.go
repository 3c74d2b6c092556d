// Package bootstrap runs the build-and-link step: build the project's debug
// artifact, then create the alias link to it unless something already
// occupies the alias name. The two steps are strictly sequential and the
// first failure ends the run.
package bootstrap
