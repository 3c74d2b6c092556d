// Package config manages user-level settings stored at ~/.kls/config.yaml.
// Values can be overridden with KLS_-prefixed environment variables, and
// command-line flags take precedence over both.
package config
