package toolchain

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// CargoToolchain builds with `cargo build [Args...]`. Cargo places the
// debug artifact under target/debug/ on its own.
type CargoToolchain struct {
	// Bin is the cargo binary; defaults to "cargo" on PATH.
	Bin  string
	Args []string

	Stdout io.Writer
	Stderr io.Writer
}

func (c *CargoToolchain) Name() string { return "cargo" }

func (c *CargoToolchain) bin() string {
	if c.Bin == "" {
		return "cargo"
	}
	return c.Bin
}

func (c *CargoToolchain) args() []string {
	return append([]string{"build"}, c.Args...)
}

func (c *CargoToolchain) CommandLine() string {
	return commandLine(c.bin(), c.args())
}

func (c *CargoToolchain) Build(ctx context.Context, dir string) error {
	return run(ctx, c.bin(), c.args(), dir, c.Stdout, c.Stderr)
}

// Version parses `cargo --version` output such as
// "cargo 1.75.0 (1d8b05cdd 2023-11-20)".
func (c *CargoToolchain) Version(ctx context.Context) (string, error) {
	out, err := output(ctx, c.bin(), "--version")
	if err != nil {
		return "", err
	}
	fields := strings.Fields(out)
	if len(fields) < 2 {
		return "", fmt.Errorf("unexpected cargo version output %q", out)
	}
	return fields[1], nil
}
