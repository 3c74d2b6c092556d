package toolchain

import (
	"context"
	"io"
	"strings"
)

// GoToolchain builds with `go build -o <Output> [Args...] <Package>`.
type GoToolchain struct {
	// Bin is the go binary; defaults to "go" on PATH.
	Bin     string
	Package string
	// Output is the artifact path relative to the build directory.
	Output string
	Args   []string

	Stdout io.Writer
	Stderr io.Writer
}

func (g *GoToolchain) Name() string { return "go" }

func (g *GoToolchain) bin() string {
	if g.Bin == "" {
		return "go"
	}
	return g.Bin
}

func (g *GoToolchain) args() []string {
	pkg := g.Package
	if pkg == "" {
		pkg = "."
	}
	args := []string{"build", "-o", g.Output}
	args = append(args, g.Args...)
	return append(args, pkg)
}

func (g *GoToolchain) CommandLine() string {
	return commandLine(g.bin(), g.args())
}

// Build runs go build in dir. go creates the output directory itself, and
// only when the build succeeds.
func (g *GoToolchain) Build(ctx context.Context, dir string) error {
	return run(ctx, g.bin(), g.args(), dir, g.Stdout, g.Stderr)
}

// Version returns GOVERSION without its "go" prefix (e.g., "1.25.7").
func (g *GoToolchain) Version(ctx context.Context) (string, error) {
	out, err := output(ctx, g.bin(), "env", "GOVERSION")
	if err != nil {
		return "", err
	}
	return strings.TrimPrefix(out, "go"), nil
}
