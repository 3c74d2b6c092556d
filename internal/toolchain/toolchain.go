package toolchain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/kls-dev/kls/internal/project"
)

// Toolchain builds a project's debug artifact.
type Toolchain interface {
	// Name returns the toolchain identifier.
	Name() string
	// Build runs the debug build in dir and blocks until it finishes.
	Build(ctx context.Context, dir string) error
	// Version returns the toolchain's own version string.
	Version(ctx context.Context) (string, error)
	// CommandLine returns the build command as it will be run, for tracing.
	CommandLine() string
}

// ErrUnknown is returned by every call on a toolchain whose identifier
// was not recognized.
var ErrUnknown = errors.New("unknown toolchain")

// BuildError reports a build command that ran and exited non-zero.
type BuildError struct {
	Command  string
	ExitCode int
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("%s exited with status %d", e.Command, e.ExitCode)
}

// Options carries the writers the child process output is streamed to.
// Nil writers default to os.Stdout and os.Stderr.
type Options struct {
	Stdout io.Writer
	Stderr io.Writer
}

// Dispatch returns the Toolchain for cfg.Toolchain. Unknown identifiers
// yield a toolchain whose calls all fail with ErrUnknown.
func Dispatch(cfg *project.Config, opts Options) Toolchain {
	switch cfg.Toolchain {
	case project.ToolchainGo:
		return &GoToolchain{
			Package: cfg.Package,
			Output:  cfg.ArtifactPath(),
			Args:    cfg.BuildArgs,
			Stdout:  opts.Stdout,
			Stderr:  opts.Stderr,
		}
	case project.ToolchainCargo:
		return &CargoToolchain{
			Args:   cfg.BuildArgs,
			Stdout: opts.Stdout,
			Stderr: opts.Stderr,
		}
	default:
		return &unknownToolchain{name: cfg.Toolchain}
	}
}

// unknownToolchain is returned when the identifier is not recognized.
type unknownToolchain struct {
	name string
}

func (u *unknownToolchain) Name() string { return u.name }
func (u *unknownToolchain) CommandLine() string { return u.name }

func (u *unknownToolchain) Build(context.Context, string) error {
	return u.err()
}

func (u *unknownToolchain) Version(context.Context) (string, error) {
	return "", u.err()
}

func (u *unknownToolchain) err() error {
	return fmt.Errorf("%w %q: supported toolchains are %q and %q",
		ErrUnknown, u.name, project.ToolchainGo, project.ToolchainCargo)
}

// run executes bin with args in dir, streaming output to the writers.
func run(ctx context.Context, bin string, args []string, dir string, stdout, stderr io.Writer) error {
	path, err := exec.LookPath(bin)
	if err != nil {
		return fmt.Errorf("locating %s: %w", bin, err)
	}

	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Dir = dir
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() >= 0 {
			return &BuildError{Command: commandLine(bin, args), ExitCode: exitErr.ExitCode()}
		}
		return fmt.Errorf("running %s: %w", commandLine(bin, args), err)
	}
	return nil
}

// output executes bin with args and returns its trimmed stdout.
func output(ctx context.Context, bin string, args ...string) (string, error) {
	path, err := exec.LookPath(bin)
	if err != nil {
		return "", fmt.Errorf("locating %s: %w", bin, err)
	}
	out, err := exec.CommandContext(ctx, path, args...).Output()
	if err != nil {
		return "", fmt.Errorf("running %s: %w", commandLine(bin, args), err)
	}
	return strings.TrimSpace(string(out)), nil
}

func commandLine(bin string, args []string) string {
	return strings.Join(append([]string{bin}, args...), " ")
}
