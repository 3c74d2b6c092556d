package bootstrap

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/kls-dev/kls/internal/alias"
	"github.com/kls-dev/kls/internal/logging"
	"github.com/kls-dev/kls/internal/project"
	"github.com/kls-dev/kls/internal/toolchain"
)

// Options configures a bootstrap run.
type Options struct {
	// Dir is the project root; the artifact and alias paths are relative to it.
	Dir string
	// Project overrides the project file in Dir when set.
	Project *project.Config
	// Toolchain overrides the one selected from the project config when set.
	Toolchain toolchain.Toolchain
	// Stdout and Stderr receive the toolchain's output.
	Stdout io.Writer
	Stderr io.Writer
	Logger *log.Logger
}

// Result describes a successful run.
type Result struct {
	Artifact string // relative to Dir
	Alias    string
	Outcome  alias.Outcome
}

// Run builds the artifact and then ensures the alias link. A build failure
// returns before the alias is looked at.
func Run(ctx context.Context, opts Options) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	cfg := opts.Project
	if cfg == nil {
		loaded, err := project.Load(opts.Dir)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	tc := opts.Toolchain
	if tc == nil {
		tc = toolchain.Dispatch(cfg, toolchain.Options{Stdout: opts.Stdout, Stderr: opts.Stderr})
	}

	if err := toolchain.CheckMinVersion(ctx, tc, cfg.MinVersion); err != nil {
		return nil, err
	}

	logger.Info("Building", "command", tc.CommandLine())
	if err := tc.Build(ctx, opts.Dir); err != nil {
		return nil, fmt.Errorf("building %s: %w", cfg.Artifact, err)
	}

	artifact := cfg.ArtifactPath()
	outcome, err := alias.Ensure(opts.Dir, cfg.Alias, artifact, logger)
	if err != nil {
		return nil, err
	}

	return &Result{
		Artifact: artifact,
		Alias:    cfg.Alias,
		Outcome:  outcome,
	}, nil
}

// Check reports the alias state for the project in dir without building.
func Check(dir string, cfg *project.Config) (*alias.Status, error) {
	if cfg == nil {
		loaded, err := project.Load(dir)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	return alias.Inspect(dir, cfg.Alias, cfg.ArtifactPath())
}
