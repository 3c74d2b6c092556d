package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/kls-dev/kls/internal/alias"
	"github.com/kls-dev/kls/internal/bootstrap"
	"github.com/kls-dev/kls/internal/branding"
	"github.com/kls-dev/kls/internal/config"
	"github.com/kls-dev/kls/internal/logging"
	"github.com/kls-dev/kls/internal/project"
	"github.com/kls-dev/kls/internal/toolchain"
	"github.com/spf13/cobra"
)

// NewBootstrapCmd returns the kls-bootstrap command.
func NewBootstrapCmd() *cobra.Command {
	var (
		check     bool
		logLevel  string
		logFormat string
	)

	cmd := &cobra.Command{
		Use:   branding.BootstrapName(),
		Short: "Build " + branding.CLIName() + " and link it into the project root",
		Long: `Build the project in debug mode, then create the alias link to the
artifact under target/debug/ unless an entry with the alias name already
exists. Run it from the project root. The toolchain, artifact and alias
names come from ` + branding.ProjectFile() + ` when present.

The first failing step ends the run with a non-zero exit status.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.Load()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("log-level") {
				logLevel = config.LogLevel()
			}
			if !cmd.Flags().Changed("log-format") {
				logFormat = config.LogFormat()
			}
			logger, err := logging.New(cmd.ErrOrStderr(), branding.BootstrapName(), logLevel, logFormat)
			if err != nil {
				return err
			}

			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("getting current directory: %w", err)
			}

			if check {
				st, err := bootstrap.Check(cwd, nil)
				if err != nil {
					return err
				}
				printStatus(cmd.OutOrStdout(), st)
				return nil
			}

			_, err = bootstrap.Run(cmd.Context(), bootstrap.Options{
				Dir:    cwd,
				Stdout: cmd.OutOrStdout(),
				Stderr: cmd.ErrOrStderr(),
				Logger: logger,
			})
			return err
		},
	}

	f := cmd.Flags()
	f.BoolVar(&check, "check", false, "Report the alias state without building")
	f.StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn or error")
	f.StringVar(&logFormat, "log-format", "text", "Log format: text, logfmt or json")

	cmd.AddCommand(newVersionCmd(branding.BootstrapName()))
	cmd.AddCommand(newConfigCmd())
	return cmd
}

func printStatus(w io.Writer, st *alias.Status) {
	switch st.Kind {
	case alias.KindMissing:
		fmt.Fprintf(w, "  [MISS] %s does not exist\n", st.Path)
	case alias.KindSymlink:
		icon := " OK "
		note := ""
		if !st.Matches {
			icon = "WARN"
			note = " (not the debug artifact, left as is)"
		} else if st.Dangling {
			icon = "WARN"
			note = " (artifact missing, build to fix)"
		}
		fmt.Fprintf(w, "  [%s] %s -> %s%s\n", icon, st.Path, st.Target, note)
	default:
		fmt.Fprintf(w, "  [WARN] %s is a %s, left as is\n", st.Path, st.Kind)
	}
}

// ExecuteBootstrap runs kls-bootstrap with build info injected via ldflags.
func ExecuteBootstrap(version, commit, date string) error {
	setBuildInfo(version, commit, date)
	return execute(NewBootstrapCmd(), branding.BootstrapName())
}

// ExitCode maps an Execute error to a process exit status. A failed build
// passes the toolchain's own status through.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var buildErr *toolchain.BuildError
	if errors.As(err, &buildErr) && buildErr.ExitCode > 0 {
		return buildErr.ExitCode
	}
	var verr *project.ValidationError
	if errors.As(err, &verr) {
		return 2
	}
	return 1
}
