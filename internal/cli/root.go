package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/go-multierror"
	"github.com/kls-dev/kls/internal/branding"
	"github.com/kls-dev/kls/internal/colors"
	"github.com/kls-dev/kls/internal/config"
	"github.com/kls-dev/kls/internal/files"
	"github.com/kls-dev/kls/internal/format"
	"github.com/kls-dev/kls/internal/logging"
	"github.com/spf13/cobra"
)

var (
	buildVersion = "dev"
	buildCommit  = "unknown"
	buildDate    = "unknown"
)

// reportedError marks an error whose details were already written to
// stderr, so Execute only has to set the exit status.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

type listFlags struct {
	long  bool
	all   bool
	color string
}

// NewRootCmd returns the kls command.
func NewRootCmd() *cobra.Command {
	var flags listFlags

	cmd := &cobra.Command{
		Use:   branding.CLIName() + " [flags] [path...]",
		Short: branding.Description(),
		Long: branding.DisplayName() + ` lists directory contents. With no path it lists the current
directory. Hidden entries are always listed; -a adds "." and "..".

Names are colored by kind and by the extension rules in LS_COLORS.`,
		Version:       versionString(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.Load()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("color") {
				flags.color = config.Color()
			}
			logger, err := logging.New(cmd.ErrOrStderr(), branding.CLIName(), config.LogLevel(), config.LogFormat())
			if err != nil {
				return err
			}
			return runList(cmd.OutOrStdout(), cmd.ErrOrStderr(), args, flags, logger)
		},
	}
	cmd.SetVersionTemplate(branding.CLIName() + " version {{.Version}}\n")

	f := cmd.Flags()
	f.BoolVarP(&flags.long, "long-format", "l", false, "Use the long listing format")
	f.BoolVarP(&flags.all, "all", "a", false, `Also list "." and ".."`)
	f.StringVar(&flags.color, "color", format.ColorAuto, "Colorize names: auto, always or never")

	return cmd
}

func runList(stdout, stderr io.Writer, paths []string, flags listFlags, logger *log.Logger) error {
	useColor, err := format.ShouldColor(flags.color, stdout)
	if err != nil {
		return err
	}

	if len(paths) == 0 {
		paths = []string{"."}
	}

	var lists []*files.List
	var failed error
	for _, path := range paths {
		list, err := files.NewList(path, files.Options{All: flags.all, Logger: logger})
		if err != nil {
			fmt.Fprintf(stderr, "%s: cannot access '%s': %s\n", branding.CLIName(), path, accessReason(err))
			failed = multierror.Append(failed, fmt.Errorf("cannot access %s: %w", path, err))
			continue
		}
		lists = append(lists, list)
	}

	printer := format.NewPrinter(stdout, format.Options{
		Long:   flags.long,
		All:    flags.all,
		Color:  useColor,
		Colors: colors.FromEnv(),
	})
	if err := printer.Print(lists); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	if failed != nil {
		return &reportedError{err: failed}
	}
	return nil
}

// accessReason phrases a listing failure the way ls does.
func accessReason(err error) string {
	if errors.Is(err, fs.ErrNotExist) {
		return "No such file or directory."
	}
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err.Error()
	}
	return err.Error()
}

// Execute runs kls with build info injected via ldflags.
func Execute(version, commit, date string) error {
	setBuildInfo(version, commit, date)
	return execute(NewRootCmd(), branding.CLIName())
}

func execute(cmd *cobra.Command, name string) error {
	err := cmd.Execute()
	if err == nil {
		return nil
	}
	var reported *reportedError
	if !errors.As(err, &reported) {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", name, err)
	}
	return err
}
