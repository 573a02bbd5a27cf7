// Package cli implements the algotrace command tree.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/comalice/algotrace/internal/appconfig"
	"github.com/comalice/algotrace/internal/drivers"
	"github.com/comalice/algotrace/internal/primitives"
	"github.com/comalice/algotrace/internal/production"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Process exit codes.
const (
	ExitOK           = 0
	ExitFailure      = 1
	ExitInvalidInput = 2
	ExitExport       = 3
)

// errUsage marks command-line mistakes caught by cobra itself.
var errUsage = errors.New("usage error")

// app carries the settings shared by every subcommand of one invocation.
type app struct {
	cfg        appconfig.Config
	configPath string
	verbose    bool
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "algotrace",
		Short:         "Record step-by-step traces of classic algorithms.",
		Long:          "Runs array, linked list, stack, queue and binary search tree algorithms and exports\na JSON trace of every step for a visualizer.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load()
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/algotrace/config.yaml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "increase logging verbosity")
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return errors.Mark(err, errUsage)
	})

	root.AddCommand(
		newRunCommand(a),
		newListCommand(),
		newInspectCommand(a),
		newVersionCommand(),
	)
	return root
}

func (a *app) load() error {
	cfg, err := appconfig.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg
	lvl, err := cfg.Level()
	if err != nil {
		return err
	}
	if a.verbose {
		lvl = log.DebugLevel
	}
	log.SetLevel(lvl)
	log.WithField("level", lvl).Debug("configuration loaded")
	return nil
}

// Execute runs the command tree with args and returns the process exit code.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := NewRootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	log.SetOutput(stderr)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return ExitOK
	}
	fmt.Fprintf(stderr, "algotrace: %v\n", err)
	return ExitCode(err)
}

// ExitCode classifies err into a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, production.ErrExport):
		return ExitExport
	case errors.Is(err, drivers.ErrInvalidInput),
		errors.Is(err, drivers.ErrUnknownOperation),
		errors.Is(err, primitives.ErrInvalidConfig),
		errors.Is(err, appconfig.ErrInvalid),
		errors.Is(err, errUsage):
		return ExitInvalidInput
	default:
		return ExitFailure
	}
}

// usageArgs marks positional argument errors as usage errors.
func usageArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return errors.Mark(err, errUsage)
		}
		return nil
	}
}
