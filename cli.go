package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// rootOptions holds global flags for all commands.
type rootOptions struct {
	Verbose    bool
	ConfigPath string

	// set in PersistentPreRunE
	logger *zap.Logger
}

// configuredDemos loads --config. Only commands that fall back to the
// configured list call it, so a broken file cannot block the others.
func (o *rootOptions) configuredDemos() ([]string, error) {
	cfg, err := loadConfig(o.ConfigPath)
	if err != nil {
		return nil, err
	}
	o.logger.Debug("loaded config",
		zap.String("path", o.ConfigPath),
		zap.Strings("demos", cfg.Demos))
	return cfg.Demos, nil
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "templates",
		Short: "Generic programming demos",
		Long: `Runs small demonstrations of Go generics: a numeric wrapper combined
through injected operations, and a generic function with explicit
per-length specializations.

With no subcommand, runs the demos selected by --config (all by default).`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			opts.logger = newLogger(cmd.ErrOrStderr(), opts.Verbose)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = opts.logger.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := opts.configuredDemos()
			if err != nil {
				return err
			}
			return runDemos(opts, cmd.OutOrStdout(), names)
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose logging on stderr")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "YAML file selecting demos")

	cmd.AddCommand(newRunCommand(opts))
	cmd.AddCommand(newListCommand())

	return cmd
}

func newRunCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run [demo...]",
		Short: "Run the named demos, or the configured ones",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := args
			if len(names) == 0 {
				var err error
				if names, err = opts.configuredDemos(); err != nil {
					return err
				}
			}
			return runDemos(opts, cmd.OutOrStdout(), names)
		},
	}
}

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available demos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, d := range demos {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s\n", d.name, d.title); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// runDemos checks every name before printing anything, so a typo does not
// leave half the output behind.
func runDemos(opts *rootOptions, w io.Writer, names []string) error {
	selected := make([]demo, 0, len(names))
	for _, name := range names {
		d, ok := findDemo(name)
		if !ok {
			return errors.Wrapf(ErrUnknownDemo, "%q (available: %v)", name, demoNames())
		}
		selected = append(selected, d)
	}

	for _, d := range selected {
		opts.logger.Debug("running demo", zap.String("name", d.name))
		if err := section(w, d.title); err != nil {
			return errors.Wrapf(err, "demo %s", d.name)
		}
		if err := d.run(w); err != nil {
			return errors.Wrapf(err, "demo %s", d.name)
		}
	}
	return nil
}
