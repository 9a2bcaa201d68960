// Package cli wires the hyperlath cobra commands.
package cli

import (
	"fmt"
	"io"
	"os"

	"charm.land/log/v2"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/hyperlath/internal/config"
)

// app carries state shared by every command of one invocation.
type app struct {
	configPath string
	logLevel   string
	logFile    string

	cfg    config.Config
	source string // file the config came from, empty for defaults
	logger *log.Logger
	closer io.Closer

	stdout io.Writer
	stderr io.Writer
}

// NewRootCmd builds the command tree writing to the given streams.
func NewRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "hyperlath",
		Short: "Build hypergraphs and export them for hMETIS",
		Long: `hyperlath generates weighted hypergraphs from seeded topologies and writes
them in the hMETIS input format.

Configuration is read from --config, or hyperlath.yaml in the working
directory when present. Flags override file values.`,
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Path to a YAML config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&a.logFile, "log-file", "", "Write logs to a rotated file instead of stderr")

	root.AddCommand(newGenerateCmd(a), newConfigCmd(a))

	return root
}

// setup loads configuration and builds the logger before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	a.cfg, a.source, err = config.LoadOrDefault(a.configPath, cwd)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if a.logLevel != "" {
		a.cfg.Log.Level = a.logLevel
	}
	if a.logFile != "" {
		a.cfg.Log.File = a.logFile
	}

	a.logger, a.closer, err = newLogger(a.cfg.Log, a.stderr)
	if err != nil {
		return err
	}
	a.logger.Debug("configuration loaded", "source", sourceLabel(a.source), "command", cmd.Name())

	return nil
}

// run wraps a subcommand body so the log sink is released even when the body fails.
func (a *app) run(fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		defer a.teardown()
		return fn(cmd, args)
	}
}

func (a *app) teardown() {
	if a.closer == nil {
		return
	}
	if err := a.closer.Close(); err != nil {
		fmt.Fprintf(a.stderr, "Warning: closing log file: %v\n", err)
	}
	a.closer = nil
}

func sourceLabel(path string) string {
	if path == "" {
		return "defaults"
	}

	return path
}

// Execute runs the CLI against the process streams and returns the exit code.
func Execute() int {
	root := NewRootCmd(os.Stdout, os.Stderr)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}
