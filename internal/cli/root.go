package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jyang234/taskmgr/internal/config"
	"github.com/jyang234/taskmgr/internal/logging"
	"github.com/jyang234/taskmgr/internal/shell"
	"github.com/jyang234/taskmgr/internal/tasks"
)

// options holds the global flags
type options struct {
	file    string
	format  string
	verbose bool
}

// Execute runs the root command
func Execute(version string) error {
	rootCmd := newRootCmd(version)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

func newRootCmd(version string) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "taskmgr",
		Short: "taskmgr - a personal task manager",
		Long: `taskmgr keeps a simple to-do list in a local file.

Run without arguments for the interactive menu, or use the subcommands
to add, list and complete tasks from scripts.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd, opts)
		},
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&opts.file, "file", "f", "", "Task snapshot file (overrides store.path)")
	rootCmd.PersistentFlags().StringVar(&opts.format, "format", "", "Snapshot format: json, yaml or toml (overrides store.format)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(addCmd(opts))
	rootCmd.AddCommand(listCmd(opts))
	rootCmd.AddCommand(showCmd(opts))
	rootCmd.AddCommand(doneCmd(opts))
	rootCmd.AddCommand(configCmd(opts))
	rootCmd.AddCommand(doctorCmd(opts))

	return rootCmd
}

// loadConfig loads the merged config and applies flag overrides
func loadConfig(opts *options) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if opts.file != "" {
		cfg.Store.Path = opts.file
	}
	if opts.format != "" {
		cfg.Store.Format = opts.format
	}
	if opts.verbose {
		cfg.Log.Level = "debug"
	}
	return cfg, nil
}

// openStore loads config, sets up logging and opens the task store
func openStore(cmd *cobra.Command, opts *options) (*tasks.Store, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := logging.Setup(cfg.Log, cmd.ErrOrStderr())

	format, err := tasks.ParseFormat(cfg.Store.Format)
	if err != nil {
		return nil, err
	}

	store, err := tasks.Open(cfg.StorePath(),
		tasks.WithFormat(format),
		tasks.WithLogger(logger),
	)
	if err != nil {
		if errors.Is(err, tasks.ErrCorruptData) {
			return nil, fmt.Errorf("%w\nrefusing to start; repair or move the file aside", err)
		}
		return nil, err
	}
	return store, nil
}

func runShell(cmd *cobra.Command, opts *options) error {
	store, err := openStore(cmd, opts)
	if err != nil {
		return err
	}
	return shell.New(store, cmd.InOrStdin(), cmd.OutOrStdout()).Run()
}
