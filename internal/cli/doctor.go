package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jyang234/taskmgr/internal/config"
	"github.com/jyang234/taskmgr/internal/tasks"
)

func doctorCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check configuration and task file health",
		Long:  `Runs diagnostic checks on the configuration and the task snapshot and reports pass/fail for each.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDoctor(cmd, opts)
		},
	}
}

func runDoctor(cmd *cobra.Command, opts *options) error {
	out := cmd.OutOrStdout()
	passed := 0
	failed := 0

	check := func(name string, ok bool, detail string) {
		if ok {
			fmt.Fprintf(out, "  ✓ %s\n", name)
			passed++
		} else {
			fmt.Fprintf(out, "  ✗ %s — %s\n", name, detail)
			failed++
		}
	}

	fmt.Fprintln(out, "Configuration:")
	fmt.Fprintf(out, "  → global:  %s (%s)\n", config.GlobalConfigPath(), presence(config.GlobalConfigPath()))
	fmt.Fprintf(out, "  → project: %s (%s)\n", config.ProjectConfigPath(), presence(config.ProjectConfigPath()))

	cfg, err := loadConfig(opts)
	if err != nil {
		check("config readable", false, err.Error())
	} else {
		check("config readable", true, "")

		fmt.Fprintln(out)
		fmt.Fprintln(out, "Task snapshot:")

		format, ferr := tasks.ParseFormat(cfg.Store.Format)
		check("snapshot format", ferr == nil, fmt.Sprint(ferr))

		snapshot := tasks.NewSnapshot(cfg.StorePath(), format)
		fmt.Fprintf(out, "  → path:   %s\n", snapshot.Path())
		fmt.Fprintf(out, "  → format: %s\n", snapshot.Format())

		if !exists(snapshot.Path()) {
			check("snapshot present", true, "")
			fmt.Fprintln(out, "  → no tasks yet; the file will be created on first add")
		} else {
			list, lerr := snapshot.Load()
			check("snapshot readable", lerr == nil, fmt.Sprint(lerr))
			if lerr == nil {
				total, completed, incomplete := tasks.Stats(list)
				fmt.Fprintf(out, "  → %d tasks (%d completed, %d incomplete)\n", total, completed, incomplete)
			}
		}
	}

	fmt.Fprintf(out, "\n%d passed, %d failed\n", passed, failed)
	if failed > 0 {
		return fmt.Errorf("%d check(s) failed", failed)
	}
	return nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func presence(path string) string {
	if exists(path) {
		return "found"
	}
	return "not found"
}
