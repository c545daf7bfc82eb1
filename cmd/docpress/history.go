package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/docpress/internal/history"
	"github.com/pdiddy/docpress/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent conversion runs",
	Long: `History lists the most recent conversion runs recorded in the local
run log. Recording can be disabled per invocation with --no-history.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().Int("limit", 0, "maximum number of runs to list (default 20)")
	historyCmd.Flags().String("state-dir", "", "directory holding the run log (default .docpress)")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg := historyConfig(cmd)

	store, err := history.Open(cfg.StateDir)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.Recent(cfg.MaxResults)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(os.Stdout, "No conversion runs recorded.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "WHEN\tKIND\tSTATUS\tINPUT\tDETAIL")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			r.CreatedAt.Local().Format("2006-01-02 15:04"), r.Kind, r.Status, r.Input, r.Detail)
	}
	return w.Flush()
}

// historyConfig resolves flags, falling back to config file values.
func historyConfig(cmd *cobra.Command) types.HistoryConfig {
	dir, _ := cmd.Flags().GetString("state-dir")
	if dir == "" {
		dir = viper.GetString("history.state_dir")
	}
	if dir == "" {
		dir = history.DefaultStateDir
	}
	limit, _ := cmd.Flags().GetInt("limit")
	if limit == 0 {
		limit = viper.GetInt("history.max_results")
	}
	return types.HistoryConfig{StateDir: dir, MaxResults: limit}
}

// recordRun appends a run to the log unless --no-history is set. Logging
// problems never fail the conversion that produced the artifact.
func recordRun(cmd *cobra.Command, run types.Run) {
	if skip, _ := cmd.Flags().GetBool("no-history"); skip {
		return
	}
	dir := viper.GetString("history.state_dir")
	store, err := history.Open(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: run log unavailable: %v\n", err)
		return
	}
	defer store.Close()
	if _, err := store.Record(run); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not record run: %v\n", err)
	}
}
