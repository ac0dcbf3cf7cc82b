package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Tyrn/damastes/internal/album"
	"github.com/Tyrn/damastes/internal/history"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent runs",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Number of runs to show")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.History.Disabled {
		return fmt.Errorf("history is disabled in the configuration")
	}

	store, err := history.Open(cfg.History.Path)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	runs, err := store.Recent(historyLimit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	for _, r := range runs {
		mark := ""
		if r.DryRun {
			mark = " (dry run)"
		}
		fmt.Printf("%s  %-7s  %4d file(s)  %8s%s\n",
			r.FinishedAt.Format("2006-01-02 15:04"), r.Status, r.Files,
			album.HumanFine(r.Bytes), mark)
		fmt.Printf("  %s -> %s\n", r.Source, r.Destination)
	}
	return nil
}
