package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Tyrn/damastes/internal/album"
	"github.com/Tyrn/damastes/internal/audio"
)

var countFileType string

var countCmd = &cobra.Command{
	Use:   "count <source>",
	Short: "Count audio files without copying",
	Long:  "Walks the source and reports how many supported audio files it holds, their total volume, and the average file size.",
	Args:  cobra.ExactArgs(1),
	RunE:  runCount,
}

func init() {
	countCmd.Flags().StringVarP(&countFileType, "file-type", "e", "", "Audio type or glob to process, e.g. mp3 or *.ogg")
	rootCmd.AddCommand(countCmd)
}

func runCount(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	fileType := countFileType
	if fileType == "" {
		fileType = cfg.Probe.FileType
	}

	rep := newConsoleReporter(false, quiet)
	a, err := album.New(&album.Options{Src: args[0], FileType: fileType},
		&audio.Prober{Filter: fileType}, nil, rep, newLogger(cfg))
	if err != nil {
		return err
	}

	sum, err := a.Count(cmd.Context())
	rep.finish()
	if err != nil {
		return err
	}

	if quiet {
		return nil
	}
	fmt.Printf("Audio files: %d\n", sum.Files)
	fmt.Printf("Total size:  %s\n", album.HumanFine(sum.SrcBytes))
	if sum.Files > 0 {
		fmt.Printf("Average:     %s\n", album.HumanFine(sum.SrcBytes/int64(sum.Files)))
	}
	if sum.Invalid > 0 || sum.Suspicious > 0 {
		fmt.Printf("Skipped:     %d invalid, %d suspicious.\n", sum.Invalid, sum.Suspicious)
	}
	return nil
}
