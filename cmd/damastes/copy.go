package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tyrn/damastes/internal/album"
	"github.com/Tyrn/damastes/internal/audio"
	"github.com/Tyrn/damastes/internal/config"
	"github.com/Tyrn/damastes/internal/history"
	"github.com/Tyrn/damastes/internal/tags"
)

var copyOpts struct {
	dropTrackNumber   bool
	stripDecorations  bool
	fileTitle         bool
	fileTitleNum      bool
	sortLex           bool
	treeDst           bool
	dropDst           bool
	reverse           bool
	overwrite         bool
	dryRun            bool
	prependSubdirName bool
	fileType          string
	unifiedName       string
	artist            string
	album             string
	albumNum          int
}

func init() {
	f := rootCmd.Flags()
	f.BoolVarP(&copyOpts.dropTrackNumber, "drop-tracknumber", "d", false, "Do not set track numbers")
	f.BoolVarP(&copyOpts.stripDecorations, "strip-decorations", "s", false, "Do not decorate destination names (tree only)")
	f.BoolVarP(&copyOpts.fileTitle, "file-title", "f", false, "Use file name for title tag")
	f.BoolVarP(&copyOpts.fileTitleNum, "file-title-num", "F", false, "Use numbered file name for title tag")
	f.BoolVarP(&copyOpts.sortLex, "sort-lex", "x", false, "Sort lexicographically instead of naturally")
	f.BoolVarP(&copyOpts.treeDst, "tree-dst", "t", false, "Mirror the source tree at the destination")
	f.BoolVarP(&copyOpts.dropDst, "drop-dst", "p", false, "Do not create an album directory")
	f.BoolVarP(&copyOpts.reverse, "reverse", "r", false, "Copy files in reverse order, last number first")
	f.BoolVarP(&copyOpts.overwrite, "overwrite", "w", false, "Remove an existing destination directory")
	f.BoolVarP(&copyOpts.dryRun, "dry-run", "y", false, "Walk and report without copying anything")
	f.BoolVarP(&copyOpts.prependSubdirName, "prepend-subdir-name", "i", false, "Prepend subdirectory names to file names")
	f.StringVarP(&copyOpts.fileType, "file-type", "e", "", "Audio type or glob to process, e.g. mp3 or *.ogg")
	f.StringVarP(&copyOpts.unifiedName, "unified-name", "u", "", "Base name for all destination files")
	f.StringVarP(&copyOpts.artist, "artist", "a", "", "Artist tag")
	f.StringVarP(&copyOpts.album, "album", "g", "", "Album tag")
	f.IntVarP(&copyOpts.albumNum, "album-num", "b", 0, "Album number prefix (1..99) for the destination directory")
}

func runCopy(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := newLogger(cfg)

	opts := &album.Options{
		Src:     args[0],
		DstRoot: args[1],

		DropTrackNumber:   copyOpts.dropTrackNumber,
		StripDecorations:  copyOpts.stripDecorations,
		FileTitle:         copyOpts.fileTitle,
		FileTitleNum:      copyOpts.fileTitleNum,
		SortLex:           copyOpts.sortLex,
		TreeDst:           copyOpts.treeDst,
		DropDst:           copyOpts.dropDst,
		Reverse:           copyOpts.reverse,
		Overwrite:         copyOpts.overwrite,
		DryRun:            copyOpts.dryRun,
		PrependSubdirName: copyOpts.prependSubdirName,

		FileType:    copyOpts.fileType,
		UnifiedName: copyOpts.unifiedName,
		Artist:      copyOpts.artist,
		Album:       copyOpts.album,
		AlbumNum:    copyOpts.albumNum,
	}
	fillFromConfig(opts, cfg)

	rep := newConsoleReporter(verbose, quiet)
	a, err := album.New(opts, &audio.Prober{Filter: opts.FileType}, tags.Writer{}, rep, log)
	if err != nil {
		return err
	}

	started := time.Now()
	sum, runErr := a.Run(cmd.Context())
	rep.finish()

	recordRun(cfg, opts, sum, runErr, started, log)

	if sum != nil {
		printShortLog(sum)
	}
	if runErr != nil {
		return runErr
	}
	printSummary(opts, sum)
	return nil
}

// fillFromConfig applies config-supplied defaults for values the flags left
// unset.
func fillFromConfig(opts *album.Options, cfg *config.Config) {
	if opts.Artist == "" {
		opts.Artist = cfg.Tags.Artist
	}
	if opts.Album == "" {
		opts.Album = cfg.Tags.Album
	}
	if opts.FileType == "" {
		opts.FileType = cfg.Probe.FileType
	}
	if cfg.Console.Verbose {
		verbose = true
	}
}

// recordRun persists the outcome in the history database. History failures
// never fail the run.
func recordRun(cfg *config.Config, opts *album.Options, sum *album.Summary, runErr error, started time.Time, log *slog.Logger) {
	if cfg.History.Disabled || sum == nil {
		return
	}
	store, err := history.Open(cfg.History.Path)
	if err != nil {
		log.Warn("history unavailable", "path", cfg.History.Path, "error", err)
		return
	}
	defer func() { _ = store.Close() }()

	status := history.StatusDone
	switch {
	case errors.Is(runErr, context.Canceled):
		status = history.StatusAborted
	case runErr != nil:
		status = history.StatusFailed
	}
	rec := &history.Run{
		Source:      opts.Src,
		Destination: sum.Destination,
		Files:       int64(sum.Files),
		Bytes:       sum.Bytes,
		Invalid:     int64(sum.Invalid),
		Suspicious:  int64(sum.Suspicious),
		DryRun:      opts.DryRun,
		Status:      status,
		StartedAt:   started,
		FinishedAt:  time.Now(),
	}
	if err := store.Add(rec); err != nil {
		log.Warn("history write failed", "error", err)
	}
}

func printShortLog(sum *album.Summary) {
	if quiet {
		return
	}
	for _, line := range sum.ShortLog {
		fmt.Println(line)
	}
}

func printSummary(opts *album.Options, sum *album.Summary) {
	if quiet {
		return
	}
	verb := "Copied"
	if opts.DryRun {
		verb = "Would copy"
	}
	fmt.Printf("%s %d file(s), %s, in %.1fs.\n",
		verb, sum.Files, album.HumanFine(sum.SrcBytes), sum.Elapsed.Seconds())
	fmt.Printf("Destination: %s\n", sum.Destination)
	if sum.Invalid > 0 || sum.Suspicious > 0 {
		fmt.Printf("Skipped: %d invalid, %d suspicious.\n", sum.Invalid, sum.Suspicious)
	}
}
