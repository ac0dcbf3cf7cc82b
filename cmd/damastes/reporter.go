package main

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"

	"github.com/Tyrn/damastes/internal/album"
)

// consoleReporter renders run progress on the terminal: a spinner while the
// counting pre-pass scans the source, then a counted bar (or per-file lines
// in verbose mode) for the copy loop.
type consoleReporter struct {
	verbose bool
	quiet   bool

	spinner *progressbar.ProgressBar
	bar     *progressbar.ProgressBar
}

func newConsoleReporter(verbose, quiet bool) *consoleReporter {
	return &consoleReporter{verbose: verbose, quiet: quiet}
}

func (r *consoleReporter) CountStep(name string) {
	if r.quiet || r.verbose {
		return
	}
	if r.spinner == nil {
		r.spinner = progressbar.NewOptions(-1,
			progressbar.OptionSetDescription("Counting"),
			progressbar.OptionSpinnerType(14),
			progressbar.OptionSetWriter(os.Stderr),
		)
	}
	_ = r.spinner.Add(1)
}

func (r *consoleReporter) FileCopied(index, total int, dst string, srcBytes, dstBytes int64) {
	if r.quiet {
		return
	}
	r.stopSpinner()
	if r.verbose {
		fmt.Printf("%4d/%d %s %s\n", index, total, album.HumanFine(dstBytes), dst)
		return
	}
	if r.bar == nil {
		r.bar = progressbar.NewOptions(total,
			progressbar.OptionSetDescription("Copying"),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionShowIts(),
			progressbar.OptionSetItsString("files"),
			progressbar.OptionSetWriter(os.Stderr),
		)
	}
	_ = r.bar.Add(1)
}

// finish closes out whatever progress display is active so the summary
// starts on a fresh line.
func (r *consoleReporter) finish() {
	r.stopSpinner()
	if r.bar != nil {
		_ = r.bar.Finish()
		fmt.Fprintln(os.Stderr)
		r.bar = nil
	}
}

func (r *consoleReporter) stopSpinner() {
	if r.spinner != nil {
		_ = r.spinner.Finish()
		fmt.Fprintln(os.Stderr)
		r.spinner = nil
	}
}
