// Package album copies a tree of audio files into a freshly created
// destination, renumbering, renaming, and retagging the copies. The copy
// loop is strictly sequential: destination files are written in track order
// because some playback devices stream files in write order.
package album

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/Tyrn/damastes/internal/audio"
	"github.com/Tyrn/damastes/internal/tags"
	"github.com/Tyrn/damastes/pkg/initials"
)

// Prober answers the "is this an audio file" question and classifies the
// failures.
type Prober interface {
	Probe(path string) audio.Kind
	IsAudio(path string) bool
}

// TagWriter persists track metadata onto a copied file.
type TagWriter interface {
	Write(path string, m tags.Meta) error
}

// Reporter receives user-facing progress events. Implementations live at the
// CLI edge; passing nil silences them.
type Reporter interface {
	// CountStep fires for every valid file found by the counting pre-pass.
	// The pre-pass probes files on worker goroutines, but calls are
	// serialized under its tally lock; implementations need no locking of
	// their own.
	CountStep(name string)
	// FileCopied fires after each file of the copy loop, in emission order.
	// dstBytes is zero when nothing was written (dry run, already copied).
	FileCopied(index, total int, dst string, srcBytes, dstBytes int64)
}

type noopReporter struct{}

func (noopReporter) CountStep(string) {}

func (noopReporter) FileCopied(int, int, string, int64, int64) {}

// Summary is the outcome of a run.
type Summary struct {
	Files       int   // valid audio files (count mode) or files walked (copy mode)
	Bytes       int64 // bytes written at the destination
	SrcBytes    int64 // bytes of valid source files
	Invalid     int   // unreadable files with a recognized extension
	Suspicious  int   // recognized extension, no parseable tag container
	Destination string
	Elapsed     time.Duration
	ShortLog    []string // non-fatal notes surfaced after the run
}

// Album orchestrates one run. Build with New, fire with Run or Count.
type Album struct {
	opts  *Options
	probe Prober
	tags  TagWriter
	rep   Reporter
	log   *slog.Logger
	album string // effective album tag; falls back to the unified name
}

// New validates the options and assembles an orchestrator.
func New(opts *Options, probe Prober, w TagWriter, rep Reporter, log *slog.Logger) (*Album, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if rep == nil {
		rep = noopReporter{}
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Album{
		opts:  opts,
		probe: probe,
		tags:  w,
		rep:   rep,
		log:   log,
		album: opts.effectiveAlbum(),
	}, nil
}

// Count runs only the counting pre-pass and reports the totals.
func (a *Album) Count(ctx context.Context) (*Summary, error) {
	start := time.Now()

	src, err := filepath.Abs(a.opts.Src)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(src); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrSourceNotFound, a.opts.Src)
	}

	counted, err := a.countAudioFiles(ctx, src)
	if err != nil {
		return nil, err
	}
	return &Summary{
		Files:      counted.files,
		SrcBytes:   counted.bytes,
		Invalid:    counted.invalid,
		Suspicious: counted.suspicious,
		Elapsed:    time.Since(start),
	}, nil
}

// Run copies and tags the whole album. On error the returned summary holds
// whatever was accomplished before the failure.
func (a *Album) Run(ctx context.Context) (*Summary, error) {
	start := time.Now()

	src, err := filepath.Abs(a.opts.Src)
	if err != nil {
		return nil, err
	}
	fi, err := os.Stat(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrSourceNotFound, a.opts.Src)
	}
	srcIsFile := !fi.IsDir()

	if a.opts.DstRoot == "" {
		return nil, fmt.Errorf("%w: destination is required", ErrBadOptions)
	}
	dstRoot, err := filepath.Abs(a.opts.DstRoot)
	if err != nil {
		return nil, err
	}
	if rfi, err := os.Stat(dstRoot); err != nil || !rfi.IsDir() {
		return nil, fmt.Errorf("%w: %q", ErrDstRootNotFound, a.opts.DstRoot)
	}

	dstDir := filepath.Join(dstRoot, a.destName(src, srcIsFile))
	sum := &Summary{Destination: dstDir}

	if !srcIsFile && pathWithin(dstDir, src) {
		if !a.opts.DryRun {
			return nil, fmt.Errorf("%w: %q is inside %q", ErrDstInsideSource, dstDir, src)
		}
		sum.ShortLog = append(sum.ShortLog,
			fmt.Sprintf("Target directory %q", dstDir),
			fmt.Sprintf("is inside source %q", src),
			"It won't run.")
	}

	counted, err := a.countAudioFiles(ctx, src)
	if err != nil {
		return sum, err
	}
	sum.Invalid, sum.Suspicious = counted.invalid, counted.suspicious
	total := counted.files
	if total < 1 {
		return sum, fmt.Errorf("%w: %q", ErrNoAudioFiles, a.opts.Src)
	}

	if !a.opts.DropDst && !a.opts.DryRun {
		if _, err := os.Stat(dstDir); err == nil {
			if !a.opts.Overwrite {
				return sum, fmt.Errorf("%w: %q", ErrDstExists, dstDir)
			}
			if err := os.RemoveAll(dstDir); err != nil {
				return sum, fmt.Errorf("remove %q: %w", dstDir, err)
			}
		}
		if err := os.MkdirAll(dstDir, 0755); err != nil {
			return sum, fmt.Errorf("create %q: %w", dstDir, err)
		}
	}

	width := len(strconv.Itoa(total))
	artistInitials := ""
	if a.opts.Artist != "" {
		artistInitials = initials.Format(a.opts.Artist)
	}

	// The walker reads the source path from the options; hand it the
	// absolute one without mutating the caller's copy.
	walkOpts := *a.opts
	walkOpts.Src = src

	var stems []string
	walked := 0
	w := newWalker(&walkOpts, a.probe, total)
	err = w.walk(func(item Item) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		walked++
		stems = append(stems, stem(item.Name))

		dstPath := dstDir
		if a.opts.TreeDst && len(item.StepDown) > 0 {
			dstPath = filepath.Join(append([]string{dstDir}, item.StepDown...)...)
		}
		dst := filepath.Join(dstPath, decorateFileName(a.opts, item.Index, width, item.StepDown, item.Name))

		var srcBytes int64
		if sfi, err := os.Stat(item.SrcPath); err == nil {
			srcBytes = sfi.Size()
		}
		sum.SrcBytes += srcBytes

		var dstBytes int64
		if a.opts.DryRun {
			sum.Files++
		} else if _, err := os.Stat(dst); err == nil {
			sum.ShortLog = append(sum.ShortLog,
				fmt.Sprintf("File %q already copied. Review your options.", filepath.Base(dst)))
		} else {
			dstBytes, err = a.copyAndTag(item, dst, a.tagMeta(item, total, artistInitials))
			if err != nil {
				return err
			}
			sum.Files++
			sum.Bytes += dstBytes
		}

		a.rep.FileCopied(item.Index, total, dst, srcBytes, dstBytes)
		a.log.Debug("file done", "index", item.Index, "dst", dst, "bytes", dstBytes)
		return nil
	})
	if err != nil {
		sum.Elapsed = time.Since(start)
		return sum, err
	}

	if walked != total {
		return sum, fmt.Errorf("%w: walked %d, counted %d", ErrCountMismatch, walked, total)
	}

	sum.ShortLog = append(sum.ShortLog, findSimilarStems(stems)...)
	sum.Elapsed = time.Since(start)
	return sum, nil
}

// copyAndTag stages the copy through a temp file, so a failed tag write
// never leaves a half-tagged file at the real destination. The temp file is
// removed on every exit path.
func (a *Album) copyAndTag(item Item, dst string, meta tags.Meta) (int64, error) {
	tmp, err := os.CreateTemp("", "damastes-*"+filepath.Ext(item.Name))
	if err != nil {
		return 0, fmt.Errorf("create temp: %w", err)
	}
	tmpPath := tmp.Name()
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return 0, fmt.Errorf("close temp: %w", err)
	}
	defer func() { _ = os.Remove(tmpPath) }()

	if _, err := copyFile(item.SrcPath, tmpPath); err != nil {
		return 0, err
	}
	if err := a.tags.Write(tmpPath, meta); err != nil {
		return 0, err
	}
	return copyFile(tmpPath, dst)
}

// tagMeta composes the tag set for one walk item.
func (a *Album) tagMeta(item Item, total int, artistInitials string) tags.Meta {
	var m tags.Meta
	if !a.opts.DropTrackNumber {
		m.Track, m.Total = item.Index, total
	}

	title := func(tagging string) string {
		switch {
		case a.opts.FileTitleNum:
			return fmt.Sprintf("%d>%s", item.Index, stem(item.Name))
		case a.opts.FileTitle:
			return stem(item.Name)
		default:
			return fmt.Sprintf("%d %s", item.Index, tagging)
		}
	}

	switch {
	case a.opts.Artist != "" && a.album != "":
		m.Title = title(artistInitials + " - " + a.album)
		m.Artist, m.Album = a.opts.Artist, a.album
	case a.opts.Artist != "":
		m.Title, m.Artist = title(a.opts.Artist), a.opts.Artist
	case a.album != "":
		m.Title, m.Album = title(a.album), a.album
	}
	return m
}

// destName computes the directory created under the destination root:
// optional two-digit album-number prefix, then the artist/unified-name
// composition, or the source's own name.
func (a *Album) destName(src string, srcIsFile bool) string {
	if a.opts.DropDst {
		return ""
	}
	prefix := ""
	if a.opts.AlbumNum > 0 {
		prefix = fmt.Sprintf("%02d-", a.opts.AlbumNum)
	}
	switch {
	case a.opts.UnifiedName != "":
		return prefix + sanitizeName(artistPart(a.opts, "", " - ")+a.opts.UnifiedName)
	case srcIsFile:
		return prefix + stem(filepath.Base(src))
	default:
		return prefix + filepath.Base(src)
	}
}
