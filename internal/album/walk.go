package album

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/Tyrn/damastes/pkg/natsort"
)

// Item is one copy instruction streamed out of the walk: the file's sequence
// index, the destination subdirectory segments accumulated from the album
// root, and the file itself.
type Item struct {
	Index    int
	StepDown []string // destination subdirectory segments; raw source names in flat layout, decorated in tree layout
	SrcPath  string   // absolute path of the source file
	Name     string   // the source file's own name
}

// counter allocates sequence indices across the whole walk. The step is +1
// forward and -1 in reverse; the counter is the only mutable state shared
// between recursion levels.
type counter struct {
	next, step int
}

func (c *counter) take() int {
	n := c.next
	c.next += c.step
	return n
}

// walker traverses the source tree depth-first, visiting entries in natural
// (or lexicographic) order and streaming Items to a callback. A walker is
// good for a single pass; build a fresh one to walk again.
type walker struct {
	opts  *Options
	probe Prober
	count counter
}

func newWalker(opts *Options, probe Prober, total int) *walker {
	c := counter{next: 1, step: 1}
	if opts.Reverse {
		c = counter{next: total, step: -1}
	}
	return &walker{opts: opts, probe: probe, count: c}
}

// walk streams every audio file under the source root to fn, stopping at the
// first error. A single audio file as the source is treated as a one-file
// directory.
func (w *walker) walk(fn func(Item) error) error {
	fi, err := os.Stat(w.opts.Src)
	if err != nil {
		return fmt.Errorf("stat source: %w", err)
	}
	if !fi.IsDir() {
		if !w.probe.IsAudio(w.opts.Src) {
			return nil
		}
		return fn(Item{
			Index:   w.count.take(),
			SrcPath: w.opts.Src,
			Name:    filepath.Base(w.opts.Src),
		})
	}
	return w.walkDir(w.opts.Src, nil, fn)
}

func (w *walker) walkDir(dir string, stepDown []string, fn func(Item) error) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("list %q: %w", dir, err)
	}

	var dirs, files []string
	for _, e := range entries {
		if e.IsDir() {
			dirs = append(dirs, e.Name())
			continue
		}
		if w.probe.IsAudio(filepath.Join(dir, e.Name())) {
			files = append(files, e.Name())
		}
	}
	w.sortNames(dirs, false)
	w.sortNames(files, true)

	into := func() error {
		for i, d := range dirs {
			seg := d
			if w.opts.TreeDst {
				seg = decorateDirName(w.opts, i+1, d)
			}
			step := append(slices.Clone(stepDown), seg)
			if err := w.walkDir(filepath.Join(dir, d), step, fn); err != nil {
				return err
			}
		}
		return nil
	}
	along := func() error {
		for _, f := range files {
			item := Item{
				Index:    w.count.take(),
				StepDown: stepDown,
				SrcPath:  filepath.Join(dir, f),
				Name:     f,
			}
			if err := fn(item); err != nil {
				return err
			}
		}
		return nil
	}

	// Forward mode descends into subdirectories before taking this level's
	// files; reverse mode flips that, so the overall emission runs
	// last-file-first while each directory keeps its own order.
	if w.opts.Reverse {
		if err := along(); err != nil {
			return err
		}
		return into()
	}
	if err := into(); err != nil {
		return err
	}
	return along()
}

// sortNames orders names naturally or lexicographically. Reverse mode sorts
// with a flipped comparator rather than reversing afterwards, so ties keep
// their grouping. File names compare by stem, extensions ignored.
func (w *walker) sortNames(names []string, byStem bool) {
	cmp := func(a, b string) int {
		if w.opts.SortLex {
			if byStem {
				a, b = stem(a), stem(b)
			}
			return strings.Compare(a, b)
		}
		if byStem {
			return natsort.StemCompare(a, b)
		}
		return natsort.Compare(a, b)
	}
	slices.SortStableFunc(names, func(a, b string) int {
		if w.opts.Reverse {
			return cmp(b, a)
		}
		return cmp(a, b)
	})
}

// stem returns the file name without its extension.
func stem(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}
