package album

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/Tyrn/damastes/internal/audio"
)

// tally is the outcome of the counting pre-pass.
type tally struct {
	files      int
	bytes      int64
	invalid    int
	suspicious int
}

// countAudioFiles probes every file under the source and totals the valid
// ones. Probing is read-only, so unlike the strictly ordered copy loop it
// fans out over a bounded errgroup.
func (a *Album) countAudioFiles(ctx context.Context, src string) (tally, error) {
	fi, err := os.Stat(src)
	if err != nil {
		return tally{}, err
	}
	if !fi.IsDir() {
		return a.countOne(src, fi), nil
	}

	var (
		mu  sync.Mutex
		sum tally
	)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	walkErr := filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		g.Go(func() error {
			// os.Stat, not d.Info(): a symlinked audio file must count as
			// its target, the same way the walker's IsAudio resolves it.
			info, err := os.Stat(path)
			if err != nil {
				return err
			}
			one := a.countOne(path, info)
			mu.Lock()
			sum.files += one.files
			sum.bytes += one.bytes
			sum.invalid += one.invalid
			sum.suspicious += one.suspicious
			if one.files > 0 {
				a.rep.CountStep(d.Name())
			}
			mu.Unlock()
			return nil
		})
		return nil
	})

	if err := g.Wait(); err != nil {
		return tally{}, err
	}
	if walkErr != nil {
		return tally{}, walkErr
	}
	return sum, nil
}

// countOne probes a single regular file.
func (a *Album) countOne(path string, fi fs.FileInfo) tally {
	if !fi.Mode().IsRegular() {
		return tally{}
	}
	switch a.probe.Probe(path) {
	case audio.Valid:
		return tally{files: 1, bytes: fi.Size()}
	case audio.Invalid:
		return tally{invalid: 1}
	case audio.Suspicious:
		return tally{suspicious: 1}
	}
	return tally{}
}
