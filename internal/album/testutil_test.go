package album

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Tyrn/damastes/internal/audio"
	"github.com/Tyrn/damastes/internal/tags"
)

// extProber recognizes audio by extension alone, so walker and orchestrator
// tests don't need real tag containers.
type extProber struct{}

func (extProber) Probe(path string) audio.Kind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3", ".ogg", ".flac":
		return audio.Valid
	}
	return audio.NotAudio
}

func (p extProber) IsAudio(path string) bool {
	fi, err := os.Stat(path)
	if err != nil || !fi.Mode().IsRegular() {
		return false
	}
	return p.Probe(path) == audio.Valid
}

// countingReporter counts pre-pass steps without any locking of its own,
// relying on the serialization the Reporter contract promises.
type countingReporter struct {
	steps int
}

func (r *countingReporter) CountStep(string) { r.steps++ }

func (r *countingReporter) FileCopied(int, int, string, int64, int64) {}

// recordingTagWriter captures tag writes instead of touching containers.
type recordingTagWriter struct {
	calls []tagCall
}

type tagCall struct {
	path string
	meta tags.Meta
}

func (w *recordingTagWriter) Write(path string, m tags.Meta) error {
	w.calls = append(w.calls, tagCall{path: path, meta: m})
	return nil
}

// makeTree materializes a fixture tree: entries ending in "/" become
// directories, everything else a small file with its name as content.
func makeTree(t *testing.T, root string, entries ...string) {
	t.Helper()
	for _, e := range entries {
		path := filepath.Join(root, filepath.FromSlash(strings.TrimSuffix(e, "/")))
		if strings.HasSuffix(e, "/") {
			require.NoError(t, os.MkdirAll(path, 0755))
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(e), 0644))
	}
}

// listDst returns every file under root as a slash-joined relative path,
// sorted.
func listDst(t *testing.T, root string) []string {
	t.Helper()
	var files []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	require.NoError(t, err)
	return files
}
