package album

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runAlbum(t *testing.T, opts *Options) (*Summary, *recordingTagWriter, error) {
	t.Helper()
	tw := &recordingTagWriter{}
	a, err := New(opts, extProber{}, tw, nil, nil)
	require.NoError(t, err)
	sum, err := a.Run(context.Background())
	return sum, tw, err
}

func TestRunFlatForward(t *testing.T) {
	src := t.TempDir()
	makeTree(t, src, "f12.mp3", "f4.mp3", "f5.mp3")
	dstRoot := t.TempDir()

	sum, tw, err := runAlbum(t, &Options{Src: src, DstRoot: dstRoot})
	require.NoError(t, err)

	dstDir := filepath.Join(dstRoot, filepath.Base(src))
	assert.Equal(t, dstDir, sum.Destination)
	assert.Equal(t, 3, sum.Files)
	assert.Positive(t, sum.Bytes)

	require.Equal(t,
		[]string{"1-f4.mp3", "2-f5.mp3", "3-f12.mp3"},
		listDst(t, dstDir))

	// Tags carry the natural track order.
	require.Len(t, tw.calls, 3)
	assert.Equal(t, 1, tw.calls[0].meta.Track)
	assert.Equal(t, 3, tw.calls[2].meta.Track)
	assert.Equal(t, 3, tw.calls[0].meta.Total)

	// Source content made it through the temp staging intact.
	got, err := os.ReadFile(filepath.Join(dstDir, "2-f5.mp3"))
	require.NoError(t, err)
	assert.Equal(t, "f5.mp3", string(got))
}

func TestRunReverseKeepsNaturalNumbering(t *testing.T) {
	src := t.TempDir()
	makeTree(t, src, "f12.mp3", "f4.mp3", "f5.mp3")
	dstRoot := t.TempDir()

	sum, tw, err := runAlbum(t, &Options{Src: src, DstRoot: dstRoot, Reverse: true})
	require.NoError(t, err)
	assert.Equal(t, 3, sum.Files)

	// Copy order is f12, f5, f4; numbering still reflects natural position.
	require.Len(t, tw.calls, 3)
	assert.Contains(t, tw.calls[0].path, ".mp3")
	assert.Equal(t, 3, tw.calls[0].meta.Track)
	assert.Equal(t, 2, tw.calls[1].meta.Track)
	assert.Equal(t, 1, tw.calls[2].meta.Track)

	// Destination names are identical to the forward run.
	dstDir := filepath.Join(dstRoot, filepath.Base(src))
	require.Equal(t,
		[]string{"1-f4.mp3", "2-f5.mp3", "3-f12.mp3"},
		listDst(t, dstDir))
}

func TestRunTreeLayout(t *testing.T) {
	src := t.TempDir()
	makeTree(t, src, "b/y.mp3", "a/x.mp3", "z.mp3")
	dstRoot := t.TempDir()

	_, _, err := runAlbum(t, &Options{Src: src, DstRoot: dstRoot, TreeDst: true})
	require.NoError(t, err)

	dstDir := filepath.Join(dstRoot, filepath.Base(src))
	require.Equal(t,
		[]string{"001-a/1-x.mp3", "002-b/2-y.mp3", "3-z.mp3"},
		listDst(t, dstDir))
}

func TestRunTreeStripDecorations(t *testing.T) {
	src := t.TempDir()
	makeTree(t, src, "a/x.mp3", "z.mp3")
	dstRoot := t.TempDir()

	_, _, err := runAlbum(t, &Options{Src: src, DstRoot: dstRoot, TreeDst: true, StripDecorations: true})
	require.NoError(t, err)

	dstDir := filepath.Join(dstRoot, filepath.Base(src))
	require.Equal(t, []string{"a/x.mp3", "z.mp3"}, listDst(t, dstDir))
}

func TestRunUnifiedNameAndTags(t *testing.T) {
	src := t.TempDir()
	makeTree(t, src, "one.mp3", "two.mp3")
	dstRoot := t.TempDir()

	sum, tw, err := runAlbum(t, &Options{
		Src: src, DstRoot: dstRoot,
		UnifiedName: "Nocturne",
		Artist:      "John Field",
		AlbumNum:    5,
	})
	require.NoError(t, err)

	dstDir := filepath.Join(dstRoot, "05-John Field - Nocturne")
	assert.Equal(t, dstDir, sum.Destination)
	require.Equal(t,
		[]string{"1-Nocturne - John Field.mp3", "2-Nocturne - John Field.mp3"},
		listDst(t, dstDir))

	// Album tag defaults to the unified name.
	require.Len(t, tw.calls, 2)
	assert.Equal(t, "John Field", tw.calls[0].meta.Artist)
	assert.Equal(t, "Nocturne", tw.calls[0].meta.Album)
	assert.Equal(t, "1 J.F. - Nocturne", tw.calls[0].meta.Title)
}

func TestRunTitleModes(t *testing.T) {
	src := t.TempDir()
	makeTree(t, src, "song.mp3")
	dstRoot := t.TempDir()

	_, tw, err := runAlbum(t, &Options{Src: src, DstRoot: dstRoot, Album: "Partitas", FileTitleNum: true})
	require.NoError(t, err)
	require.Len(t, tw.calls, 1)
	assert.Equal(t, "1>song", tw.calls[0].meta.Title)

	dstRoot2 := t.TempDir()
	_, tw2, err := runAlbum(t, &Options{Src: src, DstRoot: dstRoot2, Album: "Partitas", FileTitle: true})
	require.NoError(t, err)
	assert.Equal(t, "song", tw2.calls[0].meta.Title)
	assert.Equal(t, "Partitas", tw2.calls[0].meta.Album)
}

func TestRunDropTrackNumber(t *testing.T) {
	src := t.TempDir()
	makeTree(t, src, "song.mp3")
	dstRoot := t.TempDir()

	_, tw, err := runAlbum(t, &Options{Src: src, DstRoot: dstRoot, DropTrackNumber: true})
	require.NoError(t, err)
	require.Len(t, tw.calls, 1)
	assert.Zero(t, tw.calls[0].meta.Track)
	assert.Zero(t, tw.calls[0].meta.Total)
}

func TestRunDestinationExists(t *testing.T) {
	src := t.TempDir()
	makeTree(t, src, "song.mp3")
	dstRoot := t.TempDir()
	dstDir := filepath.Join(dstRoot, filepath.Base(src))
	require.NoError(t, os.MkdirAll(filepath.Join(dstDir, "keep"), 0755))

	_, _, err := runAlbum(t, &Options{Src: src, DstRoot: dstRoot})
	require.ErrorIs(t, err, ErrDstExists)

	// Destination untouched, nothing copied.
	_, statErr := os.Stat(filepath.Join(dstDir, "keep"))
	require.NoError(t, statErr)
	require.Empty(t, listDst(t, dstDir))
}

func TestRunOverwrite(t *testing.T) {
	src := t.TempDir()
	makeTree(t, src, "song.mp3")
	dstRoot := t.TempDir()
	dstDir := filepath.Join(dstRoot, filepath.Base(src))
	require.NoError(t, os.MkdirAll(dstDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dstDir, "stale.mp3"), []byte("old"), 0644))

	_, _, err := runAlbum(t, &Options{Src: src, DstRoot: dstRoot, Overwrite: true})
	require.NoError(t, err)

	// Never merged: the stale file is gone.
	require.Equal(t, []string{"1-song.mp3"}, listDst(t, dstDir))
}

func TestRunDryRun(t *testing.T) {
	src := t.TempDir()
	makeTree(t, src, "one.mp3", "two.mp3")
	dstRoot := t.TempDir()

	sum, tw, err := runAlbum(t, &Options{Src: src, DstRoot: dstRoot, DryRun: true})
	require.NoError(t, err)
	assert.Equal(t, 2, sum.Files)
	assert.Zero(t, sum.Bytes)
	assert.Positive(t, sum.SrcBytes)
	assert.Empty(t, tw.calls)
	require.Empty(t, listDst(t, dstRoot))
}

func TestRunDestInsideSource(t *testing.T) {
	src := t.TempDir()
	makeTree(t, src, "song.mp3", "inner/")

	_, _, err := runAlbum(t, &Options{Src: src, DstRoot: filepath.Join(src, "inner")})
	require.ErrorIs(t, err, ErrDstInsideSource)
}

func TestRunDestInsideSourceDryRunOnlyLogs(t *testing.T) {
	src := t.TempDir()
	makeTree(t, src, "song.mp3", "inner/")

	sum, _, err := runAlbum(t, &Options{Src: src, DstRoot: filepath.Join(src, "inner"), DryRun: true})
	require.NoError(t, err)
	assert.NotEmpty(t, sum.ShortLog)
}

func TestRunNoAudioFiles(t *testing.T) {
	src := t.TempDir()
	makeTree(t, src, "readme.txt")

	_, _, err := runAlbum(t, &Options{Src: src, DstRoot: t.TempDir()})
	require.ErrorIs(t, err, ErrNoAudioFiles)
}

func TestRunSourceMissing(t *testing.T) {
	_, _, err := runAlbum(t, &Options{Src: filepath.Join(t.TempDir(), "gone"), DstRoot: t.TempDir()})
	require.ErrorIs(t, err, ErrSourceNotFound)
}

func TestRunDropDst(t *testing.T) {
	src := t.TempDir()
	makeTree(t, src, "song.mp3")
	dstRoot := t.TempDir()

	_, _, err := runAlbum(t, &Options{Src: src, DstRoot: dstRoot, DropDst: true})
	require.NoError(t, err)
	require.Equal(t, []string{"1-song.mp3"}, listDst(t, dstRoot))
}

func TestRunSingleFileSource(t *testing.T) {
	dir := t.TempDir()
	makeTree(t, dir, "solo.mp3")
	dstRoot := t.TempDir()

	sum, _, err := runAlbum(t, &Options{Src: filepath.Join(dir, "solo.mp3"), DstRoot: dstRoot})
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Files)
	// The album directory takes the file's stem.
	require.Equal(t, []string{"solo/1-solo.mp3"}, listDst(t, dstRoot))
}

func TestNewRejectsTreeReverse(t *testing.T) {
	_, err := New(&Options{Src: "x", DstRoot: "y", TreeDst: true, Reverse: true}, extProber{}, &recordingTagWriter{}, nil, nil)
	require.ErrorIs(t, err, ErrBadOptions)
}

func TestRunFollowsFileSymlinks(t *testing.T) {
	src := t.TempDir()
	makeTree(t, src, "f1.mp3")
	require.NoError(t, os.Symlink(filepath.Join(src, "f1.mp3"), filepath.Join(src, "f2.mp3")))
	dstRoot := t.TempDir()

	// The pre-pass and the walker must agree that a symlinked audio file
	// is audio, or the post-walk count invariant trips.
	sum, _, err := runAlbum(t, &Options{Src: src, DstRoot: dstRoot})
	require.NoError(t, err)
	assert.Equal(t, 2, sum.Files)

	dstDir := filepath.Join(dstRoot, filepath.Base(src))
	require.Equal(t, []string{"1-f1.mp3", "2-f2.mp3"}, listDst(t, dstDir))
}

func TestCountFollowsFileSymlinks(t *testing.T) {
	src := t.TempDir()
	makeTree(t, src, "real.mp3")
	require.NoError(t, os.Symlink(filepath.Join(src, "real.mp3"), filepath.Join(src, "linked.mp3")))

	a, err := New(&Options{Src: src}, extProber{}, nil, nil, nil)
	require.NoError(t, err)

	sum, err := a.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, sum.Files)
}

func TestCountReportsEachValidFile(t *testing.T) {
	src := t.TempDir()
	var entries []string
	for i := 0; i < 200; i++ {
		entries = append(entries, fmt.Sprintf("d%d/t%d.mp3", i%8, i))
	}
	makeTree(t, src, entries...)

	rep := &countingReporter{}
	a, err := New(&Options{Src: src}, extProber{}, nil, rep, nil)
	require.NoError(t, err)

	sum, err := a.Count(context.Background())
	require.NoError(t, err)
	require.Equal(t, 200, sum.Files)
	// Steps are delivered under the pre-pass tally lock; a plain counter
	// must come out exact.
	assert.Equal(t, 200, rep.steps)
}

func TestCountMode(t *testing.T) {
	src := t.TempDir()
	makeTree(t, src, "a.mp3", "b/c.ogg", "skip.txt")

	a, err := New(&Options{Src: src}, extProber{}, &recordingTagWriter{}, nil, nil)
	require.NoError(t, err)

	sum, err := a.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, sum.Files)
	assert.Positive(t, sum.SrcBytes)
}
