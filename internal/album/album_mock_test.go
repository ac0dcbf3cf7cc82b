package album

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Tyrn/damastes/internal/album/mocks"
)

func TestRunTagFailureAbortsCleanly(t *testing.T) {
	ctrl := gomock.NewController(t)

	src := t.TempDir()
	makeTree(t, src, "f1.mp3", "f2.mp3")
	dstRoot := t.TempDir()

	tagErr := errors.New("container rejected the frame")
	w := mocks.NewMockTagWriter(ctrl)
	gomock.InOrder(
		w.EXPECT().Write(gomock.Any(), gomock.Any()).Return(nil),
		w.EXPECT().Write(gomock.Any(), gomock.Any()).Return(tagErr),
	)

	a, err := New(&Options{Src: src, DstRoot: dstRoot}, extProber{}, w, nil, nil)
	require.NoError(t, err)

	sum, err := a.Run(context.Background())
	require.ErrorIs(t, err, tagErr)

	// First file landed; the failed one never reached the destination.
	require.Equal(t, 1, sum.Files)
	dstDir := filepath.Join(dstRoot, filepath.Base(src))
	require.Equal(t, []string{"1-f1.mp3"}, listDst(t, dstDir))
}

func TestRunReportsEveryFile(t *testing.T) {
	ctrl := gomock.NewController(t)

	src := t.TempDir()
	makeTree(t, src, "a.mp3", "b.mp3")
	dstRoot := t.TempDir()

	rep := mocks.NewMockReporter(ctrl)
	rep.EXPECT().CountStep(gomock.Any()).Times(2)
	gomock.InOrder(
		rep.EXPECT().FileCopied(1, 2, gomock.Any(), gomock.Any(), gomock.Any()),
		rep.EXPECT().FileCopied(2, 2, gomock.Any(), gomock.Any(), gomock.Any()),
	)

	a, err := New(&Options{Src: src, DstRoot: dstRoot}, extProber{}, &recordingTagWriter{}, rep, nil)
	require.NoError(t, err)

	_, err = a.Run(context.Background())
	require.NoError(t, err)
}
