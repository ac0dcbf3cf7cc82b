package album

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionsValidate(t *testing.T) {
	t.Run("source required", func(t *testing.T) {
		err := (&Options{}).Validate()
		require.ErrorIs(t, err, ErrBadOptions)
	})

	t.Run("tree and reverse conflict", func(t *testing.T) {
		err := (&Options{Src: "s", TreeDst: true, Reverse: true}).Validate()
		require.ErrorIs(t, err, ErrBadOptions)
	})

	t.Run("album number range", func(t *testing.T) {
		require.ErrorIs(t, (&Options{Src: "s", AlbumNum: 100}).Validate(), ErrBadOptions)
		require.ErrorIs(t, (&Options{Src: "s", AlbumNum: -1}).Validate(), ErrBadOptions)
		require.NoError(t, (&Options{Src: "s", AlbumNum: 0}).Validate(), "0 means no prefix")
		require.NoError(t, (&Options{Src: "s", AlbumNum: 99}).Validate())
	})

	t.Run("count-only needs no destination", func(t *testing.T) {
		require.NoError(t, (&Options{Src: "s"}).Validate())
	})
}

func TestEffectiveAlbum(t *testing.T) {
	assert.Equal(t, "Nocturnes", (&Options{Album: "Nocturnes", UnifiedName: "n"}).effectiveAlbum())
	assert.Equal(t, "n", (&Options{UnifiedName: "n"}).effectiveAlbum())
	assert.Equal(t, "", (&Options{}).effectiveAlbum())
}
