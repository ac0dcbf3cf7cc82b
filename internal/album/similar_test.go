package album

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindSimilarStems(t *testing.T) {
	t.Run("accent and case variants flagged", func(t *testing.T) {
		got := findSimilarStems([]string{"Café Song", "cafe song", "Adagio"})
		assert.Equal(t, []string{`Suspiciously similar: "Café Song" / "cafe song".`}, got)
	})

	t.Run("distinct stems pass", func(t *testing.T) {
		assert.Empty(t, findSimilarStems([]string{"Allegro", "Adagio", "Presto"}))
	})

	t.Run("differing numbers are never duplicates", func(t *testing.T) {
		assert.Empty(t, findSimilarStems([]string{"01 - Nocturne", "02 - Nocturne"}))
	})

	t.Run("same numbers still flagged", func(t *testing.T) {
		got := findSimilarStems([]string{"03 Nocturne", "03-Nocturne."})
		assert.Len(t, got, 1)
	})

	t.Run("huge albums skip the scan", func(t *testing.T) {
		stems := make([]string, similarStemCap+1)
		for i := range stems {
			stems[i] = fmt.Sprintf("track %d", i)
		}
		assert.Nil(t, findSimilarStems(stems))
	})
}

func TestNormalizeStem(t *testing.T) {
	assert.Equal(t, "cafe dumonde", normalizeStem("  Café   du.Monde!  "))
	assert.Equal(t, "", normalizeStem("---"))
}

func TestDigitsOnly(t *testing.T) {
	assert.Equal(t, "0312", digitsOnly("03 - track 12"))
	assert.Equal(t, "", digitsOnly("no numbers"))
}
