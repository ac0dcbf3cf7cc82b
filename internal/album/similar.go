package album

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/hbollon/go-edlib"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Two stems this close after normalization, carrying the same embedded
// numbers, usually mean the same recording copied twice into the source.
const similarityThreshold = 0.96

// similarStemCap bounds the pairwise scan; beyond it the advisory is skipped
// rather than going quadratic on a huge album.
const similarStemCap = 500

// findSimilarStems scans the walked file stems for suspiciously similar
// pairs and returns one advisory line per pair.
func findSimilarStems(stems []string) []string {
	if len(stems) > similarStemCap {
		return nil
	}

	normalized := make([]string, len(stems))
	digits := make([]string, len(stems))
	for i, s := range stems {
		normalized[i] = normalizeStem(s)
		digits[i] = digitsOnly(s)
	}

	var advisories []string
	for i := range stems {
		for j := i + 1; j < len(stems); j++ {
			if normalized[i] == "" || digits[i] != digits[j] {
				continue
			}
			score := edlib.JaroWinklerSimilarity(normalized[i], normalized[j])
			if float64(score) >= similarityThreshold {
				advisories = append(advisories,
					fmt.Sprintf("Suspiciously similar: %q / %q.", stems[i], stems[j]))
			}
		}
	}
	return advisories
}

// normalizeStem lowercases, strips accents, and collapses punctuation so
// cosmetic differences don't hide duplicates.
func normalizeStem(s string) string {
	s = strings.ToLower(s)
	s = removeAccents(s)
	var b strings.Builder
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// removeAccents decomposes and drops combining marks: "café" -> "cafe".
func removeAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// digitsOnly concatenates the decimal digits of s, preserving order.
func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
