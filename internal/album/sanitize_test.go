package album

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"AC/DC - Back in Black", "AC DC - Back in Black"},
		{`What? <Really>: "Yes"|No`, "What Really Yes No"},
		{"  padded  ", "padded"},
		{"trailing dots...", "trailing dots"},
		{"plain name", "plain name"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitizeName(tt.in), "in=%q", tt.in)
	}
}

func TestPathWithin(t *testing.T) {
	sep := string(filepath.Separator)
	root := filepath.Join(sep, "music", "src")

	assert.True(t, pathWithin(root, root))
	assert.True(t, pathWithin(filepath.Join(root, "dst"), root))
	assert.False(t, pathWithin(filepath.Join(sep, "music", "srcdst"), root))
	assert.False(t, pathWithin(filepath.Join(sep, "music"), root))
}
