// Package audio decides whether a path is a recognized audio file and
// classifies the failures for end-of-run reporting.
package audio

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/dhowden/tag"
)

// knownExtensions are the audio container types the copier recognizes,
// upper-case and without the leading dot.
var knownExtensions = map[string]bool{
	"MP3": true, "OGG": true, "M4A": true, "M4B": true,
	"OPUS": true, "WMA": true, "FLAC": true, "APE": true,
}

// Kind classifies one probed path.
type Kind int

const (
	// NotAudio is an unrecognized extension, or a file excluded by the filter.
	NotAudio Kind = iota
	// Valid is a readable audio file with a parseable tag container.
	Valid
	// Invalid is a recognized extension that could not be read.
	Invalid
	// Suspicious is a recognized extension with no parseable tag container.
	Suspicious
)

// Prober answers the "is this an audio file" question for the walker and the
// counting pre-pass.
type Prober struct {
	// Filter restricts probing to a single type ("mp3") or, when it contains
	// metacharacters, to a file-name glob ("*.ogg"). Empty accepts all known
	// extensions.
	Filter string
}

// Probe inspects the file at path and classifies it. The path is expected to
// be a regular file; directories are partitioned away by the callers.
func (p *Prober) Probe(path string) Kind {
	ext := strings.ToUpper(strings.TrimPrefix(filepath.Ext(path), "."))

	if p.Filter != "" {
		if strings.ContainsAny(p.Filter, "*?[") {
			ok, err := filepath.Match(p.Filter, filepath.Base(path))
			if err != nil || !ok {
				return NotAudio
			}
		} else if ext != strings.ToUpper(strings.TrimPrefix(p.Filter, ".")) {
			return NotAudio
		}
	}

	if !knownExtensions[ext] {
		return NotAudio
	}

	f, err := os.Open(path)
	if err != nil {
		return Invalid
	}
	defer f.Close()

	if _, err := tag.ReadFrom(f); err != nil {
		if errors.Is(err, tag.ErrNoTagsFound) {
			return Suspicious
		}
		return Invalid
	}
	return Valid
}

// IsAudio reports whether path is a regular file recognized as audio.
func (p *Prober) IsAudio(path string) bool {
	fi, err := os.Stat(path)
	if err != nil || !fi.Mode().IsRegular() {
		return false
	}
	return p.Probe(path) == Valid
}
