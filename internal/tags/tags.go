// Package tags writes track metadata onto copied audio files, dispatching on
// the container type. Containers without a supported writer are silently
// left alone.
package tags

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Meta is the tag set written onto one destination file. Zero-valued fields
// are not written.
type Meta struct {
	Track  int // 1-based track index; 0 drops the track number
	Total  int // total track count for the "n/total" form
	Title  string
	Artist string
	Album  string
}

// Writer persists Meta onto audio files.
type Writer struct{}

// Write applies m to the file at path. MP3 gets ID3v2 frames, FLAC gets a
// Vorbis comment block; every other container is a no-op.
func (Writer) Write(path string, m Meta) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		if err := writeID3(path, m); err != nil {
			return fmt.Errorf("tag %q: %w", path, err)
		}
	case ".flac":
		if err := writeFLAC(path, m); err != nil {
			return fmt.Errorf("tag %q: %w", path, err)
		}
	}
	return nil
}
