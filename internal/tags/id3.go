package tags

import (
	"fmt"

	"github.com/bogem/id3v2/v2"
)

// writeID3 updates the ID3v2 tag of an MP3 file in place, preserving frames
// it does not own.
func writeID3(path string, m Meta) error {
	t, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return fmt.Errorf("open id3: %w", err)
	}
	defer t.Close()

	t.SetDefaultEncoding(id3v2.EncodingUTF8)
	t.SetVersion(4)

	if m.Track > 0 {
		t.AddTextFrame("TRCK", id3v2.EncodingUTF8, fmt.Sprintf("%d/%d", m.Track, m.Total))
	}
	if m.Title != "" {
		t.SetTitle(m.Title)
	}
	if m.Artist != "" {
		t.SetArtist(m.Artist)
	}
	if m.Album != "" {
		t.SetAlbum(m.Album)
	}

	if err := t.Save(); err != nil {
		return fmt.Errorf("save id3: %w", err)
	}
	return nil
}
