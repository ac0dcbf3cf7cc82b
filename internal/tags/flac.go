package tags

import (
	"fmt"
	"strings"

	"github.com/go-flac/flacvorbis"
	flac "github.com/go-flac/go-flac"
)

// writeFLAC rewrites the Vorbis comment block of a FLAC file, replacing the
// fields it owns and carrying every other comment over.
func writeFLAC(path string, m Meta) error {
	f, err := flac.ParseFile(path)
	if err != nil {
		return fmt.Errorf("parse flac: %w", err)
	}

	cmt := flacvorbis.New()
	var keep []*flac.MetaDataBlock
	for _, block := range f.Meta {
		if block.Type != flac.VorbisComment {
			keep = append(keep, block)
			continue
		}
		existing, err := flacvorbis.ParseFromMetaDataBlock(*block)
		if err != nil {
			return fmt.Errorf("parse vorbis comment: %w", err)
		}
		cmt.Comments = append(cmt.Comments, existing.Comments...)
	}

	if m.Track > 0 {
		setComment(cmt, flacvorbis.FIELD_TRACKNUMBER, fmt.Sprintf("%d/%d", m.Track, m.Total))
	}
	if m.Title != "" {
		setComment(cmt, flacvorbis.FIELD_TITLE, m.Title)
	}
	if m.Artist != "" {
		setComment(cmt, flacvorbis.FIELD_ARTIST, m.Artist)
	}
	if m.Album != "" {
		setComment(cmt, flacvorbis.FIELD_ALBUM, m.Album)
	}

	block := cmt.Marshal()
	f.Meta = append(keep, &block)

	if err := f.Save(path); err != nil {
		return fmt.Errorf("save flac: %w", err)
	}
	return nil
}

// setComment replaces every existing FIELD=value comment with a single new
// one. Vorbis field names compare case-insensitively.
func setComment(cmt *flacvorbis.MetaDataBlockVorbisComment, field, value string) {
	prefix := strings.ToUpper(field) + "="
	kept := cmt.Comments[:0]
	for _, c := range cmt.Comments {
		if !strings.HasPrefix(strings.ToUpper(c), prefix) {
			kept = append(kept, c)
		}
	}
	cmt.Comments = kept
	// Add only rejects field names containing '='; ours are constants.
	_ = cmt.Add(field, value)
}
