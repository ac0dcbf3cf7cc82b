package album

import "fmt"

// Options is the complete policy for one run. It is assembled from the CLI
// and config before the run starts and never mutated afterwards; the only
// mutable state of a run is the walk counter.
type Options struct {
	Src     string // source directory or single audio file
	DstRoot string // existing directory the album directory is created in

	DropTrackNumber   bool // do not write track numbers
	StripDecorations  bool // no numeric prefixes on destination names
	FileTitle         bool // title tag from the source file stem
	FileTitleNum      bool // title tag from index + source file stem
	SortLex           bool // lexicographic instead of natural order
	TreeDst           bool // mirror the source tree at the destination
	DropDst           bool // no album directory, files land in DstRoot
	Reverse           bool // descending index assignment, last file copied first
	Overwrite         bool // remove an existing destination directory
	DryRun            bool // walk and report without touching the filesystem
	PrependSubdirName bool // bracketed subdirectory infix in flat names

	FileType    string // audio type or glob filter, e.g. "mp3" or "*.ogg"
	UnifiedName string // single base name for all destination files
	Artist      string // artist tag
	Album       string // album tag
	AlbumNum    int    // 1..99 destination directory prefix; 0 is none
}

// Validate rejects option combinations the run cannot honor.
func (o *Options) Validate() error {
	if o.Src == "" {
		return fmt.Errorf("%w: source is required", ErrBadOptions)
	}
	if o.TreeDst && o.Reverse {
		// The combination has no defined directory numbering; refuse it
		// rather than guess.
		return fmt.Errorf("%w: tree destination cannot be combined with reverse order", ErrBadOptions)
	}
	if o.AlbumNum < 0 || o.AlbumNum > 99 {
		return fmt.Errorf("%w: album number must be 0 (none) or 1..99, got %d", ErrBadOptions, o.AlbumNum)
	}
	return nil
}

// effectiveAlbum returns the album tag, defaulting to the unified name.
func (o *Options) effectiveAlbum() string {
	if o.Album == "" {
		return o.UnifiedName
	}
	return o.Album
}
