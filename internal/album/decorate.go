package album

import (
	"fmt"
	"path/filepath"
	"strings"
)

// decorateFileName computes the destination file name for one walk item.
// width is the digit length of the total file count, so indices never need
// more digits than the largest one.
//
// Flat layout always decorates, even with decorations stripped, since
// undecorated flat names would collide; tree layout relies on position in
// the mirrored hierarchy instead, so stripping there returns the name as is.
func decorateFileName(opts *Options, index, width int, stepDown []string, name string) string {
	if opts.StripDecorations && opts.TreeDst {
		return name
	}

	prefix := fmt.Sprintf("%0*d", width, index)
	if opts.PrependSubdirName && !opts.TreeDst && len(stepDown) > 0 {
		prefix += "-[" + strings.Join(stepDown, "][") + "]-"
	} else {
		prefix += "-"
	}

	if opts.UnifiedName != "" {
		return prefix + opts.UnifiedName + artistPart(opts, " - ", "") + filepath.Ext(name)
	}
	return prefix + name
}

// decorateDirName numbers a mirrored directory in tree layout; index is the
// directory's 1-based position among its siblings.
func decorateDirName(opts *Options, index int, name string) string {
	if opts.StripDecorations {
		return name
	}
	return fmt.Sprintf("%03d-%s", index, name)
}

// artistPart returns the artist option shaped to be part of a name, or
// nothing if no artist is configured.
func artistPart(opts *Options, prefix, suffix string) string {
	if opts.Artist != "" {
		return prefix + opts.Artist + suffix
	}
	return ""
}
