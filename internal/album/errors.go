package album

import "errors"

var (
	// ErrBadOptions indicates an option combination the run cannot honor.
	ErrBadOptions = errors.New("invalid options")

	// ErrSourceNotFound indicates the source directory or file doesn't exist.
	ErrSourceNotFound = errors.New("source is not there")

	// ErrDstRootNotFound indicates the destination root directory doesn't exist.
	ErrDstRootNotFound = errors.New("destination directory is not there")

	// ErrNoAudioFiles indicates the source holds no supported audio files.
	ErrNoAudioFiles = errors.New("no supported audio files in source")

	// ErrDstExists indicates the computed destination directory already
	// exists and overwriting was not requested.
	ErrDstExists = errors.New("destination directory already exists")

	// ErrDstInsideSource indicates the destination would be copied into itself.
	ErrDstInsideSource = errors.New("destination directory is inside source")

	// ErrCopyFailed indicates the file copy operation failed.
	ErrCopyFailed = errors.New("failed to copy file")

	// ErrCountMismatch is an internal invariant violation: the walk visited a
	// different number of files than the pre-pass counted.
	ErrCountMismatch = errors.New("walked file count does not match pre-count")
)
