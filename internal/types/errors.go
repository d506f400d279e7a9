package types

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is wrapped by errors caused by bad caller input
// (malformed identifiers, empty user-text descriptions).
var ErrInvalidArgument = errors.New("invalid argument")

// OutOfBoundsError is returned when attempting to read beyond the input bounds.
type OutOfBoundsError struct {
	Path   string
	What   string
	Offset int64
	Length int
	Size   int64
}

func (e *OutOfBoundsError) Error() string {
	if e.Offset >= e.Size {
		return fmt.Sprintf("%s: offset %d out of bounds (size: %d) while reading %s",
			e.Path, e.Offset, e.Size, e.What)
	}
	return fmt.Sprintf("%s: read of %d bytes at offset %d would exceed size %d while reading %s",
		e.Path, e.Length, e.Offset, e.Size, e.What)
}

// UnsupportedFormatError is returned when the input is not an ID3v2 tag we can read.
type UnsupportedFormatError struct {
	Path   string
	Reason string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("%s: unsupported format: %s", e.Path, e.Reason)
}

// UnsupportedVersionError is returned when a tag or frame cannot be
// read or rendered at the requested ID3v2 revision.
type UnsupportedVersionError struct {
	Version Version
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("unsupported version: %s", e.Version)
}

// CorruptedFrameError is returned when a frame's field data cannot be decoded.
//
// Text frames decode lazily, so this error surfaces on first access to the
// frame's values rather than while the tag is being read.
type CorruptedFrameError struct {
	ID     string
	Reason string
}

func (e *CorruptedFrameError) Error() string {
	return fmt.Sprintf("corrupted %s frame: %s", e.ID, e.Reason)
}

// FrameVersionError is returned when an opaque frame carries format flags
// (compression, encryption, unsynchronisation) that cannot be carried over
// to a different tag revision.
type FrameVersionError struct {
	ID   string
	From Version
	To   Version
}

func (e *FrameVersionError) Error() string {
	return fmt.Sprintf("frame %s: cannot convert flagged frame from %s to %s", e.ID, e.From, e.To)
}

// Warning represents a non-fatal issue encountered while reading a tag.
//
// Warnings indicate problems that don't prevent the rest of the tag from
// being read. Examples include:
//   - A frame whose declared size runs past the end of the tag
//   - An ID3v2.2 frame with no ID3v2.3+ equivalent
//   - A text frame that fails to decode under strict parsing
type Warning struct {
	// Stage where the warning occurred
	Stage string // "header", "frame", "decode"

	// Warning message
	Message string

	// Tag offset where the issue occurred (0 if not applicable)
	Offset int64
}

// String returns a human-readable warning message.
func (w Warning) String() string {
	if w.Offset > 0 {
		return fmt.Sprintf("%s (at offset %d): %s", w.Stage, w.Offset, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Stage, w.Message)
}
