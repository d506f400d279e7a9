package id3text

import (
	"github.com/simonhull/id3text/internal/types"
)

// ErrInvalidArgument is wrapped by errors caused by bad caller input.
var ErrInvalidArgument = types.ErrInvalidArgument

// OutOfBoundsError is an alias to types.OutOfBoundsError.
// Re-exporting from internal/types to maintain public API.
type OutOfBoundsError = types.OutOfBoundsError

// UnsupportedFormatError is an alias to types.UnsupportedFormatError.
type UnsupportedFormatError = types.UnsupportedFormatError

// UnsupportedVersionError is an alias to types.UnsupportedVersionError.
type UnsupportedVersionError = types.UnsupportedVersionError

// CorruptedFrameError is an alias to types.CorruptedFrameError.
type CorruptedFrameError = types.CorruptedFrameError

// FrameVersionError is an alias to types.FrameVersionError.
type FrameVersionError = types.FrameVersionError

// Warning is an alias to types.Warning.
type Warning = types.Warning
