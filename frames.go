package id3text

import (
	"github.com/simonhull/id3text/internal/frame"
	"github.com/simonhull/id3text/internal/tag"
	"github.com/simonhull/id3text/internal/textcodec"
	"github.com/simonhull/id3text/internal/textframe"
	"github.com/simonhull/id3text/internal/types"
)

type (
	// Tag is an ordered collection of frames.
	Tag = tag.Tag
	// Frame is any frame held by a Tag.
	Frame = frame.Frame
	// FrameHeader is the identifier and flags of a frame.
	FrameHeader = frame.Header
	// RawFrame is a frame kept as opaque bytes.
	RawFrame = frame.Raw
	// TextFrame is a text information frame.
	TextFrame = textframe.TextFrame
	// UserTextFrame is a TXXX frame keyed by its description.
	UserTextFrame = textframe.UserTextFrame
	// Container is what Find and FindUser search.
	Container = textframe.Container
	// Encoding is a text encoding byte.
	Encoding = textcodec.Encoding
	// ID3Version is the major revision of a tag.
	ID3Version = types.Version
)

// Text encodings.
const (
	Latin1  = textcodec.Latin1
	UTF16   = textcodec.UTF16
	UTF16BE = textcodec.UTF16BE
	UTF8    = textcodec.UTF8
)

// Tag revisions.
const (
	V22 = types.V22
	V23 = types.V23
	V24 = types.V24
)

// NewTag returns an empty tag meant to be written as version v.
func NewTag(v ID3Version) *Tag {
	return tag.New(v)
}

// NewTextFrame returns an empty text frame.
func NewTextFrame(id string, enc Encoding) *TextFrame {
	return textframe.New(id, enc)
}

// NewUserTextFrame returns a TXXX frame with the given description.
func NewUserTextFrame(description string, enc Encoding) *UserTextFrame {
	return textframe.NewUser(description, enc)
}

// Find returns the first text frame with identifier id, creating and adding
// one when create is set. A miss without create returns nil, nil.
func Find(c Container, id string, enc Encoding, create bool) (*TextFrame, error) {
	return textframe.Find(c, id, enc, create)
}

// FindUser returns the TXXX frame with the given description, creating and
// adding one when create is set.
func FindUser(c Container, description string, enc Encoding, create bool) (*UserTextFrame, error) {
	return textframe.FindUser(c, description, enc, create)
}

// FrameName returns a human-readable name for a frame identifier, or the
// identifier itself when it is unknown.
func FrameName(id string) string {
	return frame.Name(id)
}
