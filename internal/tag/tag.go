// Package tag holds an ID3v2 tag as an ordered list of frames and reads and
// writes the tag container around them.
package tag

import (
	"iter"
	"slices"

	"github.com/simonhull/id3text/internal/frame"
	"github.com/simonhull/id3text/internal/types"
)

// HeaderSize is the size of the tag header (and of the ID3v2.4 footer).
const HeaderSize = 10

// Tag is an ordered collection of frames.
//
// A Tag is not safe for concurrent use.
type Tag struct {
	// Version is the revision the tag was read as, or the revision a new
	// tag is meant to be written as.
	Version types.Version

	// Revision is the minor version byte, informational only.
	Revision byte

	// Warnings encountered while reading (non-fatal issues).
	Warnings []types.Warning

	frames []frame.Frame
	size   int64
}

// New returns an empty tag for version v.
func New(v types.Version) *Tag {
	return &Tag{Version: v}
}

// Frames returns the frames with identifier id in tag order.
func (t *Tag) Frames(id string) []frame.Frame {
	var out []frame.Frame
	for _, f := range t.frames {
		if f.ID() == id {
			out = append(out, f)
		}
	}
	return out
}

// AddFrame appends f.
func (t *Tag) AddFrame(f frame.Frame) {
	t.frames = append(t.frames, f)
}

// RemoveFrame removes f, compared by identity. It reports whether f was found.
func (t *Tag) RemoveFrame(f frame.Frame) bool {
	i := slices.Index(t.frames, f)
	if i < 0 {
		return false
	}
	t.frames = slices.Delete(t.frames, i, i+1)
	return true
}

// RemoveFrames removes every frame with identifier id and returns how many
// were removed.
func (t *Tag) RemoveFrames(id string) int {
	n := len(t.frames)
	t.frames = slices.DeleteFunc(t.frames, func(f frame.Frame) bool {
		return f.ID() == id
	})
	return n - len(t.frames)
}

// All returns an iterator over every frame in tag order.
//
// Example:
//
//	for f := range t.All() {
//		fmt.Println(f.ID())
//	}
func (t *Tag) All() iter.Seq[frame.Frame] {
	return func(yield func(frame.Frame) bool) {
		for _, f := range t.frames {
			if !yield(f) {
				return
			}
		}
	}
}

// Len returns the number of frames.
func (t *Tag) Len() int {
	return len(t.frames)
}

// Size returns the number of bytes the tag occupied where it was read
// from, header and footer included. It is 0 for tags built in memory.
func (t *Tag) Size() int64 {
	return t.size
}

func (t *Tag) warn(stage string, offset int64, msg string) {
	t.Warnings = append(t.Warnings, types.Warning{
		Stage:   stage,
		Message: msg,
		Offset:  offset,
	})
}
