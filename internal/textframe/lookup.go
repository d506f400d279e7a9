package textframe

import (
	"fmt"

	"github.com/simonhull/id3text/internal/frame"
	"github.com/simonhull/id3text/internal/textcodec"
	"github.com/simonhull/id3text/internal/types"
)

// Container is the part of a tag the lookups need.
type Container interface {
	// Frames returns the frames with the given identifier, in tag order.
	Frames(id string) []frame.Frame
	// AddFrame appends f to the tag.
	AddFrame(f frame.Frame)
}

// Find returns the first text frame in c with identifier id. On a miss it
// returns nil, or when create is set, a new empty frame using enc that has
// been added to c. TXXX frames are keyed by description; use FindUser.
func Find(c Container, id string, enc textcodec.Encoding, create bool) (*TextFrame, error) {
	if len(id) != 4 {
		return nil, fmt.Errorf("text frame %q: %w: identifier must be 4 characters", id, types.ErrInvalidArgument)
	}
	if id == UserTextID {
		return nil, fmt.Errorf("text frame %s: %w: look up by description", id, types.ErrInvalidArgument)
	}

	for _, f := range c.Frames(id) {
		if t, ok := f.(*TextFrame); ok {
			return t, nil
		}
	}
	if !create {
		return nil, nil
	}

	t := New(id, enc)
	c.AddFrame(t)
	return t, nil
}

// FindUser returns the first TXXX frame in c whose description equals
// description exactly. Frames whose description cannot be decoded are
// skipped. On a miss it returns nil, or when create is set, a new frame
// added to c.
func FindUser(c Container, description string, enc textcodec.Encoding, create bool) (*UserTextFrame, error) {
	if description == "" {
		return nil, fmt.Errorf("user text frame: %w: empty description", types.ErrInvalidArgument)
	}

	for _, f := range c.Frames(UserTextID) {
		u, ok := f.(*UserTextFrame)
		if !ok {
			continue
		}
		got, err := u.Description()
		if err != nil {
			continue
		}
		if got == description {
			return u, nil
		}
	}
	if !create {
		return nil, nil
	}

	u := NewUser(description, enc)
	c.AddFrame(u)
	return u, nil
}
