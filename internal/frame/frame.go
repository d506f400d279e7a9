// Package frame implements the ID3v2 frame envelope: the identifier, size
// and flags header that wraps every frame's field data.
package frame

import (
	"bytes"
	"fmt"

	binutil "github.com/simonhull/id3text/internal/binary"
	"github.com/simonhull/id3text/internal/types"
)

// HeaderSize is the size of an ID3v2.3/2.4 frame header.
const HeaderSize = 10

// HeaderSizeV22 is the size of an ID3v2.2 frame header.
const HeaderSizeV22 = 6

// Frame is a single record inside a tag.
type Frame interface {
	// ID returns the 4-character frame identifier.
	ID() string
	// Render returns the complete frame (header and fields) for version v.
	// Some frames render as more than one frame at older versions.
	Render(v types.Version) ([]byte, error)
}

// Header is the envelope shared by every frame.
type Header struct {
	ID      string
	Flags   Flags
	Version types.Version // revision Flags were read under; 0 for new frames
}

// NewHeader returns the header for a newly created frame.
func NewHeader(id string) Header {
	return Header{ID: id}
}

// ValidID reports whether id is a well-formed 4-character identifier
// (A-Z, 0-9).
func ValidID(id string) bool {
	if len(id) != 4 {
		return false
	}
	for i := 0; i < len(id); i++ {
		c := id[i]
		if (c < 'A' || c > 'Z') && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}

// Wrap prepends a header for version v to fields.
func (h Header) Wrap(fields []byte, v types.Version) ([]byte, error) {
	if v != types.V23 && v != types.V24 {
		return nil, &types.UnsupportedVersionError{Version: v}
	}
	if len(h.ID) != 4 {
		return nil, fmt.Errorf("frame %q: %w: identifier must be 4 characters", h.ID, types.ErrInvalidArgument)
	}

	flags, err := h.flagsFor(v)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.Grow(HeaderSize + len(fields))
	sw := binutil.NewSafeWriter(&buf)

	if err := sw.WriteString(h.ID); err != nil {
		return nil, err
	}
	if v == types.V24 {
		if len(fields) > binutil.MaxSynchsafe {
			return nil, fmt.Errorf("frame %s: %d bytes exceeds synchsafe size limit", h.ID, len(fields))
		}
		err = sw.WriteSynchsafe(uint32(len(fields)))
	} else {
		err = binutil.Write[uint32](sw, uint32(len(fields)))
	}
	if err != nil {
		return nil, err
	}
	if err := binutil.Write[uint16](sw, flags.encode(v)); err != nil {
		return nil, err
	}
	if err := sw.WriteBytes(fields); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func (h Header) flagsFor(v types.Version) (Flags, error) {
	if h.Version == 0 || h.Version == v {
		return h.Flags, nil
	}
	if h.Flags.Format() {
		return Flags{}, &types.FrameVersionError{ID: h.ID, From: h.Version, To: v}
	}
	return h.Flags, nil
}

// Raw is a frame kept as opaque bytes: non-text frames, and text frames
// whose fields are compressed or encrypted.
type Raw struct {
	Header Header
	Data   []byte
}

// ID returns the frame identifier.
func (r *Raw) ID() string {
	return r.Header.ID
}

// Render re-wraps the stored field bytes unchanged.
func (r *Raw) Render(v types.Version) ([]byte, error) {
	return r.Header.Wrap(r.Data, v)
}
