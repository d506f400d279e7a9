package tag

import (
	"encoding/binary"
	"fmt"
	"io"

	binutil "github.com/simonhull/id3text/internal/binary"
	"github.com/simonhull/id3text/internal/frame"
	"github.com/simonhull/id3text/internal/registry"
	"github.com/simonhull/id3text/internal/types"
)

// Tag header flags.
const (
	flagUnsynchronisation = 0x80
	flagExtendedHeader    = 0x40 // compression in ID3v2.2
	flagFooter            = 0x10
)

// Present reports whether r starts with an ID3v2 tag identifier.
func Present(r io.ReaderAt, size int64) bool {
	if size < HeaderSize {
		return false
	}
	magic := make([]byte, 3)
	if _, err := r.ReadAt(magic, 0); err != nil {
		return false
	}
	return string(magic) == "ID3"
}

// Read parses the ID3v2 tag at the start of r.
//
// Frames are built through the registry, so text frames come back as
// lazily decoded *textframe.TextFrame values once that package is linked
// in; everything else is kept as *frame.Raw. ID3v2.2 identifiers are
// upgraded to their 4-character forms.
//
// Problems confined to a single frame are recorded in Tag.Warnings and
// reading carries on with the next frame.
func Read(r io.ReaderAt, size int64, path string) (*Tag, error) {
	sr := binutil.NewSafeReader(r, size, path)
	cr := binutil.NewChainReader(binutil.NewReader(sr, 0))

	magic := cr.Bytes(3, "tag identifier")
	major := binutil.ReadChained[uint8](cr, "major version")
	revision := binutil.ReadChained[uint8](cr, "revision")
	flags := binutil.ReadChained[uint8](cr, "tag flags")
	sizeBytes := cr.Bytes(4, "tag size")
	if err := cr.Error(); err != nil {
		return nil, &types.UnsupportedFormatError{
			Path:   path,
			Reason: "failed to read ID3v2 header",
		}
	}

	if string(magic) != "ID3" {
		return nil, &types.UnsupportedFormatError{
			Path:   path,
			Reason: "not an ID3v2 tag (missing ID3 header)",
		}
	}

	v := types.Version(major)
	if !v.Valid() {
		return nil, &types.UnsupportedVersionError{Version: v}
	}
	if !synchsafe(sizeBytes) {
		return nil, &types.UnsupportedFormatError{
			Path:   path,
			Reason: "tag size is not synchsafe",
		}
	}
	if flags&flagUnsynchronisation != 0 {
		return nil, &types.UnsupportedFormatError{
			Path:   path,
			Reason: "unsynchronised tags are not supported",
		}
	}
	if v == types.V22 && flags&flagExtendedHeader != 0 {
		return nil, &types.UnsupportedFormatError{
			Path:   path,
			Reason: "compressed ID3v2.2 tags are not supported",
		}
	}

	t := &Tag{Version: v, Revision: revision}

	end := HeaderSize + int64(binutil.DecodeSynchsafe(sizeBytes))
	t.size = end
	if v == types.V24 && flags&flagFooter != 0 {
		t.size += HeaderSize
	}
	if end > size {
		t.warn("header", 0, fmt.Sprintf("tag declares %d bytes, input holds %d", end, size))
		end = size
	}

	offset := int64(HeaderSize)
	if v != types.V22 && flags&flagExtendedHeader != 0 {
		n, err := extendedHeaderSize(sr, v)
		if err != nil {
			t.warn("header", offset, fmt.Sprintf("failed to read extended header: %v", err))
			return t, nil
		}
		offset += n
	}

	t.readFrames(sr, offset, end)
	return t, nil
}

// extendedHeaderSize returns how many bytes to skip past the extended
// header. The ID3v2.4 size includes its own 4 bytes; ID3v2.3's does not.
func extendedHeaderSize(sr *binutil.SafeReader, v types.Version) (int64, error) {
	buf := make([]byte, 4)
	if err := sr.ReadAt(buf, HeaderSize, "extended header size"); err != nil {
		return 0, err
	}
	if v == types.V24 {
		return int64(binutil.DecodeSynchsafe(buf)), nil
	}
	return int64(binary.BigEndian.Uint32(buf)) + 4, nil
}

func (t *Tag) readFrames(sr *binutil.SafeReader, offset, end int64) {
	headerSize := int64(frame.HeaderSize)
	if t.Version == types.V22 {
		headerSize = frame.HeaderSizeV22
	}

	for offset+headerSize <= end {
		buf := make([]byte, headerSize)
		if err := sr.ReadAt(buf, offset, "frame header"); err != nil {
			t.warn("frame", offset, err.Error())
			return
		}

		// Padding (null bytes indicate end of frames)
		if buf[0] == 0 {
			return
		}

		h, size := parseHeader(buf, t.Version)
		if offset+headerSize+size > end {
			t.warn("frame", offset, fmt.Sprintf("frame %q declares %d bytes, only %d remain",
				h.ID, size, end-offset-headerSize))
			return
		}

		data := make([]byte, size)
		if size > 0 {
			if err := sr.ReadAt(data, offset+headerSize, fmt.Sprintf("frame %s data", h.ID)); err != nil {
				t.warn("frame", offset, fmt.Sprintf("failed to read frame %s: %v", h.ID, err))
				return
			}
		}
		frameOffset := offset
		offset += headerSize + size

		if t.Version == types.V22 {
			id, ok := frame.UpgradeV22ID(h.ID)
			if !ok {
				t.warn("frame", frameOffset, fmt.Sprintf("ID3v2.2 frame %s has no ID3v2.3 equivalent, dropped", h.ID))
				continue
			}
			h.ID = id
		}
		if !frame.ValidID(h.ID) {
			t.warn("frame", frameOffset, fmt.Sprintf("invalid frame identifier %q, stopping", h.ID))
			return
		}

		t.frames = append(t.frames, t.buildFrame(h, data, frameOffset))
	}
}

func (t *Tag) buildFrame(h frame.Header, data []byte, offset int64) frame.Frame {
	if h.Flags.Format() {
		return &frame.Raw{Header: h, Data: data}
	}
	f, err := registry.Build(h, data, t.Version)
	if err != nil {
		t.warn("frame", offset, fmt.Sprintf("frame %s kept raw: %v", h.ID, err))
		return &frame.Raw{Header: h, Data: data}
	}
	return f
}

// parseHeader decodes a frame header. Some ID3v2.4 writers store plain
// sizes; a size whose bytes are not synchsafe is read as a plain integer.
func parseHeader(buf []byte, v types.Version) (frame.Header, int64) {
	if v == types.V22 {
		return frame.Header{ID: string(buf[0:3]), Version: v}, int64(binutil.Uint24(buf[3:6]))
	}

	h := frame.Header{
		ID:      string(buf[0:4]),
		Flags:   frame.ParseFlags(binary.BigEndian.Uint16(buf[8:10]), v),
		Version: v,
	}
	if v == types.V24 && synchsafe(buf[4:8]) {
		return h, int64(binutil.DecodeSynchsafe(buf[4:8]))
	}
	return h, int64(binary.BigEndian.Uint32(buf[4:8]))
}

func synchsafe(b []byte) bool {
	for _, c := range b {
		if c&0x80 != 0 {
			return false
		}
	}
	return true
}
