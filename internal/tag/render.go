package tag

import (
	"bytes"
	"fmt"

	binutil "github.com/simonhull/id3text/internal/binary"
	"github.com/simonhull/id3text/internal/types"
)

// Render serialises the tag as version v followed by padding zero bytes.
// Only ID3v2.3 and 2.4 can be written. The tag is rendered in full or not
// at all.
func (t *Tag) Render(v types.Version, padding int) ([]byte, error) {
	if v != types.V23 && v != types.V24 {
		return nil, &types.UnsupportedVersionError{Version: v}
	}
	if padding < 0 {
		return nil, fmt.Errorf("padding %d: %w", padding, types.ErrInvalidArgument)
	}

	var body bytes.Buffer
	for _, f := range t.frames {
		b, err := f.Render(v)
		if err != nil {
			return nil, fmt.Errorf("render frame %s: %w", f.ID(), err)
		}
		body.Write(b)
	}

	total := body.Len() + padding
	if total > binutil.MaxSynchsafe {
		return nil, fmt.Errorf("tag body of %d bytes exceeds synchsafe size limit", total)
	}

	var buf bytes.Buffer
	buf.Grow(HeaderSize + total)
	sw := binutil.NewSafeWriter(&buf)

	if err := sw.WriteString("ID3"); err != nil {
		return nil, err
	}
	// version, revision 0, no flags
	if err := sw.WriteBytes([]byte{byte(v), 0, 0}); err != nil {
		return nil, err
	}
	if err := sw.WriteSynchsafe(uint32(total)); err != nil {
		return nil, err
	}
	if err := sw.WriteBytes(body.Bytes()); err != nil {
		return nil, err
	}
	if err := sw.WriteZeros(padding); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
