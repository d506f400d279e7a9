package frame

import "github.com/simonhull/id3text/internal/types"

// Flags is the version-independent view of a frame's two flag bytes.
type Flags struct {
	TagAlterDiscard  bool // drop frame if the tag is altered
	FileAlterDiscard bool // drop frame if the audio is altered
	ReadOnly         bool

	Grouped             bool
	Compressed          bool
	Encrypted           bool
	Unsynchronised      bool // v2.4 only
	DataLengthIndicator bool // v2.4 only
}

// ParseFlags decodes raw header flags read under version v.
// ID3v2.2 frames carry no flags.
func ParseFlags(raw uint16, v types.Version) Flags {
	switch v {
	case types.V23:
		return Flags{
			TagAlterDiscard:  raw&0x8000 != 0,
			FileAlterDiscard: raw&0x4000 != 0,
			ReadOnly:         raw&0x2000 != 0,
			Compressed:       raw&0x0080 != 0,
			Encrypted:        raw&0x0040 != 0,
			Grouped:          raw&0x0020 != 0,
		}
	case types.V24:
		return Flags{
			TagAlterDiscard:     raw&0x4000 != 0,
			FileAlterDiscard:    raw&0x2000 != 0,
			ReadOnly:            raw&0x1000 != 0,
			Grouped:             raw&0x0040 != 0,
			Compressed:          raw&0x0008 != 0,
			Encrypted:           raw&0x0004 != 0,
			Unsynchronised:      raw&0x0002 != 0,
			DataLengthIndicator: raw&0x0001 != 0,
		}
	default:
		return Flags{}
	}
}

// Format reports whether any flag changes how the field bytes are laid out.
// Such frames can't be decoded here and only render at their own version.
func (f Flags) Format() bool {
	return f.Grouped || f.Compressed || f.Encrypted || f.Unsynchronised || f.DataLengthIndicator
}

func (f Flags) encode(v types.Version) uint16 {
	var raw uint16
	set := func(on bool, bit uint16) {
		if on {
			raw |= bit
		}
	}

	if v == types.V23 {
		set(f.TagAlterDiscard, 0x8000)
		set(f.FileAlterDiscard, 0x4000)
		set(f.ReadOnly, 0x2000)
		set(f.Compressed, 0x0080)
		set(f.Encrypted, 0x0040)
		set(f.Grouped, 0x0020)
		return raw
	}

	set(f.TagAlterDiscard, 0x4000)
	set(f.FileAlterDiscard, 0x2000)
	set(f.ReadOnly, 0x1000)
	set(f.Grouped, 0x0040)
	set(f.Compressed, 0x0008)
	set(f.Encrypted, 0x0004)
	set(f.Unsynchronised, 0x0002)
	set(f.DataLengthIndicator, 0x0001)
	return raw
}
