package frame

import (
	"github.com/simonhull/id3text/internal/textcodec"
	"github.com/simonhull/id3text/internal/types"
)

// CorrectEncoding maps enc to an encoding version v can store.
// ID3v2.2 and 2.3 only know Latin1 and UTF-16 with BOM.
func CorrectEncoding(enc textcodec.Encoding, v types.Version) textcodec.Encoding {
	if v.Legacy() && (enc == textcodec.UTF16BE || enc == textcodec.UTF8) {
		return textcodec.UTF16
	}
	return enc
}
